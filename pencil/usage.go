package pencil

// Usage counts what a pencil has spent over its lifetime.
type Usage struct {
	// GraphiteSpent is the point durability consumed by writing.
	GraphiteSpent int `json:"graphite_spent" yaml:"graphite_spent"`

	// Blotted is the number of characters written as spaces because the
	// point was dull.
	Blotted int `json:"blotted" yaml:"blotted"`

	// Sharpenings is the number of sharpenings that took effect.
	Sharpenings int `json:"sharpenings" yaml:"sharpenings"`

	// Erased is the number of characters blanked by the eraser.
	Erased int `json:"erased" yaml:"erased"`

	// Collisions is the number of edited characters that landed on existing text.
	Collisions int `json:"collisions" yaml:"collisions"`
}

// Add adds the given usage to this usage.
func (u *Usage) Add(other Usage) {
	u.GraphiteSpent += other.GraphiteSpent
	u.Blotted += other.Blotted
	u.Sharpenings += other.Sharpenings
	u.Erased += other.Erased
	u.Collisions += other.Collisions
}

// Total returns the durability consumed across point and eraser.
func (u Usage) Total() int {
	return u.GraphiteSpent + u.Erased
}
