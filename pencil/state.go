package pencil

// State is a point-in-time snapshot of a Pencil.
type State struct {
	Text              string `json:"text" yaml:"text"`
	Durability        int    `json:"durability" yaml:"durability"`
	InitialDurability int    `json:"initial_durability" yaml:"initial_durability"`
	Length            int    `json:"length" yaml:"length"`
	EraserDurability  int    `json:"eraser_durability" yaml:"eraser_durability"`
}

// State returns a snapshot of the pencil's current state.
func (p *Pencil) State() State {
	return State{
		Text:              p.Text(),
		Durability:        p.durability,
		InitialDurability: p.initialDurability,
		Length:            p.length,
		EraserDurability:  p.eraserDurability,
	}
}
