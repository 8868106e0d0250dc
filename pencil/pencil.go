package pencil

import (
	"slices"
	"unicode/utf8"
)

// CollisionMark replaces a character when Edit writes over existing text.
const CollisionMark = '@'

// Unlimited is reported by EraserDurability for a pencil whose eraser was
// never given a durability.
const Unlimited = -1

// noGap marks that no erased run is waiting to be edited.
const noGap = -1

// Pencil writes, erases and edits text under finite durability budgets.
type Pencil struct {
	text []rune

	durability        int
	initialDurability int
	length            int

	// eraserDurability is Unlimited or >= 0.
	eraserDurability int

	coster Coster

	// gap is the index of the first blanked character of the most recent
	// erase not yet edited, or noGap.
	gap int

	usage Usage
}

// Option configures a Pencil.
type Option func(*Pencil)

// New creates a pencil with the given point durability.
// Length defaults to zero and the eraser to Unlimited.
func New(durability int, opts ...Option) *Pencil {
	p := &Pencil{
		durability:        durability,
		initialDurability: durability,
		eraserDurability:  Unlimited,
		coster:            ASCIICost,
		gap:               noGap,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithLength sets how many times the pencil can be sharpened.
func WithLength(length int) Option {
	return func(p *Pencil) {
		p.length = length
	}
}

// WithEraserDurability limits how many characters the eraser can blank.
// Negative values leave the eraser worn out.
func WithEraserDurability(durability int) Option {
	return func(p *Pencil) {
		p.eraserDurability = max(durability, 0)
	}
}

// WithCoster replaces the default ASCIICost pricing.
// A nil coster is ignored.
func WithCoster(c Coster) Option {
	return func(p *Pencil) {
		if c != nil {
			p.coster = c
		}
	}
}

// Write appends input to the text, spending durability per character.
// Spaces and newlines are always written. Other characters are written while
// durability remains and recorded as spaces once it is gone.
func (p *Pencil) Write(input string) {
	for _, c := range input {
		switch {
		case IsFree(c):
			p.text = append(p.text, c)
		case p.durability > 0:
			p.text = append(p.text, c)
			p.spend(p.coster.Cost(c))
		default:
			p.text = append(p.text, ' ')
			p.usage.Blotted++
		}
	}
}

// spend lowers durability by cost, never below zero.
func (p *Pencil) spend(cost int) {
	if cost <= 0 {
		return
	}
	if cost > p.durability {
		cost = p.durability
	}
	p.durability -= cost
	p.usage.GraphiteSpent += cost
}

// Sharpen restores durability to its initial value and shortens the pencil
// by one. It has no effect once the length is used up.
func (p *Pencil) Sharpen() {
	if !p.CanSharpen() {
		return
	}
	p.durability = p.initialDurability
	p.length--
	p.usage.Sharpenings++
}

// Erase blanks the last occurrence of word in the text. Characters are
// erased from the end of the occurrence towards its start, one unit of eraser
// durability each, until the occurrence is blank or the eraser is worn out.
// Unknown, empty or invalid UTF-8 words are ignored.
func (p *Pencil) Erase(word string) {
	if word == "" || !utf8.ValidString(word) {
		return
	}
	start := p.lastIndex([]rune(word))
	if start < 0 {
		return
	}

	end := start + utf8.RuneCountInString(word)
	for i := end - 1; i >= start && p.eraserDurability != 0; i-- {
		if p.text[i] == ' ' {
			continue
		}
		p.text[i] = ' '
		if p.eraserDurability > 0 {
			p.eraserDurability--
		}
		p.usage.Erased++
		p.gap = i
	}
}

// lastIndex returns the rune index of the last occurrence of word in the
// text, or -1.
func (p *Pencil) lastIndex(word []rune) int {
	for i := len(p.text) - len(word); i >= 0; i-- {
		if slices.Equal(p.text[i:i+len(word)], word) {
			return i
		}
	}
	return -1
}

// Edit writes replacement into a blank in the text: the gap left by the most
// recent erase, or failing that the first run of two or more spaces.
// A character landing on a space takes its place, a character landing on
// existing text turns it into CollisionMark, and a space in replacement
// leaves the text beneath it alone. Edit never changes the length of the
// text, so characters that would run past the end are dropped. It does not
// spend durability and is a no-op when there is no blank to edit into.
func (p *Pencil) Edit(replacement string) {
	pos := p.gap
	p.gap = noGap
	if pos == noGap {
		pos = p.firstBlank()
	}
	if pos == noGap {
		return
	}

	for _, c := range replacement {
		if pos >= len(p.text) {
			break
		}
		switch {
		case c == ' ':
		case p.text[pos] == ' ':
			p.text[pos] = c
		default:
			p.text[pos] = CollisionMark
			p.usage.Collisions++
		}
		pos++
	}
}

// firstBlank returns the start of the first run of at least two spaces.
func (p *Pencil) firstBlank() int {
	for i := 0; i+1 < len(p.text); i++ {
		if p.text[i] == ' ' && p.text[i+1] == ' ' {
			return i
		}
	}
	return noGap
}

// Text returns everything written so far.
func (p *Pencil) Text() string {
	return string(p.text)
}

// Durability returns the remaining point durability.
func (p *Pencil) Durability() int {
	return p.durability
}

// InitialDurability returns the durability restored by sharpening.
func (p *Pencil) InitialDurability() int {
	return p.initialDurability
}

// Length returns how many sharpenings remain.
func (p *Pencil) Length() int {
	return p.length
}

// EraserDurability returns how many characters the eraser can still blank,
// or Unlimited.
func (p *Pencil) EraserDurability() int {
	return p.eraserDurability
}

// CanSharpen reports whether Sharpen would take effect.
func (p *Pencil) CanSharpen() bool {
	return p.length > 0
}

// Dull reports whether the point has no durability left.
func (p *Pencil) Dull() bool {
	return p.durability <= 0
}

// Usage returns what the pencil has spent so far.
func (p *Pencil) Usage() Usage {
	return p.usage
}
