package script

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/randalmurphal/pencilkit/pencil"
)

// Op names a pencil operation.
type Op string

// Supported operations.
const (
	OpWrite   Op = "write"
	OpErase   Op = "erase"
	OpSharpen Op = "sharpen"
	OpEdit    Op = "edit"
)

// Valid reports whether op is a supported operation.
func (op Op) Valid() bool {
	switch op {
	case OpWrite, OpErase, OpSharpen, OpEdit:
		return true
	}
	return false
}

// Step is one operation applied to a pencil.
type Step struct {
	Op   Op     `json:"op" yaml:"op" toml:"op"`
	Text string `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
}

// String renders the step in the form accepted by ParseLine.
func (s Step) String() string {
	if s.Op == OpSharpen || s.Text == "" {
		return string(s.Op)
	}
	if strings.TrimSpace(s.Text) != s.Text || strings.ContainsAny(s.Text, "\n\t\"") {
		return string(s.Op) + " " + strconv.Quote(s.Text)
	}
	return string(s.Op) + " " + s.Text
}

// ParseLine parses a console command such as "write Hello World".
// The text after the operation is taken verbatim unless it is a quoted Go
// string literal, which is unquoted.
func ParseLine(line string) (Step, error) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	name, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		_, size := utf8.DecodeRuneInString(line[i:])
		name, rest = line[:i], line[i+size:]
	}
	op := Op(strings.ToLower(strings.TrimSpace(name)))
	if !op.Valid() {
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
	if op == OpSharpen {
		return Step{Op: op}, nil
	}

	text := strings.TrimRight(rest, "\r\n")
	if trimmed := strings.TrimSpace(text); len(trimmed) >= 2 && trimmed[0] == '"' {
		unquoted, err := strconv.Unquote(trimmed)
		if err != nil {
			return Step{}, fmt.Errorf("parse %s text: %w", op, err)
		}
		text = unquoted
	}
	return Step{Op: op, Text: text}, nil
}

// Apply performs a single step on p.
func Apply(p *pencil.Pencil, step Step) error {
	switch step.Op {
	case OpWrite:
		p.Write(step.Text)
	case OpErase:
		p.Erase(step.Text)
	case OpSharpen:
		p.Sharpen()
	case OpEdit:
		p.Edit(step.Text)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
	return nil
}
