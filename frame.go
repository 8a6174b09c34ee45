package dmd

import (
	"fmt"
	"strings"
)

// Field is one single-byte parameter of a command, together with the
// domain it must fall in.
type Field struct {
	Name     string
	Value    int
	Min, Max int

	colour bool
}

// Byte returns a field accepting any value in [min, max].
func Byte(name string, v, min, max int) Field {
	return Field{Name: name, Value: v, Min: min, Max: max}
}

// Coord returns a pixel coordinate field (0-255).
func Coord(name string, v int) Field {
	return Field{Name: name, Value: v, Min: 0, Max: 255}
}

// Flag returns a boolean field encoded as 0 or 1.
func Flag(name string, b bool) Field {
	f := Field{Name: name, Min: 0, Max: 1}
	if b {
		f.Value = 1
	}
	return f
}

// Radius returns a circle radius field (1-31).
func Radius(r int) Field {
	return Field{Name: "r", Value: r, Min: MinRadius, Max: MaxRadius}
}

// ColourField returns a colour field. Its upper bound is set by the
// encoder's MaxColour.
func ColourField(c Color) Field {
	return Field{Name: "colour", Value: int(c), Min: 0, Max: int(White), colour: true}
}

func (f Field) check(maxColour Color) error {
	hi := f.Max
	if f.colour && int(maxColour) < hi {
		hi = int(maxColour)
	}
	if f.Value < f.Min || f.Value > hi {
		return &RangeError{Field: f.Name, Value: f.Value, Min: f.Min, Max: hi}
	}
	return nil
}

// Command is a single drawing operation that can be encoded into a frame.
type Command interface {
	Opcode() Opcode
	// Fields returns the command parameters in wire order.
	Fields() ([]Field, error)
}

// Frame is a fixed-length encoded command, ready for one bus write.
type Frame []byte

func (f Frame) String() string {
	return fmt.Sprintf("[% X]", []byte(f))
}

// Encoder turns commands into frames for one profile.
type Encoder struct {
	Profile *Profile

	// MaxColour bounds every colour field. The zero value means On.
	MaxColour Color
}

// Encode validates cmd and builds its frame. Nothing is allocated for the
// frame until every field has been checked.
func (e Encoder) Encode(cmd Command) (Frame, error) {
	p := e.Profile
	op := cmd.Opcode()
	if !p.Supports(op) {
		return nil, fmt.Errorf("%w: %s in %s", ErrUnsupportedOpcode, op, p.name)
	}
	fields, err := cmd.Fields()
	if err != nil {
		return nil, err
	}
	if n := p.header() + len(fields); n > p.size {
		return nil, fmt.Errorf("dmd: %s needs %d bytes, %s frames hold %d", op, n, p.name, p.size)
	}
	maxColour := e.MaxColour
	if maxColour == 0 {
		maxColour = On
	}
	for _, f := range fields {
		if err := f.check(maxColour); err != nil {
			return nil, err
		}
	}

	frame := make(Frame, p.size)
	i := 0
	if p.hasMarker {
		frame[i] = p.marker
		i++
	}
	frame[i] = byte(op)
	i++
	for _, f := range fields {
		frame[i] = byte(f.Value)
		i++
	}
	return frame, nil
}

// Encode builds the frame for cmd with monochrome colour fields (Off or On).
func (p *Profile) Encode(cmd Command) (Frame, error) {
	return Encoder{Profile: p}.Encode(cmd)
}

// TextLen is the width of the text field in characters.
const TextLen = 6

// TextFields returns the character code fields for s, which must hold
// exactly TextLen characters with codes 0-255.
func TextFields(s string) ([]Field, error) {
	runes := []rune(s)
	if len(runes) != TextLen {
		return nil, &TextError{Len: len(runes)}
	}
	fields := make([]Field, 0, TextLen)
	for i, r := range runes {
		fields = append(fields, Byte(fmt.Sprintf("text[%d]", i), int(r), 0, 255))
	}
	return fields, nil
}

// PadText pads s with spaces up to TextLen characters. Longer strings are
// returned unchanged so the encoder still rejects them.
func PadText(s string) string {
	if n := len([]rune(s)); n < TextLen {
		return s + strings.Repeat(" ", TextLen-n)
	}
	return s
}
