package dmd

import "fmt"

// Opcode identifies the drawing command carried by a frame.
type Opcode byte

// Opcodes understood by the display controller. The numbering is shared by
// both profiles; each profile only accepts its own subset.
const (
	OpNone      Opcode = 0x00
	OpClear     Opcode = 0x01
	OpPoint     Opcode = 0x02
	OpLine      Opcode = 0x03
	OpCircle    Opcode = 0x04
	OpRectangle Opcode = 0x05
	OpText      Opcode = 0x06
	OpScroll    Opcode = 0x07 // Reserved, no command emits it
	OpInit      Opcode = 0x08
)

var opcodeNames = [...]string{
	OpNone:      "none",
	OpClear:     "clear",
	OpPoint:     "point",
	OpLine:      "line",
	OpCircle:    "circle",
	OpRectangle: "rectangle",
	OpText:      "text",
	OpScroll:    "scroll",
	OpInit:      "init",
}

func (o Opcode) String() string {
	if int(o) < len(opcodeNames) {
		return opcodeNames[o]
	}
	return fmt.Sprintf("opcode(0x%02X)", byte(o))
}

// Profile describes one frame format: its bus address, fixed frame length,
// optional leading marker byte and the opcodes it accepts.
//
// Profiles are immutable; use the predefined Full and Minimal values.
type Profile struct {
	name      string
	addr      uint16
	size      int
	marker    byte
	hasMarker bool
	opcodes   []Opcode
}

// The predefined profiles. They are read-only: do not reassign them.
var (
	// Full is the 10-byte profile with the complete drawing command set.
	Full = &Profile{
		name:    "full",
		addr:    126,
		size:    10,
		opcodes: []Opcode{OpNone, OpClear, OpPoint, OpLine, OpCircle, OpRectangle, OpText, OpScroll, OpInit},
	}

	// Minimal is the 5-byte profile. Every frame starts with the 0x10 marker.
	Minimal = &Profile{
		name:      "minimal",
		addr:      8,
		size:      5,
		marker:    0x10,
		hasMarker: true,
		opcodes:   []Opcode{OpNone, OpClear, OpPoint, OpLine, OpCircle, OpRectangle, OpText, OpScroll},
	}
)

// Name returns the profile's short name.
func (p *Profile) Name() string { return p.name }

// Addr returns the 7-bit I2C address the controller listens on.
func (p *Profile) Addr() uint16 { return p.addr }

// Size returns the fixed frame length in bytes.
func (p *Profile) Size() int { return p.size }

// Marker returns the leading marker byte and whether the profile uses one.
func (p *Profile) Marker() (byte, bool) { return p.marker, p.hasMarker }

// Supports reports whether op belongs to the profile's opcode set.
func (p *Profile) Supports(op Opcode) bool {
	for _, o := range p.opcodes {
		if o == op {
			return true
		}
	}
	return false
}

// Opcodes returns a copy of the profile's opcode set.
func (p *Profile) Opcodes() []Opcode {
	out := make([]Opcode, len(p.opcodes))
	copy(out, p.opcodes)
	return out
}

// header returns the number of bytes preceding the first field.
func (p *Profile) header() int {
	if p.hasMarker {
		return 2
	}
	return 1
}

func (p *Profile) String() string {
	return fmt.Sprintf("dmd.Profile{%s, addr=%d, %d bytes}", p.name, p.addr, p.size)
}

// ProfileByName returns the predefined profile called name.
func ProfileByName(name string) (*Profile, error) {
	switch name {
	case Full.name:
		return Full, nil
	case Minimal.name:
		return Minimal, nil
	}
	return nil, fmt.Errorf("dmd: unknown profile %q", name)
}
