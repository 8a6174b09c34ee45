package dmd

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// Opts is the configuration shared by the full and minimal devices.
type Opts struct {
	// Addr overrides the profile's bus address (0 keeps the default).
	Addr uint16

	// MaxColour bounds colour fields (0 keeps monochrome, i.e. On).
	MaxColour Color
}

// Link writes frames of one profile to a controller.
//
// A Link keeps no state between writes; every Send encodes a fresh frame
// and issues exactly one bus transaction.
type Link struct {
	c    conn.Conn
	addr uint16
	enc  Encoder
}

// NewLink connects to the controller for profile p on bus b.
//
// opts can be nil to use the profile's address and monochrome colours.
func NewLink(b i2c.Bus, p *Profile, opts *Opts) (*Link, error) {
	if p == nil {
		return nil, errors.New("dmd: profile is required")
	}
	addr, maxColour := p.addr, On
	if opts != nil {
		if opts.Addr > 0x7F {
			return nil, errors.New("dmd: address must be a 7-bit value")
		}
		if opts.Addr != 0 {
			addr = opts.Addr
		}
		if opts.MaxColour > White {
			return nil, fmt.Errorf("dmd: max colour must be at most %d", White)
		}
		if opts.MaxColour != 0 {
			maxColour = opts.MaxColour
		}
	}
	return &Link{
		c:    &i2c.Dev{Bus: b, Addr: addr},
		addr: addr,
		enc:  Encoder{Profile: p, MaxColour: maxColour},
	}, nil
}

// Profile returns the link's frame profile.
func (l *Link) Profile() *Profile {
	return l.enc.Profile
}

// Addr returns the bus address frames are written to.
func (l *Link) Addr() uint16 {
	return l.addr
}

// Encode validates cmd and returns its frame without writing it.
func (l *Link) Encode(cmd Command) (Frame, error) {
	return l.enc.Encode(cmd)
}

// Write sends an already encoded frame in a single bus write. The frame
// must have the profile's length, marker and an opcode from its set;
// otherwise nothing is written.
func (l *Link) Write(f Frame) error {
	p := l.enc.Profile
	if len(f) != p.size {
		return fmt.Errorf("dmd: frame is %d bytes, %s frames are %d", len(f), p.name, p.size)
	}
	if p.hasMarker && f[0] != p.marker {
		return fmt.Errorf("%w: got 0x%02X, want 0x%02X", ErrMarker, f[0], p.marker)
	}
	if op := Opcode(f[p.header()-1]); !p.Supports(op) {
		return fmt.Errorf("%w: %s in %s", ErrUnsupportedOpcode, op, p.name)
	}
	if err := l.c.Tx(f, nil); err != nil {
		return &BusError{Addr: l.addr, Err: err}
	}
	return nil
}

// Send encodes cmd and writes its frame. Invalid commands are rejected
// before touching the bus.
func (l *Link) Send(cmd Command) error {
	f, err := l.enc.Encode(cmd)
	if err != nil {
		return err
	}
	return l.Write(f)
}

func (l *Link) String() string {
	return fmt.Sprintf("dmd.Link{%s@0x%02X}", l.enc.Profile.name, l.addr)
}
