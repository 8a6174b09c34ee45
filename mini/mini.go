// Package mini drives the 5-byte minimal profile of the display controller.
//
// Only points and circles are supported. Every frame starts with the 0x10
// marker byte followed by the opcode.
package mini

import (
	"fmt"

	"github.com/flavioheleno/dmd"
	"periph.io/x/conn/v3/i2c"
)

// Point turns a single pixel on or off.
type Point struct {
	X, Y int
	On   bool
}

// Opcode and Fields implement dmd.Command.
func (c Point) Opcode() dmd.Opcode { return dmd.OpPoint }

func (c Point) Fields() ([]dmd.Field, error) {
	return []dmd.Field{dmd.Coord("x", c.X), dmd.Coord("y", c.Y), dmd.Flag("on", c.On)}, nil
}

// Circle draws a circle outline of radius R (0-255).
type Circle struct {
	X, Y, R int
}

// Opcode and Fields implement dmd.Command.
func (c Circle) Opcode() dmd.Opcode { return dmd.OpCircle }

func (c Circle) Fields() ([]dmd.Field, error) {
	return []dmd.Field{dmd.Coord("x", c.X), dmd.Coord("y", c.Y), dmd.Byte("r", c.R, 0, 255)}, nil
}

// Dev is the device handle for a minimal profile controller.
type Dev struct {
	l *dmd.Link
}

// NewI2C returns a device for the minimal profile controller on bus b.
// opts can be nil. The profile has no colour fields, so MaxColour has no
// effect beyond being validated.
func NewI2C(b i2c.Bus, opts *dmd.Opts) (*Dev, error) {
	l, err := dmd.NewLink(b, dmd.Minimal, opts)
	if err != nil {
		return nil, err
	}
	return &Dev{l: l}, nil
}

// Link returns the underlying frame link.
func (d *Dev) Link() *dmd.Link {
	return d.l
}

// ClearPoint turns the pixel at (x, y) off.
func (d *Dev) ClearPoint(x, y int) error {
	return d.l.Send(Point{X: x, Y: y})
}

// DrawPoint turns the pixel at (x, y) on.
func (d *Dev) DrawPoint(x, y int) error {
	return d.l.Send(Point{X: x, Y: y, On: true})
}

// DrawCircle draws a circle of radius r centred on (x, y).
func (d *Dev) DrawCircle(x, y, r int) error {
	return d.l.Send(Circle{X: x, Y: y, R: r})
}

func (d *Dev) String() string {
	return fmt.Sprintf("mini.Dev{0x%02X}", d.l.Addr())
}
