package dmd

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
)

// Dev is the device handle for a controller speaking the full profile.
type Dev struct {
	l *Link
}

// NewI2C returns a device for the full profile controller on bus b.
//
// opts can be nil to use defaults (address 126, monochrome colours).
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	l, err := NewLink(b, Full, opts)
	if err != nil {
		return nil, err
	}
	return &Dev{l: l}, nil
}

// Link returns the underlying frame link.
func (d *Dev) Link() *Link {
	return d.l
}

// Send encodes and writes any full profile command.
func (d *Dev) Send(cmd Command) error {
	return d.l.Send(cmd)
}

// ConfigureScreen sets how many panels the screen has across and down
// (1 or 2 each).
func (d *Dev) ConfigureScreen(width, height int) error {
	return d.l.Send(Configure{Width: width, Height: height})
}

// FillScreen sets every pixel to colour.
func (d *Dev) FillScreen(colour Color) error {
	return d.l.Send(Fill{Colour: colour})
}

// DrawPoint sets the pixel at (x, y).
func (d *Dev) DrawPoint(x, y int, colour Color) error {
	return d.l.Send(Point{X: x, Y: y, Colour: colour})
}

// DrawCircle draws a circle of radius r (1-31) centred on (x, y).
func (d *Dev) DrawCircle(x, y, r int, fill bool, colour Color) error {
	return d.l.Send(Circle{X: x, Y: y, R: r, Fill: fill, Colour: colour})
}

// DrawRectangle draws a rectangle with corners (x1, y1) and (x2, y2).
func (d *Dev) DrawRectangle(x1, y1, x2, y2 int, fill bool, colour Color) error {
	return d.l.Send(Rectangle{X1: x1, Y1: y1, X2: x2, Y2: y2, Fill: fill, Colour: colour})
}

// DrawLine draws a line from (x1, y1) to (x2, y2).
func (d *Dev) DrawLine(x1, y1, x2, y2 int, colour Color) error {
	return d.l.Send(Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Colour: colour})
}

// DrawText renders text at (x, y). text must be exactly six characters;
// wrap it in PadText to send shorter strings.
func (d *Dev) DrawText(x, y int, text string, colour Color) error {
	return d.l.Send(Text{X: x, Y: y, Text: text, Colour: colour})
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("dmd.Dev{0x%02X}", d.l.addr)
}
