// Package dmd drives a dot-matrix LED display controller over I2C.
//
// The controller does all the rendering. This package only encodes drawing
// commands into fixed-length frames and writes each frame to the bus in a
// single transaction. Nothing is read back from the controller.
//
// # Profiles
//
// Two frame formats exist:
//
//	Profile  Address  Frame   Layout
//	full     126      10 B    opcode, fields..., zero padding
//	minimal  8        5 B     0x10 marker, opcode, 3 fields
//
// Both are described by a Profile value and encoded by the same Encoder.
// The full profile is driven through Dev, the minimal one through the mini
// subpackage.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//		"github.com/flavioheleno/dmd"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I2C bus
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		// Create device
//		dev, _ := dmd.NewI2C(bus, nil)
//
//		dev.ConfigureScreen(1, 1)
//		dev.FillScreen(dmd.Off)
//		dev.DrawCircle(15, 7, 6, false, dmd.On)
//		dev.DrawText(0, 0, dmd.PadText("HI"), dmd.On)
//	}
//
// # Frame Layout
//
// Full profile fields, starting at offset 1:
//
//	init       width, height
//	clear      colour
//	point      x, y, colour
//	line       x1, y1, x2, y2, colour
//	circle     x, y, r, fill, colour
//	rectangle  x1, y1, x2, y2, fill, colour
//	text       x, y, colour, c0, c1, c2, c3, c4, c5
//
// Every field is a single byte. fill is 0 or 1.
//
// # Validation
//
// Parameters are checked before anything is written:
//
//   - coordinates must be 0-255
//   - radius must be 1-31
//   - screen width and height must be 1 or 2 panels
//   - colours must not exceed Opts.MaxColour (On unless configured)
//   - text must be exactly six characters with codes 0-255
//
// Failures are reported as *RangeError or *TextError and no frame is sent.
// A failed bus write is reported as *BusError.
//
// # Colours
//
// Panels are monochrome, so drawing normally uses Off and On. The named
// palette (Black through White) is available for controllers that map more
// values; raise Opts.MaxColour to use it.
package dmd
