package mini

import (
	"bytes"
	"errors"
	"testing"

	"github.com/flavioheleno/dmd"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestDevWrites(t *testing.T) {
	tests := []struct {
		name string
		draw func(d *Dev) error
		want []byte
	}{
		{"clear point", func(d *Dev) error { return d.ClearPoint(3, 4) }, []byte{0x10, byte(dmd.OpPoint), 3, 4, 0}},
		{"draw point", func(d *Dev) error { return d.DrawPoint(3, 4) }, []byte{0x10, byte(dmd.OpPoint), 3, 4, 1}},
		{"circle", func(d *Dev) error { return d.DrawCircle(16, 8, 7) }, []byte{0x10, byte(dmd.OpCircle), 16, 8, 7}},
		{"corner", func(d *Dev) error { return d.DrawPoint(255, 255) }, []byte{0x10, byte(dmd.OpPoint), 255, 255, 1}},
		{"zero radius", func(d *Dev) error { return d.DrawCircle(8, 8, 0) }, []byte{0x10, byte(dmd.OpCircle), 8, 8, 0}},
		{"wide radius", func(d *Dev) error { return d.DrawCircle(8, 8, 40) }, []byte{0x10, byte(dmd.OpCircle), 8, 8, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &i2ctest.Record{}
			dev, err := NewI2C(rec, nil)
			if err != nil {
				t.Fatal(err)
			}
			if err := tt.draw(dev); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(rec.Ops) != 1 {
				t.Fatalf("got %d bus writes, want 1", len(rec.Ops))
			}
			if rec.Ops[0].Addr != 8 {
				t.Errorf("Addr = %d, want 8", rec.Ops[0].Addr)
			}
			if !bytes.Equal(rec.Ops[0].W, tt.want) {
				t.Errorf("frame = % X, want % X", rec.Ops[0].W, tt.want)
			}
		})
	}
}

func TestPointsShareOpcode(t *testing.T) {
	on, err := dmd.Minimal.Encode(Point{X: 3, Y: 4, On: true})
	if err != nil {
		t.Fatal(err)
	}
	off, err := dmd.Minimal.Encode(Point{X: 3, Y: 4})
	if err != nil {
		t.Fatal(err)
	}
	if on[1] != off[1] {
		t.Errorf("opcodes differ: 0x%02X vs 0x%02X", on[1], off[1])
	}
	if !bytes.Equal(on[:4], off[:4]) || on[4] == off[4] {
		t.Errorf("frames should differ only in the last byte: %v vs %v", on, off)
	}
}

func TestDevValidation(t *testing.T) {
	tests := []struct {
		name  string
		draw  func(d *Dev) error
		field string
	}{
		{"x over a byte", func(d *Dev) error { return d.DrawPoint(256, 0) }, "x"},
		{"negative y", func(d *Dev) error { return d.ClearPoint(0, -1) }, "y"},
		{"negative radius", func(d *Dev) error { return d.DrawCircle(4, 4, -1) }, "r"},
		{"radius over a byte", func(d *Dev) error { return d.DrawCircle(4, 4, 256) }, "r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &i2ctest.Record{}
			dev, err := NewI2C(rec, nil)
			if err != nil {
				t.Fatal(err)
			}
			err = tt.draw(dev)
			var rerr *dmd.RangeError
			if !errors.As(err, &rerr) {
				t.Fatalf("error = %v, want *dmd.RangeError", err)
			}
			if rerr.Field != tt.field {
				t.Errorf("Field = %q, want %q", rerr.Field, tt.field)
			}
			if len(rec.Ops) != 0 {
				t.Errorf("got %d bus writes, want none", len(rec.Ops))
			}
		})
	}
}

func TestDevString(t *testing.T) {
	dev, err := NewI2C(&i2ctest.Record{}, &dmd.Opts{Addr: 9})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := dev.String(), "mini.Dev{0x09}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewI2CMaxColour(t *testing.T) {
	if _, err := NewI2C(&i2ctest.Record{}, &dmd.Opts{MaxColour: dmd.White}); err != nil {
		t.Errorf("MaxColour White error = %v", err)
	}
	if _, err := NewI2C(&i2ctest.Record{}, &dmd.Opts{MaxColour: 8}); err == nil {
		t.Error("MaxColour past the palette should be rejected")
	}
}

func TestFib(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{-3, 0},
		{0, 0},
		{1, 1},
		{2, 1},
		{10, 55},
		{20, 6765},
	}
	for _, tt := range tests {
		if got := Fib(tt.n); got != tt.want {
			t.Errorf("Fib(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
