package dmd

import (
	"bytes"
	"errors"
	"testing"

	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
)

type failingBus struct {
	err   error
	calls int
}

func (f *failingBus) String() string                  { return "failingBus" }
func (f *failingBus) SetSpeed(physic.Frequency) error { return nil }
func (f *failingBus) Tx(addr uint16, w, r []byte) error {
	f.calls++
	return f.err
}

func newRecorded(t *testing.T, opts *Opts) (*Dev, *i2ctest.Record) {
	t.Helper()
	rec := &i2ctest.Record{}
	dev, err := NewI2C(rec, opts)
	if err != nil {
		t.Fatalf("NewI2C() error = %v", err)
	}
	return dev, rec
}

func TestDevWrites(t *testing.T) {
	tests := []struct {
		name string
		draw func(d *Dev) error
		want []byte
	}{
		{
			"configure screen",
			func(d *Dev) error { return d.ConfigureScreen(2, 1) },
			[]byte{byte(OpInit), 2, 1, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			"fill screen",
			func(d *Dev) error { return d.FillScreen(On) },
			[]byte{byte(OpClear), 1, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			"point",
			func(d *Dev) error { return d.DrawPoint(3, 4, On) },
			[]byte{byte(OpPoint), 3, 4, 1, 0, 0, 0, 0, 0, 0},
		},
		{
			"circle filled",
			func(d *Dev) error { return d.DrawCircle(15, 7, 6, true, On) },
			[]byte{byte(OpCircle), 15, 7, 6, 1, 1, 0, 0, 0, 0},
		},
		{
			"circle outline",
			func(d *Dev) error { return d.DrawCircle(15, 7, 31, false, Off) },
			[]byte{byte(OpCircle), 15, 7, 31, 0, 0, 0, 0, 0, 0},
		},
		{
			"rectangle filled",
			func(d *Dev) error { return d.DrawRectangle(1, 2, 5, 6, true, Off) },
			[]byte{byte(OpRectangle), 1, 2, 5, 6, 1, 0, 0, 0, 0},
		},
		{
			"rectangle outline",
			func(d *Dev) error { return d.DrawRectangle(1, 2, 5, 6, false, Off) },
			[]byte{byte(OpRectangle), 1, 2, 5, 6, 0, 0, 0, 0, 0},
		},
		{
			"line",
			func(d *Dev) error { return d.DrawLine(0, 15, 31, 0, On) },
			[]byte{byte(OpLine), 0, 15, 31, 0, 1, 0, 0, 0, 0},
		},
		{
			"text",
			func(d *Dev) error { return d.DrawText(0, 0, "HELLO!", On) },
			[]byte{byte(OpText), 0, 0, 1, 72, 69, 76, 76, 79, 33},
		},
		{
			"padded text",
			func(d *Dev) error { return d.DrawText(2, 8, PadText("OK"), On) },
			[]byte{byte(OpText), 2, 8, 1, 'O', 'K', ' ', ' ', ' ', ' '},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, rec := newRecorded(t, nil)
			if err := tt.draw(dev); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(rec.Ops) != 1 {
				t.Fatalf("got %d bus writes, want 1", len(rec.Ops))
			}
			op := rec.Ops[0]
			if op.Addr != 126 {
				t.Errorf("Addr = %d, want 126", op.Addr)
			}
			if len(op.W) != 10 {
				t.Errorf("frame length = %d, want 10", len(op.W))
			}
			if !bytes.Equal(op.W, tt.want) {
				t.Errorf("frame = % X, want % X", op.W, tt.want)
			}
			if len(op.R) != 0 {
				t.Errorf("unexpected read of %d bytes", len(op.R))
			}
		})
	}
}

func TestDevValidation(t *testing.T) {
	tests := []struct {
		name  string
		draw  func(d *Dev) error
		field string
	}{
		{"width zero", func(d *Dev) error { return d.ConfigureScreen(0, 1) }, "width"},
		{"height three", func(d *Dev) error { return d.ConfigureScreen(1, 3) }, "height"},
		{"colour two", func(d *Dev) error { return d.FillScreen(2) }, "colour"},
		{"negative x", func(d *Dev) error { return d.DrawPoint(-1, 0, On) }, "x"},
		{"y over a byte", func(d *Dev) error { return d.DrawPoint(0, 256, On) }, "y"},
		{"radius zero", func(d *Dev) error { return d.DrawCircle(4, 4, 0, false, On) }, "r"},
		{"radius too large", func(d *Dev) error { return d.DrawCircle(4, 4, 32, false, On) }, "r"},
		{"rectangle x2", func(d *Dev) error { return d.DrawRectangle(0, 0, 300, 5, false, On) }, "x2"},
		{"line y1", func(d *Dev) error { return d.DrawLine(0, -4, 1, 1, On) }, "y1"},
		{"text colour", func(d *Dev) error { return d.DrawText(0, 0, "ABCDEF", White) }, "colour"},
		{"text wide rune", func(d *Dev) error { return d.DrawText(0, 0, "ABCDE€", On) }, "text[5]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, rec := newRecorded(t, nil)
			err := tt.draw(dev)
			var rerr *RangeError
			if !errors.As(err, &rerr) {
				t.Fatalf("error = %v, want *RangeError", err)
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

func TestDevTextLength(t *testing.T) {
	for _, text := range []string{"", "HELLO", "HELLO!!"} {
		t.Run(text, func(t *testing.T) {
			dev, rec := newRecorded(t, nil)
			err := dev.DrawText(0, 0, text, On)
			if !errors.Is(err, ErrTextLength) {
				t.Fatalf("error = %v, want ErrTextLength", err)
			}
			var terr *TextError
			if !errors.As(err, &terr) || terr.Len != len(text) {
				t.Errorf("TextError = %v, want Len %d", terr, len(text))
			}
			if len(rec.Ops) != 0 {
				t.Errorf("got %d bus writes, want none", len(rec.Ops))
			}
		})
	}
}

func TestDevMaxColour(t *testing.T) {
	dev, rec := newRecorded(t, &Opts{MaxColour: White})
	if err := dev.FillScreen(Cyan); err != nil {
		t.Fatalf("FillScreen(Cyan) error = %v", err)
	}
	if got := rec.Ops[0].W[1]; got != byte(Cyan) {
		t.Errorf("colour byte = %d, want %d", got, Cyan)
	}
}

func TestDevBusError(t *testing.T) {
	cause := errors.New("nack")
	bus := &failingBus{err: cause}
	dev, err := NewI2C(bus, nil)
	if err != nil {
		t.Fatal(err)
	}

	err = dev.FillScreen(Off)
	var berr *BusError
	if !errors.As(err, &berr) {
		t.Fatalf("error = %v, want *BusError", err)
	}
	if berr.Addr != 126 {
		t.Errorf("Addr = %d, want 126", berr.Addr)
	}
	if !errors.Is(err, cause) {
		t.Error("BusError does not unwrap to the bus error")
	}
	if bus.calls != 1 {
		t.Errorf("bus calls = %d, want 1", bus.calls)
	}

	// Validation happens before the bus is touched.
	if err := dev.DrawCircle(0, 0, 0, false, On); errors.As(err, &berr) {
		t.Errorf("invalid command reached the bus: %v", err)
	}
	if bus.calls != 1 {
		t.Errorf("bus calls = %d, want 1", bus.calls)
	}
}

func TestDevPlayback(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 126, W: []byte{byte(OpInit), 1, 1, 0, 0, 0, 0, 0, 0, 0}},
			{Addr: 126, W: []byte{byte(OpClear), 0, 0, 0, 0, 0, 0, 0, 0, 0}},
			{Addr: 126, W: []byte{byte(OpPoint), 3, 4, 1, 0, 0, 0, 0, 0, 0}},
			{Addr: 126, W: []byte{byte(OpPoint), 3, 4, 1, 0, 0, 0, 0, 0, 0}},
		},
		DontPanic: true,
	}
	dev, err := NewI2C(bus, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := dev.ConfigureScreen(1, 1); err != nil {
		t.Fatal(err)
	}
	if err := dev.FillScreen(Off); err != nil {
		t.Fatal(err)
	}
	// The same command twice is two independent writes.
	for i := 0; i < 2; i++ {
		if err := dev.DrawPoint(3, 4, On); err != nil {
			t.Fatal(err)
		}
	}
	if err := bus.Close(); err != nil {
		t.Errorf("playback not drained: %v", err)
	}
}

func TestLinkWriteRejectsForeignFrames(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		frame   Frame
		want    error
	}{
		{"minimal without marker", Minimal, Frame{0x00, byte(OpPoint), 3, 4, 1}, ErrMarker},
		{"init on minimal", Minimal, Frame{0x10, byte(OpInit), 0xFF, 0xFF, 0xFF}, ErrUnsupportedOpcode},
		{"unknown opcode on full", Full, Frame{0x42, 0, 0, 0, 0, 0, 0, 0, 0, 0}, ErrUnsupportedOpcode},
		{"marker on full", Full, Frame{0x10, 0, 0, 0, 0, 0, 0, 0, 0, 0}, ErrUnsupportedOpcode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &i2ctest.Record{}
			l, err := NewLink(rec, tt.profile, nil)
			if err != nil {
				t.Fatal(err)
			}
			if err := l.Write(tt.frame); !errors.Is(err, tt.want) {
				t.Errorf("Write() error = %v, want %v", err, tt.want)
			}
			if len(rec.Ops) != 0 {
				t.Errorf("got %d bus writes, want none", len(rec.Ops))
			}
		})
	}
}

func TestLinkWriteEncodedFrame(t *testing.T) {
	rec := &i2ctest.Record{}
	l, err := NewLink(rec, Minimal, nil)
	if err != nil {
		t.Fatal(err)
	}
	f, err := l.Encode(rawCommand{op: OpPoint, fields: []Field{Coord("x", 3), Coord("y", 4), Flag("on", true)}})
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Write(f); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if len(rec.Ops) != 1 || !bytes.Equal(rec.Ops[0].W, []byte{0x10, byte(OpPoint), 3, 4, 1}) {
		t.Errorf("bus writes = %v", rec.Ops)
	}
}

func TestOptsValidation(t *testing.T) {
	tests := []struct {
		name     string
		opts     *Opts
		wantAddr uint16
		wantErr  bool
	}{
		{"nil options (uses defaults)", nil, 126, false},
		{"zero options", &Opts{}, 126, false},
		{"address override", &Opts{Addr: 0x3C}, 0x3C, false},
		{"address not 7-bit", &Opts{Addr: 0x80}, 0, true},
		{"palette colours", &Opts{MaxColour: White}, 126, false},
		{"colour past palette", &Opts{MaxColour: 8}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, err := NewI2C(&i2ctest.Record{}, tt.opts)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error but didn't get one")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := dev.Link().Addr(); got != tt.wantAddr {
				t.Errorf("Addr() = %d, want %d", got, tt.wantAddr)
			}
		})
	}
}

func TestDevString(t *testing.T) {
	dev, _ := newRecorded(t, nil)
	want := "dmd.Dev{0x7E}"
	if got := dev.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
