package dmd

// Domains of the full profile parameters.
const (
	MinPanels = 1
	MaxPanels = 2
	MinRadius = 1
	MaxRadius = 31
)

// Configure sets the screen geometry in panels.
type Configure struct {
	Width, Height int
}

// Opcode and Fields implement Command.
func (c Configure) Opcode() Opcode { return OpInit }

func (c Configure) Fields() ([]Field, error) {
	return []Field{
		Byte("width", c.Width, MinPanels, MaxPanels),
		Byte("height", c.Height, MinPanels, MaxPanels),
	}, nil
}

// Fill sets every pixel to Colour.
type Fill struct {
	Colour Color
}

// Opcode and Fields implement Command.
func (c Fill) Opcode() Opcode { return OpClear }

func (c Fill) Fields() ([]Field, error) {
	return []Field{ColourField(c.Colour)}, nil
}

// Point sets a single pixel.
type Point struct {
	X, Y   int
	Colour Color
}

// Opcode and Fields implement Command.
func (c Point) Opcode() Opcode { return OpPoint }

func (c Point) Fields() ([]Field, error) {
	return []Field{Coord("x", c.X), Coord("y", c.Y), ColourField(c.Colour)}, nil
}

// Line draws a segment between two points.
type Line struct {
	X1, Y1, X2, Y2 int
	Colour         Color
}

// Opcode and Fields implement Command.
func (c Line) Opcode() Opcode { return OpLine }

func (c Line) Fields() ([]Field, error) {
	return []Field{
		Coord("x1", c.X1), Coord("y1", c.Y1),
		Coord("x2", c.X2), Coord("y2", c.Y2),
		ColourField(c.Colour),
	}, nil
}

// Circle draws a circle centred on (X, Y).
type Circle struct {
	X, Y, R int
	Fill    bool
	Colour  Color
}

// Opcode and Fields implement Command.
func (c Circle) Opcode() Opcode { return OpCircle }

func (c Circle) Fields() ([]Field, error) {
	return []Field{
		Coord("x", c.X), Coord("y", c.Y), Radius(c.R),
		Flag("fill", c.Fill),
		ColourField(c.Colour),
	}, nil
}

// Rectangle draws a rectangle with corners (X1, Y1) and (X2, Y2).
type Rectangle struct {
	X1, Y1, X2, Y2 int
	Fill           bool
	Colour         Color
}

// Opcode and Fields implement Command.
func (c Rectangle) Opcode() Opcode { return OpRectangle }

func (c Rectangle) Fields() ([]Field, error) {
	return []Field{
		Coord("x1", c.X1), Coord("y1", c.Y1),
		Coord("x2", c.X2), Coord("y2", c.Y2),
		Flag("fill", c.Fill),
		ColourField(c.Colour),
	}, nil
}

// Text renders exactly six characters starting at (X, Y). Use PadText for
// shorter strings.
type Text struct {
	X, Y   int
	Text   string
	Colour Color
}

// Opcode and Fields implement Command.
func (c Text) Opcode() Opcode { return OpText }

func (c Text) Fields() ([]Field, error) {
	chars, err := TextFields(c.Text)
	if err != nil {
		return nil, err
	}
	return append([]Field{Coord("x", c.X), Coord("y", c.Y), ColourField(c.Colour)}, chars...), nil
}
