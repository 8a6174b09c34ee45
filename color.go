package dmd

import "fmt"

// Color is a colour byte. Monochrome panels only use Off and On; the named
// palette is a convenience for controllers that map more values.
type Color byte

// Named palette.
const (
	Black Color = iota
	Red
	Purple
	Yellow
	Green
	Cyan
	Blue
	White
)

// Monochrome aliases.
const (
	Off Color = 0
	On  Color = 1
)

var colorNames = [...]string{"black", "red", "purple", "yellow", "green", "cyan", "blue", "white"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", byte(c))
}

// ColorByName looks up a palette entry by its lower-case name.
func ColorByName(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return 0, false
}
