package dmd

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedOpcode is returned when a command's opcode is outside the
	// profile's opcode set.
	ErrUnsupportedOpcode = errors.New("dmd: opcode not supported by profile")

	// ErrMarker is returned when a frame does not start with the profile's
	// marker byte.
	ErrMarker = errors.New("dmd: frame marker mismatch")

	// ErrTextLength matches every *TextError.
	ErrTextLength = errors.New("dmd: text must be exactly 6 characters")
)

// RangeError reports a parameter outside its valid domain. No frame is
// written when it is returned.
type RangeError struct {
	Field    string
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("dmd: %s = %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// TextError reports a text payload that does not fill the text field
// exactly.
type TextError struct {
	Len int
}

func (e *TextError) Error() string {
	return fmt.Sprintf("dmd: text has %d characters, want %d", e.Len, TextLen)
}

// Is lets errors.Is(err, ErrTextLength) match.
func (e *TextError) Is(target error) bool {
	return target == ErrTextLength
}

// BusError wraps a failure of the underlying bus write.
type BusError struct {
	Addr uint16
	Err  error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("dmd: write to 0x%02X failed: %v", e.Addr, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}
