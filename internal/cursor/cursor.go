package cursor

import "errors"

// ErrUnavailable is returned when the OS refuses to report the pointer position
var ErrUnavailable = errors.New("cursor position unavailable")

// Point is a cursor position in screen coordinates
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Locator reports the current pointer position
type Locator interface {
	Location() (Point, error)
}

// Func adapts an ordinary function to a Locator
type Func func() (Point, error)

// Location calls f
func (f Func) Location() (Point, error) {
	return f()
}

// System returns the locator backed by the host OS
func System() Locator {
	return systemLocator{}
}
