//go:build !windows

package cursor

import "github.com/go-vgo/robotgo"

// systemLocator reads the pointer through robotgo. Wayland sessions report
// stale coordinates, X11 and macOS are fine.
type systemLocator struct{}

func (systemLocator) Location() (Point, error) {
	x, y := robotgo.Location()
	return Point{X: x, Y: y}, nil
}
