//go:build windows

package cursor

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32           = windows.NewLazyDLL("user32.dll")
	procGetCursorPos = user32.NewProc("GetCursorPos")
)

// point mirrors the Win32 POINT struct
type point struct {
	X int32
	Y int32
}

type systemLocator struct{}

func (systemLocator) Location() (Point, error) {
	var p point
	ret, _, callErr := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	if ret == 0 {
		return Point{}, fmt.Errorf("%w: GetCursorPos: %v", ErrUnavailable, callErr)
	}

	return Point{X: int(p.X), Y: int(p.Y)}, nil
}
