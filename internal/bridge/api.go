// Package bridge holds the only value bound into the overlay page. Every
// exported method of API becomes callable from content, so API must keep
// exactly one.
package bridge

import (
	"cursor-overlay/internal/cursor"
	"cursor-overlay/internal/ipc"
)

// API is exposed to content as window.go.bridge.API
type API struct {
	host *ipc.Host
}

// New creates the bridge over host
func New(host *ipc.Host) *API {
	return &API{host: host}
}

// GetCursor returns the current pointer position in screen coordinates.
// An error rejects the promise on the content side.
func (a *API) GetCursor() (cursor.Point, error) {
	resp := a.host.Invoke(a.host.Context(), ipc.Request{Channel: ipc.ChannelGetCursor})
	return resp.Point, resp.Err
}
