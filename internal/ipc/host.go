package ipc

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"cursor-overlay/internal/cursor"
)

// ChannelGetCursor is the only channel the overlay serves
const ChannelGetCursor = "get-cursor"

var (
	ErrEmptyChannel     = errors.New("channel name is empty")
	ErrDuplicateHandler = errors.New("a handler is already registered for channel")
	ErrNoHandler        = errors.New("no handler registered for channel")
)

// Request is a single call from content to the host
type Request struct {
	Channel string `json:"channel"`
}

// Response carries the result of exactly one Request
type Response struct {
	Point cursor.Point `json:"point"`
	Err   error        `json:"-"`
}

// HandlerFunc serves one request on the host side
type HandlerFunc func(ctx context.Context, req Request) (cursor.Point, error)

// Host owns the request channel and the window context it runs under
type Host struct {
	log      logger.Logger
	mu       sync.RWMutex
	ctx      context.Context
	handlers map[string]HandlerFunc
}

// NewHost creates a host with no handlers registered
func NewHost(log logger.Logger) *Host {
	return &Host{
		log:      log,
		ctx:      context.Background(),
		handlers: make(map[string]HandlerFunc),
	}
}

// Attach records the window context handed over once the window is ready
func (h *Host) Attach(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ctx = ctx
}

// Context returns the window context, or context.Background before Attach
func (h *Host) Context() context.Context {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ctx
}

// Handle registers fn for channel. A channel can only be registered once.
func (h *Host) Handle(channel string, fn HandlerFunc) error {
	if channel == "" {
		return ErrEmptyChannel
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.handlers[channel]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateHandler, channel)
	}
	h.handlers[channel] = fn
	h.log.Debug(fmt.Sprintf("ipc: registered handler for %q", channel))

	return nil
}

// Invoke runs the handler for req.Channel and returns its single response
func (h *Host) Invoke(ctx context.Context, req Request) Response {
	if err := ctx.Err(); err != nil {
		return Response{Err: err}
	}

	h.mu.RLock()
	fn, exists := h.handlers[req.Channel]
	h.mu.RUnlock()

	if !exists {
		return Response{Err: fmt.Errorf("%w: %q", ErrNoHandler, req.Channel)}
	}

	point, err := fn(ctx, req)
	if err != nil {
		h.log.Error(fmt.Sprintf("ipc: %s failed: %v", req.Channel, err))
		return Response{Err: fmt.Errorf("%s: %w", req.Channel, err)}
	}

	return Response{Point: point}
}

// CursorHandler queries loc on every call. Results are never cached.
func CursorHandler(loc cursor.Locator) HandlerFunc {
	return func(ctx context.Context, req Request) (cursor.Point, error) {
		return loc.Location()
	}
}
