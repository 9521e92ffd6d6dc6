package live

// FrameType identifies a live navigation frame.
type FrameType string

// Client frames.
const (
	FrameNavigate FrameType = "navigate"
	FrameBack     FrameType = "back"
	FrameForward  FrameType = "forward"
)

// Server frames.
const (
	FrameRender FrameType = "render"
	FrameError  FrameType = "error"
)

// ClientFrame is sent by the browser.
type ClientFrame struct {
	Type FrameType `json:"type"`

	// Path is the navigation target for navigate frames.
	Path string `json:"path,omitempty"`

	// Replace overwrites the current history entry instead of pushing.
	// The client sets it when replaying browser back/forward (popstate).
	Replace bool `json:"replace,omitempty"`
}

// ServerFrame is sent to the browser.
type ServerFrame struct {
	Type FrameType `json:"type"`

	// Path is the canonical path that was rendered.
	Path string `json:"path,omitempty"`

	// Nav is the navigation bar markup for the rendered path.
	Nav string `json:"nav,omitempty"`

	// Outlet is the page markup for the outlet. Empty when no page matched.
	Outlet string `json:"outlet,omitempty"`

	// Error describes a rejected frame. The connection stays open.
	Error string `json:"error,omitempty"`

	// Code is the error code, if any.
	Code string `json:"code,omitempty"`
}
