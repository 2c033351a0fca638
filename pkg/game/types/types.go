package types

// Viewport is the visible play area in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// SessionState is the lifecycle state of a play session.
type SessionState uint8

const (
	SessionStateIdle SessionState = iota
	SessionStateRunning
)

func (s SessionState) String() string {
	switch s {
	case SessionStateIdle:
		return "Idle"
	case SessionStateRunning:
		return "Running"
	}
	return "Unknown"
}

// PopRequest is a point-select input resolved to a balloon.
type PopRequest struct {
	BalloonID string
}
