package types

import (
	"github.com/cbodonnell/balloonpop/pkg/kinematic"
)

// BalloonStatus is the lifecycle state of a balloon.
type BalloonStatus uint8

const (
	BalloonStatusActive BalloonStatus = iota
	BalloonStatusPopping
	BalloonStatusRemoved
)

func (s BalloonStatus) String() string {
	switch s {
	case BalloonStatusActive:
		return "Active"
	case BalloonStatusPopping:
		return "Popping"
	case BalloonStatusRemoved:
		return "Removed"
	}
	return "Unknown"
}

// BalloonColor is the visual variant of a balloon.
type BalloonColor uint8

const (
	BalloonColorRed BalloonColor = iota
	BalloonColorBlue
	BalloonColorGreen
	BalloonColorYellow
	BalloonColorOrange
	BalloonColorPink
	BalloonColorPurple
)

// Palette lists every balloon color a spawn may pick from.
var Palette = []BalloonColor{
	BalloonColorRed,
	BalloonColorBlue,
	BalloonColorGreen,
	BalloonColorYellow,
	BalloonColorOrange,
	BalloonColorPink,
	BalloonColorPurple,
}

func (c BalloonColor) String() string {
	switch c {
	case BalloonColorRed:
		return "red"
	case BalloonColorBlue:
		return "blue"
	case BalloonColorGreen:
		return "green"
	case BalloonColorYellow:
		return "yellow"
	case BalloonColorOrange:
		return "orange"
	case BalloonColorPink:
		return "pink"
	case BalloonColorPurple:
		return "purple"
	}
	return "unknown"
}

// Balloon is one floating target.
// Y is measured upward from the bottom edge of the viewport.
type Balloon struct {
	ID         string
	Color      BalloonColor
	Size       float64
	XOrigin    float64
	Y          float64
	Speed      float64
	SwayAmount float64
	SwaySpeed  float64
	SwayPhase  float64
	Status     BalloonStatus
}

// X returns the horizontal position including the current sway offset.
func (b *Balloon) X() float64 {
	return kinematic.Sway(b.XOrigin, b.SwayPhase, b.SwayAmount)
}

func (b *Balloon) IsActive() bool {
	return b.Status == BalloonStatusActive
}

// Copy returns a detached copy of the balloon.
func (b *Balloon) Copy() *Balloon {
	c := *b
	return &c
}
