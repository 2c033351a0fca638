package constants

import "time"

const (

	// MaxBalloons is the number of balloons that may exist at once, popping ones included
	MaxBalloons int = 10
	// MaxScore is the highest score the display can show
	MaxScore int = 999

	// InitialSpawnInterval is the delay before the first spawn of a session
	InitialSpawnInterval time.Duration = 1000 * time.Millisecond
	// SpawnIntervalMin is the lower bound of the re-rolled spawn interval
	SpawnIntervalMin time.Duration = 800 * time.Millisecond
	// SpawnIntervalMax is the upper bound (exclusive) of the re-rolled spawn interval
	SpawnIntervalMax time.Duration = 1500 * time.Millisecond

	// BalloonSizeMin is the smallest balloon size in pixels
	BalloonSizeMin float64 = 150.0
	// BalloonSizeMax is the largest balloon size in pixels (exclusive)
	BalloonSizeMax float64 = 230.0
	// BalloonSpeedMin is the slowest vertical drift in pixels per frame
	BalloonSpeedMin float64 = 1.0
	// BalloonSpeedMax is the fastest vertical drift in pixels per frame (exclusive)
	BalloonSpeedMax float64 = 3.0
	// BalloonSwayAmountMin is the smallest sway amplitude in pixels
	BalloonSwayAmountMin float64 = 3.0
	// BalloonSwayAmountMax is the largest sway amplitude in pixels (exclusive)
	BalloonSwayAmountMax float64 = 8.0
	// BalloonSwaySpeedMin is the slowest sway phase advance in radians per frame
	BalloonSwaySpeedMin float64 = 0.02
	// BalloonSwaySpeedMax is the fastest sway phase advance in radians per frame (exclusive)
	BalloonSwaySpeedMax float64 = 0.05
	// BalloonStartY is the bottom-relative spawn height, below the visible area
	BalloonStartY float64 = -50.0

	// EvictionMargin is how far past the top edge a balloon may float before it is evicted
	EvictionMargin float64 = 100.0
	// ResizeClampMargin keeps balloon anchors this far inside the right edge after a resize
	ResizeClampMargin float64 = 50.0

	// PopDuration is how long a popped balloon stays visible before cleanup
	PopDuration time.Duration = 300 * time.Millisecond
)
