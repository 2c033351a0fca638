package game

import (
	"fmt"
	"time"

	"github.com/cbodonnell/balloonpop/pkg/game/constants"
)

// Range is a half-open interval [Min, Max).
type Range struct {
	Min float64
	Max float64
}

func (r Range) validate(name string) error {
	if r.Max < r.Min {
		return fmt.Errorf("%s range is inverted: min %v > max %v", name, r.Min, r.Max)
	}
	return nil
}

// Tuning holds the gameplay parameters of a session.
type Tuning struct {
	// MaxBalloons is the spawn admission limit, popping balloons included.
	MaxBalloons int
	// MaxScore caps the score.
	MaxScore int
	// InitialSpawnInterval is the delay before the first spawn after a start.
	InitialSpawnInterval time.Duration
	// SpawnIntervalMin and SpawnIntervalMax bound the re-rolled spawn interval.
	SpawnIntervalMin time.Duration
	SpawnIntervalMax time.Duration
	// Size is the balloon size range in pixels.
	Size Range
	// Speed is the vertical drift range in pixels per frame.
	Speed Range
	// SwayAmount is the sway amplitude range in pixels.
	SwayAmount Range
	// SwaySpeed is the sway phase advance range in radians per frame.
	SwaySpeed Range
	// StartY is the bottom-relative spawn height.
	StartY float64
	// EvictionMargin is how far past the top edge a balloon is evicted.
	EvictionMargin float64
	// ResizeClampMargin keeps anchors inside the right edge after a resize.
	ResizeClampMargin float64
	// PopDuration is the delay between a pop and the balloon's cleanup.
	PopDuration time.Duration
}

// DefaultTuning returns the standard gameplay parameters.
func DefaultTuning() Tuning {
	return Tuning{
		MaxBalloons:          constants.MaxBalloons,
		MaxScore:             constants.MaxScore,
		InitialSpawnInterval: constants.InitialSpawnInterval,
		SpawnIntervalMin:     constants.SpawnIntervalMin,
		SpawnIntervalMax:     constants.SpawnIntervalMax,
		Size:                 Range{Min: constants.BalloonSizeMin, Max: constants.BalloonSizeMax},
		Speed:                Range{Min: constants.BalloonSpeedMin, Max: constants.BalloonSpeedMax},
		SwayAmount:           Range{Min: constants.BalloonSwayAmountMin, Max: constants.BalloonSwayAmountMax},
		SwaySpeed:            Range{Min: constants.BalloonSwaySpeedMin, Max: constants.BalloonSwaySpeedMax},
		StartY:               constants.BalloonStartY,
		EvictionMargin:       constants.EvictionMargin,
		ResizeClampMargin:    constants.ResizeClampMargin,
		PopDuration:          constants.PopDuration,
	}
}

// Validate reports the first inconsistent parameter.
func (t Tuning) Validate() error {
	if t.MaxBalloons <= 0 {
		return fmt.Errorf("max balloons must be positive, got %d", t.MaxBalloons)
	}
	if t.MaxScore <= 0 {
		return fmt.Errorf("max score must be positive, got %d", t.MaxScore)
	}
	if t.SpawnIntervalMax < t.SpawnIntervalMin {
		return fmt.Errorf("spawn interval range is inverted: min %v > max %v", t.SpawnIntervalMin, t.SpawnIntervalMax)
	}
	if t.PopDuration < 0 {
		return fmt.Errorf("pop duration must not be negative, got %v", t.PopDuration)
	}
	ranges := []struct {
		name string
		r    Range
	}{
		{"size", t.Size},
		{"speed", t.Speed},
		{"sway amount", t.SwayAmount},
		{"sway speed", t.SwaySpeed},
	}
	for _, r := range ranges {
		if err := r.r.validate(r.name); err != nil {
			return err
		}
	}
	return nil
}
