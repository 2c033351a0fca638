package game

import (
	"math"
	"time"

	"github.com/cbodonnell/balloonpop/pkg/game/types"
	"github.com/cbodonnell/balloonpop/pkg/kinematic"
	"github.com/cbodonnell/balloonpop/pkg/log"
)

// spawnIfDue creates a balloon when the spawn interval has elapsed and the
// admission gate has room. Popping balloons occupy a slot until cleaned up.
func (s *Session) spawnIfDue(now time.Time) {
	if now.Sub(s.lastSpawnTime) <= s.spawnInterval {
		return
	}
	if len(s.balloons) >= s.tuning.MaxBalloons {
		return
	}
	s.spawnBalloon()
	s.lastSpawnTime = now
	s.spawnInterval = s.rollSpawnInterval()
}

// spawnBalloon draws the random parameters in a fixed order: color, size,
// x origin, speed, sway amount, sway speed, sway phase.
func (s *Session) spawnBalloon() *types.Balloon {
	color := s.rollColor()
	size := s.roll(s.tuning.Size)

	maxX := s.viewport.Width - size
	if maxX < 0 {
		maxX = 0
	}
	x := kinematic.Uniform(s.random.Float64(), 0, maxX)

	b := &types.Balloon{
		ID:         s.newID(),
		Color:      color,
		Size:       size,
		XOrigin:    x,
		Y:          s.tuning.StartY,
		Speed:      s.roll(s.tuning.Speed),
		SwayAmount: s.roll(s.tuning.SwayAmount),
		SwaySpeed:  s.roll(s.tuning.SwaySpeed),
		SwayPhase:  kinematic.Uniform(s.random.Float64(), 0, 2*math.Pi),
		Status:     types.BalloonStatusActive,
	}

	s.balloons = append(s.balloons, b)
	s.presenter.CreateBalloon(b)
	log.Debug("Spawned %s balloon %s at x=%.1f (total %d)", b.Color, b.ID, b.XOrigin, len(s.balloons))
	return b
}

func (s *Session) roll(r Range) float64 {
	return kinematic.Uniform(s.random.Float64(), r.Min, r.Max)
}

func (s *Session) rollColor() types.BalloonColor {
	i := int(s.random.Float64() * float64(len(types.Palette)))
	if i >= len(types.Palette) {
		i = len(types.Palette) - 1
	}
	if i < 0 {
		i = 0
	}
	return types.Palette[i]
}

func (s *Session) rollSpawnInterval() time.Duration {
	min, max := s.tuning.SpawnIntervalMin, s.tuning.SpawnIntervalMax
	return min + time.Duration(s.random.Float64()*float64(max-min))
}
