package game

import (
	"time"

	"github.com/cbodonnell/balloonpop/pkg/game/types"
	"github.com/cbodonnell/balloonpop/pkg/log"
)

// updateBalloons moves every active balloon by one frame. Popping balloons
// stay where they were popped.
func (s *Session) updateBalloons() {
	for _, b := range s.balloons {
		if !b.IsActive() {
			continue
		}
		advanceBalloon(b)
		s.presenter.MoveBalloon(b)
	}
}

func advanceBalloon(b *types.Balloon) {
	b.Y += b.Speed
	b.SwayPhase += b.SwaySpeed
}

// removeOffScreenBalloons evicts active balloons that floated past the top
// edge by more than the eviction margin. Evictions never score.
func (s *Session) removeOffScreenBalloons() {
	threshold := s.viewport.Height + s.tuning.EvictionMargin
	var evicted []string
	for _, b := range s.balloons {
		if b.IsActive() && b.Y > threshold {
			evicted = append(evicted, b.ID)
		}
	}
	for _, id := range evicted {
		if s.removeBalloon(id) {
			log.Trace("Evicted balloon %s", id)
		}
	}
}

// Pop handles a point-select on the balloon with the given ID. Popping a
// balloon that is already popping or gone is a no-op. It returns whether the
// balloon was popped.
func (s *Session) Pop(id string, now time.Time) bool {
	b := s.Balloon(id)
	if b == nil || !b.IsActive() {
		return false
	}

	b.Status = types.BalloonStatusPopping
	s.presenter.ShowPopped(b)
	if err := s.sound.PlayPop(); err != nil {
		log.Debug("Failed to play pop sound: %v", err)
	}
	s.addPoint()
	s.cleanups.Schedule(b.ID, now.Add(s.tuning.PopDuration))
	log.Debug("Popped balloon %s, score %d", b.ID, s.score)
	return true
}

// FireDue runs the cleanups of popped balloons whose pop animation has ended.
// Hosts may call it while the session is paused so cleanups keep wall-clock time.
func (s *Session) FireDue(now time.Time) {
	for _, id := range s.cleanups.Due(now) {
		b := s.Balloon(id)
		if b == nil || b.Status != types.BalloonStatusPopping {
			continue
		}
		s.removeBalloon(id)
		log.Trace("Cleaned up popped balloon %s", id)
	}
}
