package game

import (
	"math/rand"
	"time"

	"github.com/cbodonnell/balloonpop/pkg/game/types"
	"github.com/cbodonnell/balloonpop/pkg/log"
	"github.com/google/uuid"
)

// Session is the complete state of one play-through. It is driven by the host:
// Tick once per display frame, Pop on point-select input, and FireDue whenever
// the host's timer runs. A Session is not safe for concurrent use.
type Session struct {
	presenter Presenter
	sound     SoundPlayer
	random    RandomSource
	newID     func() string
	tuning    Tuning

	state     types.SessionState
	suspended bool
	score     int
	balloons  []*types.Balloon
	viewport  types.Viewport

	spawnInterval time.Duration
	lastSpawnTime time.Time

	cleanups *cleanupScheduler
}

// NewSessionOptions contains options for creating a new Session.
type NewSessionOptions struct {
	// Presenter receives visual updates. Defaults to a no-op presenter.
	Presenter Presenter
	// Sound plays the pop cue. Defaults to silence.
	Sound SoundPlayer
	// Random drives every randomized spawn parameter. Defaults to a time-seeded source.
	Random RandomSource
	// NewID generates balloon identifiers. Defaults to random UUIDs.
	NewID func() string
	// Tuning holds the gameplay parameters. The zero value selects DefaultTuning.
	Tuning *Tuning
	// Viewport is the initial play area.
	Viewport types.Viewport
}

func NewSession(opts NewSessionOptions) *Session {
	s := &Session{
		presenter: opts.Presenter,
		sound:     opts.Sound,
		random:    opts.Random,
		newID:     opts.NewID,
		viewport:  opts.Viewport,
		cleanups:  newCleanupScheduler(),
	}
	if s.presenter == nil {
		s.presenter = noopPresenter{}
	}
	if s.sound == nil {
		s.sound = noopSoundPlayer{}
	}
	if s.random == nil {
		s.random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if opts.Tuning != nil {
		s.tuning = *opts.Tuning
	} else {
		s.tuning = DefaultTuning()
	}
	s.spawnInterval = s.tuning.InitialSpawnInterval
	s.updateScoreDisplay()
	return s
}

// Start begins a fresh play-through: the score is reset, leftover balloons
// are cleared and the spawn clock restarts at now.
func (s *Session) Start(now time.Time) {
	s.clearBalloons()
	s.score = 0
	s.updateScoreDisplay()
	s.lastSpawnTime = now
	s.spawnInterval = s.tuning.InitialSpawnInterval
	s.suspended = false
	s.state = types.SessionStateRunning
	log.Debug("Session started")
}

// Exit returns to the menu. Balloons are cleared without scoring and pending
// cleanups are cancelled; the score is kept until the next Start.
func (s *Session) Exit() {
	s.state = types.SessionStateIdle
	s.suspended = false
	s.clearBalloons()
	log.Debug("Session exited with score %d", s.score)
}

// Pause stops ticking without touching balloons or score.
func (s *Session) Pause() {
	if s.state != types.SessionStateRunning {
		return
	}
	s.state = types.SessionStateIdle
	s.suspended = true
	log.Debug("Session paused with %d balloons", len(s.balloons))
}

// Resume continues a paused session from its current state. It returns false
// when the session was not paused, e.g. after Exit.
func (s *Session) Resume() bool {
	if !s.suspended {
		return false
	}
	s.suspended = false
	s.state = types.SessionStateRunning
	log.Debug("Session resumed with %d balloons", len(s.balloons))
	return true
}

// Tick advances the session by one frame. It does nothing unless the
// session is running.
func (s *Session) Tick(now time.Time) {
	if s.state != types.SessionStateRunning {
		return
	}
	s.spawnIfDue(now)
	s.updateBalloons()
	s.removeOffScreenBalloons()
	s.FireDue(now)
}

// Resize sets the viewport and pulls balloon anchors back inside the right edge.
func (s *Session) Resize(viewport types.Viewport) {
	if viewport == s.viewport {
		return
	}
	s.viewport = viewport
	limit := viewport.Width - s.tuning.ResizeClampMargin
	if limit < 0 {
		limit = 0
	}
	for _, b := range s.balloons {
		if b.XOrigin > limit {
			b.XOrigin = limit
		}
	}
	log.Debug("Viewport resized to %.0fx%.0f", viewport.Width, viewport.Height)
}

func (s *Session) State() types.SessionState {
	return s.state
}

func (s *Session) IsRunning() bool {
	return s.state == types.SessionStateRunning
}

// IsPaused reports whether the session is idle but resumable.
func (s *Session) IsPaused() bool {
	return s.suspended
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) Viewport() types.Viewport {
	return s.viewport
}

func (s *Session) Tuning() Tuning {
	return s.tuning
}

// SpawnInterval returns the current delay between spawns.
func (s *Session) SpawnInterval() time.Duration {
	return s.spawnInterval
}

// Balloons returns the balloons in spawn order. The slice is a copy but the
// balloons are shared with the session.
func (s *Session) Balloons() []*types.Balloon {
	balloons := make([]*types.Balloon, len(s.balloons))
	copy(balloons, s.balloons)
	return balloons
}

// Balloon returns the balloon with the given ID, or nil once it is gone.
func (s *Session) Balloon(id string) *types.Balloon {
	if i := s.indexOf(id); i >= 0 {
		return s.balloons[i]
	}
	return nil
}

// PendingCleanups returns how many popped balloons await cleanup.
func (s *Session) PendingCleanups() int {
	return s.cleanups.Len()
}

func (s *Session) indexOf(id string) int {
	for i, b := range s.balloons {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// removeBalloon marks the balloon removed and drops it along with its visual.
// It is a no-op for balloons that are already gone.
func (s *Session) removeBalloon(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	b := s.balloons[i]
	b.Status = types.BalloonStatusRemoved
	s.presenter.DestroyBalloon(b.ID)
	s.balloons = append(s.balloons[:i], s.balloons[i+1:]...)
	s.cleanups.Cancel(id)
	return true
}

func (s *Session) clearBalloons() {
	s.cleanups.CancelAll()
	for _, b := range s.balloons {
		b.Status = types.BalloonStatusRemoved
		s.presenter.DestroyBalloon(b.ID)
	}
	s.balloons = nil
}
