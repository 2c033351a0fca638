package game

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	mocks "github.com/cbodonnell/balloonpop/mocks/github.com/cbodonnell/balloonpop/pkg/game"
	"github.com/cbodonnell/balloonpop/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sequenceRandom replays a fixed list of values, wrapping around at the end.
type sequenceRandom struct {
	values []float64
	next   int
}

func (r *sequenceRandom) Float64() float64 {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// recordingPresenter keeps the last state the session reported.
type recordingPresenter struct {
	visible   map[string]*types.Balloon
	popped    map[string]bool
	moves     int
	destroyed []string
	digits    [3]int
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{
		visible: make(map[string]*types.Balloon),
		popped:  make(map[string]bool),
	}
}

func (p *recordingPresenter) CreateBalloon(b *types.Balloon) { p.visible[b.ID] = b }
func (p *recordingPresenter) MoveBalloon(*types.Balloon)     { p.moves++ }
func (p *recordingPresenter) ShowPopped(b *types.Balloon)    { p.popped[b.ID] = true }
func (p *recordingPresenter) DestroyBalloon(id string) {
	delete(p.visible, id)
	p.destroyed = append(p.destroyed, id)
}
func (p *recordingPresenter) SetScoreDigits(h, t, o int) { p.digits = [3]int{h, t, o} }

var testEpoch = time.Unix(1700000000, 0)

func at(ms int) time.Time {
	return testEpoch.Add(time.Duration(ms) * time.Millisecond)
}

func newTestSession(presenter Presenter, tuning *Tuning, values ...float64) *Session {
	if len(values) == 0 {
		values = []float64{0.5}
	}
	n := 0
	return NewSession(NewSessionOptions{
		Presenter: presenter,
		Random:    &sequenceRandom{values: values},
		NewID: func() string {
			n++
			return fmt.Sprintf("balloon-%d", n)
		},
		Tuning:   tuning,
		Viewport: types.Viewport{Width: 800, Height: 600},
	})
}

// addBalloon injects an active balloon with known parameters.
func addBalloon(s *Session, id string, y, speed float64) *types.Balloon {
	b := &types.Balloon{
		ID:         id,
		Size:       150,
		XOrigin:    100,
		Y:          y,
		Speed:      speed,
		SwayAmount: 5,
		SwaySpeed:  0.03,
		SwayPhase:  0.25,
		Status:     types.BalloonStatusActive,
	}
	s.balloons = append(s.balloons, b)
	s.presenter.CreateBalloon(b)
	return b
}

func TestSession_spawnBalloon(t *testing.T) {
	presenter := newRecordingPresenter()
	s := newTestSession(presenter, nil)
	s.Start(at(0))

	s.Tick(at(1000))
	assert.Empty(t, s.Balloons(), "interval must be strictly exceeded")

	s.Tick(at(1001))
	balloons := s.Balloons()
	require.Len(t, balloons, 1)

	b := balloons[0]
	assert.Equal(t, "balloon-1", b.ID)
	assert.Equal(t, types.BalloonColorYellow, b.Color)
	assert.Equal(t, 190.0, b.Size)
	assert.Equal(t, 305.0, b.XOrigin)
	assert.Equal(t, 2.0, b.Speed)
	assert.Equal(t, 5.5, b.SwayAmount)
	assert.InDelta(t, 0.035, b.SwaySpeed, 1e-12)
	assert.Equal(t, types.BalloonStatusActive, b.Status)
	// the spawn frame also moves the new balloon
	assert.Equal(t, -48.0, b.Y)
	assert.InDelta(t, math.Pi+0.035, b.SwayPhase, 1e-12)

	assert.Equal(t, 1150*time.Millisecond, s.SpawnInterval())
	assert.Contains(t, presenter.visible, "balloon-1")
}

func TestSession_spawnParameterBounds(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		viewport types.Viewport
		check    func(t *testing.T, b *types.Balloon)
	}{
		{
			name:     "lower bounds",
			values:   []float64{0},
			viewport: types.Viewport{Width: 800, Height: 600},
			check: func(t *testing.T, b *types.Balloon) {
				assert.Equal(t, types.BalloonColorRed, b.Color)
				assert.Equal(t, 150.0, b.Size)
				assert.Equal(t, 0.0, b.XOrigin)
				assert.Equal(t, 1.0, b.Speed)
				assert.Equal(t, 3.0, b.SwayAmount)
			},
		},
		{
			name:     "near upper bounds",
			values:   []float64{0.999999},
			viewport: types.Viewport{Width: 800, Height: 600},
			check: func(t *testing.T, b *types.Balloon) {
				assert.Equal(t, types.BalloonColorPurple, b.Color)
				assert.Less(t, b.Size, 230.0)
				assert.Less(t, b.XOrigin, 800-b.Size)
				assert.Less(t, b.Speed, 3.0)
				assert.Less(t, b.SwayAmount, 8.0)
				assert.Less(t, b.SwaySpeed, 0.05)
			},
		},
		{
			name:     "viewport narrower than balloon",
			values:   []float64{0.7},
			viewport: types.Viewport{Width: 100, Height: 600},
			check: func(t *testing.T, b *types.Balloon) {
				assert.Equal(t, 0.0, b.XOrigin)
			},
		},
		{
			name:     "negative viewport",
			values:   []float64{0.7},
			viewport: types.Viewport{Width: -20, Height: -20},
			check: func(t *testing.T, b *types.Balloon) {
				assert.Equal(t, 0.0, b.XOrigin)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(nil, nil, tt.values...)
			s.Resize(tt.viewport)
			b := s.spawnBalloon()
			assert.Equal(t, -50.0, b.Y)
			assert.GreaterOrEqual(t, b.SwayPhase, 0.0)
			assert.Less(t, b.SwayPhase, 2*math.Pi)
			tt.check(t, b)
		})
	}
}

func TestSession_spawnAdmissionGate(t *testing.T) {
	tuning := DefaultTuning()
	tuning.MaxBalloons = 3
	s := newTestSession(nil, &tuning, 0.1)
	s.Start(at(0))

	now := 0
	for i := 0; i < 20; i++ {
		now += 2000
		s.Tick(at(now))
		assert.LessOrEqual(t, len(s.Balloons()), 3)
	}
	require.Len(t, s.Balloons(), 3)

	// popping balloons keep their slot until cleaned up
	popped := s.Balloons()[0]
	require.True(t, s.Pop(popped.ID, at(now)))
	s.Tick(at(now + 100))
	assert.Len(t, s.Balloons(), 3)
	assert.NotNil(t, s.Balloon(popped.ID))

	s.Tick(at(now + 2400))
	assert.Nil(t, s.Balloon(popped.ID))
	assert.Len(t, s.Balloons(), 2)

	s.Tick(at(now + 4500))
	assert.Len(t, s.Balloons(), 3)
}

func TestSession_updateBalloonsIsDeterministic(t *testing.T) {
	s := newTestSession(nil, nil)
	b := addBalloon(s, "a", -50, 2)

	const frames = 120
	for i := 0; i < frames; i++ {
		s.updateBalloons()
	}

	assert.InDelta(t, -50+frames*2.0, b.Y, 1e-9)
	assert.InDelta(t, 100+math.Sin(0.25+frames*0.03)*5, b.X(), 1e-9)
}

func TestSession_popScenario(t *testing.T) {
	presenter := newRecordingPresenter()
	s := newTestSession(presenter, nil)
	s.Start(at(0))
	s.score = 5
	b := addBalloon(s, "a", 200, 2)

	require.True(t, s.Pop("a", at(1000)))
	assert.Equal(t, 6, s.Score())
	assert.Equal(t, types.BalloonStatusPopping, b.Status)
	assert.Equal(t, [3]int{0, 0, 6}, presenter.digits)
	assert.True(t, presenter.popped["a"])

	// popping balloons never move
	s.Tick(at(1100))
	assert.Equal(t, 200.0, b.Y)

	s.Tick(at(1299))
	assert.NotNil(t, s.Balloon("a"))

	s.Tick(at(1300))
	assert.Nil(t, s.Balloon("a"))
	assert.Equal(t, types.BalloonStatusRemoved, b.Status)
	assert.NotContains(t, presenter.visible, "a")
	assert.Equal(t, 6, s.Score())
}

func TestSession_popIsIdempotent(t *testing.T) {
	s := newTestSession(nil, nil)
	s.Start(at(0))
	addBalloon(s, "a", 0, 1)

	assert.True(t, s.Pop("a", at(10)))
	assert.False(t, s.Pop("a", at(20)), "popping balloon")
	assert.Equal(t, 1, s.Score())

	s.FireDue(at(400))
	assert.False(t, s.Pop("a", at(500)), "removed balloon")
	assert.False(t, s.Pop("missing", at(500)), "unknown balloon")
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 0, s.PendingCleanups())
}

func TestSession_scoreIsCapped(t *testing.T) {
	s := newTestSession(nil, nil)
	s.Start(at(0))

	previous := 0
	for i := 0; i < 1000; i++ {
		id := fmt.Sprintf("b-%d", i)
		addBalloon(s, id, 0, 1)
		s.Pop(id, at(i))
		assert.GreaterOrEqual(t, s.Score(), previous)
		previous = s.Score()
	}
	assert.Equal(t, 999, s.Score())

	s.FireDue(at(5000))
	assert.Empty(t, s.Balloons())
}

func TestSession_evictsOffScreenBalloons(t *testing.T) {
	presenter := newRecordingPresenter()
	s := newTestSession(presenter, nil)
	s.Start(at(0))
	s.score = 3

	gone := addBalloon(s, "gone", 600+150, 2)
	edge := addBalloon(s, "edge", 600+98, 2)
	popping := addBalloon(s, "popping", 600+300, 2)
	popping.Status = types.BalloonStatusPopping
	s.cleanups.Schedule("popping", at(300))

	s.Tick(at(1))

	assert.Nil(t, s.Balloon("gone"))
	assert.Equal(t, types.BalloonStatusRemoved, gone.Status)
	assert.Equal(t, 3, s.Score())
	assert.Contains(t, presenter.destroyed, "gone")

	// y is now 700, exactly at the threshold
	assert.NotNil(t, s.Balloon("edge"))
	assert.Equal(t, 700.0, edge.Y)
	s.Tick(at(2))
	assert.Nil(t, s.Balloon("edge"))

	// popping balloons finish their animation instead of being evicted
	assert.NotNil(t, s.Balloon("popping"))
	s.Tick(at(300))
	assert.Nil(t, s.Balloon("popping"))
	assert.Equal(t, 3, s.Score())
}

func TestSession_statusTransitions(t *testing.T) {
	s := newTestSession(nil, nil)
	s.Start(at(0))
	b := addBalloon(s, "a", 0, 1)

	seen := []types.BalloonStatus{b.Status}
	record := func() {
		if seen[len(seen)-1] != b.Status {
			seen = append(seen, b.Status)
		}
	}

	s.Tick(at(10))
	record()
	s.Pop("a", at(20))
	record()
	for ms := 30; ms <= 400; ms += 16 {
		s.Tick(at(ms))
		s.Pop("a", at(ms))
		record()
	}

	assert.Equal(t, []types.BalloonStatus{
		types.BalloonStatusActive,
		types.BalloonStatusPopping,
		types.BalloonStatusRemoved,
	}, seen)
}

func TestSession_lifecycle(t *testing.T) {
	tests := []struct {
		name  string
		run   func(s *Session)
		check func(t *testing.T, s *Session)
	}{
		{
			name: "exit clears balloons and keeps score",
			run: func(s *Session) {
				s.score = 7
				addBalloon(s, "a", 0, 1)
				addBalloon(s, "b", 10, 1)
				addBalloon(s, "c", 20, 1)
				s.Exit()
			},
			check: func(t *testing.T, s *Session) {
				assert.Empty(t, s.Balloons())
				assert.Equal(t, 7, s.Score())
				assert.Equal(t, types.SessionStateIdle, s.State())
				assert.False(t, s.Resume())
			},
		},
		{
			name: "exit cancels pending cleanups",
			run: func(s *Session) {
				addBalloon(s, "a", 0, 1)
				s.Pop("a", at(0))
				s.Exit()
				s.FireDue(at(1000))
			},
			check: func(t *testing.T, s *Session) {
				assert.Equal(t, 0, s.PendingCleanups())
				assert.Equal(t, 1, s.Score())
			},
		},
		{
			name: "restart resets score",
			run: func(s *Session) {
				s.score = 42
				addBalloon(s, "a", 0, 1)
				s.Exit()
				s.Start(at(5000))
			},
			check: func(t *testing.T, s *Session) {
				assert.Equal(t, 0, s.Score())
				assert.Empty(t, s.Balloons())
				assert.True(t, s.IsRunning())
			},
		},
		{
			name: "pause freezes balloons",
			run: func(s *Session) {
				s.score = 2
				addBalloon(s, "a", 0, 1)
				s.Pause()
				s.Tick(at(5000))
			},
			check: func(t *testing.T, s *Session) {
				require.Len(t, s.Balloons(), 1)
				assert.Equal(t, 0.0, s.Balloons()[0].Y)
				assert.Equal(t, 2, s.Score())
				assert.True(t, s.IsPaused())
				assert.False(t, s.IsRunning())
			},
		},
		{
			name: "resume continues without reset",
			run: func(s *Session) {
				s.score = 2
				addBalloon(s, "a", 0, 1)
				s.Pause()
				s.Resume()
				s.Tick(at(10))
			},
			check: func(t *testing.T, s *Session) {
				require.Len(t, s.Balloons(), 1)
				assert.Equal(t, 1.0, s.Balloons()[0].Y)
				assert.Equal(t, 2, s.Score())
				assert.True(t, s.IsRunning())
			},
		},
		{
			name: "cleanups fire while paused",
			run: func(s *Session) {
				addBalloon(s, "a", 0, 1)
				s.Pop("a", at(0))
				s.Pause()
				s.FireDue(at(300))
			},
			check: func(t *testing.T, s *Session) {
				assert.Empty(t, s.Balloons())
				assert.Equal(t, 1, s.Score())
			},
		},
		{
			name: "tick before start does nothing",
			run: func(s *Session) {
				s.Exit()
				s.Tick(at(100000))
			},
			check: func(t *testing.T, s *Session) {
				assert.Empty(t, s.Balloons())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(nil, nil)
			s.Start(at(0))
			tt.run(s)
			tt.check(t, s)
		})
	}
}

func TestSession_resizeClampsAnchors(t *testing.T) {
	s := newTestSession(nil, nil)
	near := addBalloon(s, "near", 0, 1)
	near.XOrigin = 700
	inside := addBalloon(s, "inside", 0, 1)
	inside.XOrigin = 100

	s.Resize(types.Viewport{Width: 400, Height: 600})
	assert.Equal(t, 350.0, near.XOrigin)
	assert.Equal(t, 100.0, inside.XOrigin)

	s.Resize(types.Viewport{Width: 10, Height: 600})
	assert.Equal(t, 0.0, near.XOrigin)
	assert.Equal(t, 0.0, inside.XOrigin)
}

func TestSession_presenterAndSound(t *testing.T) {
	presenter := mocks.NewPresenter(t)
	sound := mocks.NewSoundPlayer(t)

	presenter.EXPECT().SetScoreDigits(0, 0, 0).Return()
	presenter.EXPECT().CreateBalloon(mock.Anything).Return()
	presenter.EXPECT().MoveBalloon(mock.Anything).Return().Maybe()
	presenter.EXPECT().ShowPopped(mock.MatchedBy(func(b *types.Balloon) bool {
		return b.ID == "a" && b.Status == types.BalloonStatusPopping
	})).Return().Once()
	presenter.EXPECT().SetScoreDigits(0, 0, 1).Return().Once()
	presenter.EXPECT().DestroyBalloon("a").Return().Once()
	sound.EXPECT().PlayPop().Return(errors.New("no audio device")).Once()

	s := NewSession(NewSessionOptions{
		Presenter: presenter,
		Sound:     sound,
		Random:    &sequenceRandom{values: []float64{0.5}},
		Viewport:  types.Viewport{Width: 800, Height: 600},
	})
	s.Start(at(0))
	addBalloon(s, "a", 0, 1)

	assert.True(t, s.Pop("a", at(50)), "audio failures must not block the pop")
	assert.Equal(t, 1, s.Score())
	s.Tick(at(350))
	assert.Empty(t, s.Balloons())
}

func TestScoreDigits(t *testing.T) {
	tests := []struct {
		score               int
		hundreds, tens, one int
	}{
		{0, 0, 0, 0},
		{7, 0, 0, 7},
		{42, 0, 4, 2},
		{305, 3, 0, 5},
		{999, 9, 9, 9},
		{-3, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.score), func(t *testing.T) {
			h, te, o := ScoreDigits(tt.score)
			assert.Equal(t, []int{tt.hundreds, tt.tens, tt.one}, []int{h, te, o})
		})
	}
}

func TestCleanupScheduler(t *testing.T) {
	c := newCleanupScheduler()
	c.Schedule("late", at(500))
	c.Schedule("early", at(300))
	c.Schedule("tie", at(300))
	c.Schedule("early", at(900))
	c.Schedule("cancelled", at(100))
	c.Cancel("cancelled")

	assert.Empty(t, c.Due(at(299)))
	assert.Equal(t, []string{"early", "tie"}, c.Due(at(300)))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, []string{"late"}, c.Due(at(10000)))
	assert.Equal(t, 0, c.Len())
}

func TestTuning_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(t *Tuning)
		wantErr bool
	}{
		{name: "defaults", modify: func(*Tuning) {}},
		{name: "no balloons", modify: func(t *Tuning) { t.MaxBalloons = 0 }, wantErr: true},
		{name: "inverted speed", modify: func(t *Tuning) { t.Speed = Range{Min: 3, Max: 1} }, wantErr: true},
		{name: "inverted interval", modify: func(t *Tuning) { t.SpawnIntervalMin = 2 * time.Second }, wantErr: true},
		{name: "fixed speed", modify: func(t *Tuning) { t.Speed = Range{Min: 2, Max: 2} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tt.modify(&tuning)
			err := tuning.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
