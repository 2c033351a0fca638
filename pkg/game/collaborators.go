package game

import (
	"github.com/cbodonnell/balloonpop/pkg/game/types"
)

// Presenter displays the session. Every call happens on the goroutine that
// drives the session.
type Presenter interface {
	// CreateBalloon adds the visual for a newly spawned balloon.
	CreateBalloon(balloon *types.Balloon)
	// MoveBalloon updates the visual position of a balloon.
	MoveBalloon(balloon *types.Balloon)
	// ShowPopped swaps a balloon's visual to its popped variant.
	ShowPopped(balloon *types.Balloon)
	// DestroyBalloon removes the visual of a balloon.
	DestroyBalloon(id string)
	// SetScoreDigits shows the hundreds, tens and ones digit of the score.
	SetScoreDigits(hundreds, tens, ones int)
}

// SoundPlayer plays one-shot audio cues.
type SoundPlayer interface {
	PlayPop() error
}

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

type noopPresenter struct{}

func (noopPresenter) CreateBalloon(*types.Balloon) {}
func (noopPresenter) MoveBalloon(*types.Balloon)   {}
func (noopPresenter) ShowPopped(*types.Balloon)    {}
func (noopPresenter) DestroyBalloon(string)        {}
func (noopPresenter) SetScoreDigits(int, int, int) {}

type noopSoundPlayer struct{}

func (noopSoundPlayer) PlayPop() error { return nil }
