package animations

// Animation steps through a fixed number of frames, advancing one frame
// every frameSpeed updates.
type Animation struct {
	// frameCount is the number of frames in the animation.
	frameCount int
	// frameSpeed is the number of updates before the frame index is incremented.
	frameSpeed int
	// loop restarts the animation after the last frame.
	loop bool

	// updateCount is the number of times the animation has been updated.
	updateCount int
	// frameIndex is the current frame index.
	frameIndex int
}

type NewAnimationOptions struct {
	FrameCount int
	FrameSpeed int
	Loop       bool
}

func NewAnimation(opts NewAnimationOptions) *Animation {
	a := &Animation{
		frameCount: opts.FrameCount,
		frameSpeed: opts.FrameSpeed,
		loop:       opts.Loop,
	}
	if a.frameCount < 1 {
		a.frameCount = 1
	}
	if a.frameSpeed < 1 {
		a.frameSpeed = 1
	}
	return a
}

func (a *Animation) Update() {
	a.updateCount++
	frame := a.updateCount / a.frameSpeed
	if a.loop {
		a.frameIndex = frame % a.frameCount
		return
	}
	if frame >= a.frameCount {
		frame = a.frameCount - 1
	}
	a.frameIndex = frame
}

func (a *Animation) Reset() {
	a.updateCount = 0
	a.frameIndex = 0
}

func (a *Animation) Frame() int {
	return a.frameIndex
}

// Progress returns the current frame as a fraction in [0, 1].
func (a *Animation) Progress() float64 {
	if a.frameCount == 1 {
		return 1
	}
	return float64(a.frameIndex) / float64(a.frameCount-1)
}

// Done reports whether a non-looping animation reached its last frame.
func (a *Animation) Done() bool {
	return !a.loop && a.frameIndex == a.frameCount-1
}

// NewPopAnimation returns the burst played when a balloon is popped.
func NewPopAnimation() *Animation {
	return NewAnimation(NewAnimationOptions{
		FrameCount: 6,
		FrameSpeed: 2,
	})
}
