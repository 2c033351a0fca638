package objects

import (
	"image/color"
	"math"

	"github.com/cbodonnell/balloonpop/client/animations"
	"github.com/cbodonnell/balloonpop/pkg/collisions"
	gametypes "github.com/cbodonnell/balloonpop/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BalloonColors maps each balloon variant to its body color.
var BalloonColors = map[gametypes.BalloonColor]color.RGBA{
	gametypes.BalloonColorRed:    {0xe5, 0x39, 0x35, 0xff},
	gametypes.BalloonColorBlue:   {0x1e, 0x88, 0xe5, 0xff},
	gametypes.BalloonColorGreen:  {0x43, 0xa0, 0x47, 0xff},
	gametypes.BalloonColorYellow: {0xfd, 0xd8, 0x35, 0xff},
	gametypes.BalloonColorOrange: {0xfb, 0x8c, 0x00, 0xff},
	gametypes.BalloonColorPink:   {0xf0, 0x62, 0x92, 0xff},
	gametypes.BalloonColorPurple: {0x8e, 0x24, 0xaa, 0xff},
}

// Balloon draws one balloon at the position last reported by the session.
type Balloon struct {
	*BaseObject

	color  gametypes.BalloonColor
	size   float64
	x, y   float64
	popped bool
	burst  *animations.Animation
}

func NewBalloon(b *gametypes.Balloon, viewport gametypes.Viewport) *Balloon {
	o := &Balloon{
		BaseObject: NewBaseObject(b.ID, &NewBaseObjectOpts{ZIndex: 10}),
		color:      b.Color,
		size:       b.Size,
	}
	o.SetPosition(b, viewport)
	return o
}

// SetPosition moves the balloon to the balloon's current screen position.
func (o *Balloon) SetPosition(b *gametypes.Balloon, viewport gametypes.Viewport) {
	o.x, o.y = collisions.ScreenPosition(b, viewport)
}

// SetPopped swaps the balloon to its popped variant.
func (o *Balloon) SetPopped() {
	if o.popped {
		return
	}
	o.popped = true
	o.burst = animations.NewPopAnimation()
}

func (o *Balloon) Update() error {
	if o.burst != nil {
		o.burst.Update()
	}
	return nil
}

func (o *Balloon) IsPopped() bool {
	return o.popped
}

func (o *Balloon) Draw(screen *ebiten.Image) {
	if o.popped {
		o.drawPopped(screen)
		return
	}
	o.drawBalloon(screen)
}

func (o *Balloon) drawBalloon(screen *ebiten.Image) {
	clr := BalloonColors[o.color]
	s := float32(o.size)
	cx, cy := float32(o.x)+s/2, float32(o.y)+s*0.4
	r := s * 0.34

	// string
	vector.StrokeLine(screen, cx, cy+r, cx+s*0.04, float32(o.y)+s, 2, color.RGBA{0x55, 0x55, 0x55, 0xff}, true)
	// knot
	vector.DrawFilledCircle(screen, cx, cy+r+s*0.02, s*0.03, clr, true)
	// body, slightly taller than wide
	vector.DrawFilledCircle(screen, cx, cy, r, clr, true)
	vector.DrawFilledCircle(screen, cx, cy+r*0.25, r*0.92, clr, true)
	// highlight
	vector.DrawFilledCircle(screen, cx-r*0.4, cy-r*0.4, r*0.16, color.RGBA{0xff, 0xff, 0xff, 0x99}, true)
}

func (o *Balloon) drawPopped(screen *ebiten.Image) {
	clr := BalloonColors[o.color]
	s := float32(o.size)
	cx, cy := float32(o.x)+s/2, float32(o.y)+s*0.4
	// the rays spread outward as the burst plays
	spread := float32(0.6 + 0.4*o.burst.Progress())
	inner, outer := s*0.12*spread, s*0.38*spread

	const rays = 10
	for i := 0; i < rays; i++ {
		a := float64(i) * 2 * math.Pi / rays
		sin, cos := float32(math.Sin(a)), float32(math.Cos(a))
		vector.StrokeLine(screen, cx+cos*inner, cy+sin*inner, cx+cos*outer, cy+sin*outer, 4, clr, true)
		vector.DrawFilledCircle(screen, cx+cos*outer, cy+sin*outer, s*0.025, clr, true)
	}
}
