package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/balloonpop/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextEffect is a short-lived text that floats upward and removes itself,
// e.g. the "+1" shown where a balloon was popped.
type TextEffect struct {
	*BaseObject

	text  string
	x     float64
	y     float64
	color color.Color
	ttl   int
}

type NewTextEffectOptions struct {
	// Text is the text to display.
	Text string
	// X is the screen x-coordinate of the text center.
	X float64
	// Y is the screen y-coordinate of the text baseline.
	Y float64
	// Color is the color of the text.
	Color color.Color
	// TTL is the time to live in milliseconds.
	TTL int
	// ZIndex is the z-index of the text effect.
	ZIndex int
}

func NewTextEffect(id string, opts NewTextEffectOptions) *TextEffect {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}

	return &TextEffect{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		text:       opts.Text,
		x:          opts.X,
		y:          opts.Y,
		color:      clr,
		ttl:        opts.TTL,
	}
}

func (o *TextEffect) Update() error {
	factor := float64(ebiten.TPS()) / 60
	o.y -= 1 * factor
	if o.ttl > 0 {
		o.ttl -= 1000 / ebiten.TPS()
		if o.ttl <= 0 {
			if err := o.BaseObject.RemoveFromParent(); err != nil {
				return fmt.Errorf("failed to remove text effect from parent: %w", err)
			}
		}
	}
	return nil
}

func (o *TextEffect) Draw(screen *ebiten.Image) {
	f := fonts.TTFNormalFont
	bounds, _ := font.BoundString(f, o.text)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.x-float64(bounds.Max.X>>6)/2, o.y)
	op.ColorScale.ScaleWithColor(o.color)
	text.DrawWithOptions(screen, o.text, f, op)
}
