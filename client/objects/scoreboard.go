package objects

import (
	"image/color"
	"strconv"

	"github.com/cbodonnell/balloonpop/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	scoreboardMargin  = 16
	scoreboardPadding = 8
)

// Scoreboard shows the score as three independent digits in the top-right corner.
type Scoreboard struct {
	*BaseObject

	digits [3]int
}

func NewScoreboard(id string) *Scoreboard {
	return &Scoreboard{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 100}),
	}
}

// SetDigits sets the hundreds, tens and ones digit.
func (o *Scoreboard) SetDigits(hundreds, tens, ones int) {
	o.digits = [3]int{hundreds, tens, ones}
}

func (o *Scoreboard) Digits() (int, int, int) {
	return o.digits[0], o.digits[1], o.digits[2]
}

func (o *Scoreboard) Draw(screen *ebiten.Image) {
	f := fonts.TTFDigitFont
	bounds, advance := font.BoundString(f, "0")
	w := advance.Ceil() + scoreboardPadding
	h := (bounds.Max.Y - bounds.Min.Y).Ceil() + 2*scoreboardPadding

	x := screen.Bounds().Dx() - scoreboardMargin - 3*w
	y := scoreboardMargin
	for i, d := range o.digits {
		dx := float32(x + i*w)
		vector.DrawFilledRect(screen, dx, float32(y), float32(w-2), float32(h), color.RGBA{0xff, 0xff, 0xff, 0xcc}, false)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(dx)+scoreboardPadding/2, float64(y+scoreboardPadding-bounds.Min.Y.Floor()))
		op.ColorScale.ScaleWithColor(color.RGBA{0xd8, 0x1b, 0x60, 0xff})
		text.DrawWithOptions(screen, strconv.Itoa(d), f, op)
	}
}
