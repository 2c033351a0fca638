package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/balloonpop/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TextOverlayObject dims the screen and shows a centered message.
type TextOverlayObject struct {
	*BaseObject

	text    string
	visible bool
}

func NewTextOverlayObject(id string, text string) *TextOverlayObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 200}),
		text:       text,
	}
}

func (o *TextOverlayObject) SetVisible(visible bool) {
	o.visible = visible
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()), color.RGBA{0, 0, 0, 0x80}, false)
	t := strings.ToUpper(o.text)
	f := fonts.TTFLargeFont
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64(bounds.Max.X>>6)/2, float64(screen.Bounds().Dy())/2-float64(bounds.Max.Y>>6)/2)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, t, f, op)
}
