package objects

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Grass is a strip of grass blades along the bottom edge that sways sideways.
type Grass struct {
	*BaseObject

	t          float64
	speed      float64
	amplitude  float64
	frequency  float64
	height     float32
	bladeWidth float32
	clr        color.RGBA
}

type NewGrassOptions struct {
	// Amplitude is the maximum sideways offset in pixels.
	Amplitude float64
	// Frequency scales the phase, e.g. 1.5 sways faster than 1.
	Frequency float64
	// Height is the height of the blades in pixels.
	Height float32
	// Color is the color of the blades.
	Color color.RGBA
	// ZIndex is the z-index of the grass layer.
	ZIndex int
}

func NewGrass(id string, opts NewGrassOptions) *Grass {
	return &Grass{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		speed:      0.02,
		amplitude:  opts.Amplitude,
		frequency:  opts.Frequency,
		height:     opts.Height,
		bladeWidth: 14,
		clr:        opts.Color,
	}
}

func (o *Grass) Update() error {
	o.t += o.speed
	return nil
}

// Offset returns the current sideways offset.
func (o *Grass) Offset() float64 {
	return math.Sin(o.t*o.frequency) * o.amplitude
}

func (o *Grass) Draw(screen *ebiten.Image) {
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	offset := float32(o.Offset())
	base := h - o.height/3
	vector.DrawFilledRect(screen, 0, base, w, o.height/3, o.clr, false)
	for x := -o.bladeWidth * 2; x < w+o.bladeWidth*2; x += o.bladeWidth {
		vector.StrokeLine(screen, x, base+1, x+offset, h-o.height, 3, o.clr, true)
	}
}
