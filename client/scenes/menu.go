package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/balloonpop/client/fonts"
	"github.com/cbodonnell/balloonpop/client/objects"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

var skyColor = color.RGBA{0x87, 0xce, 0xeb, 0xff}

type MenuScene struct {
	*BaseScene

	onStart   func()
	lastScore int
	ui        *ebitenui.UI
}

type MenuSceneOptions struct {
	// OnStart is called when the start button is pressed.
	OnStart func()
	// LastScore is the score of the previous play-through. Zero hides it.
	LastScore int
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	if opts.OnStart == nil {
		return nil, fmt.Errorf("menu scene requires an OnStart handler")
	}
	return &MenuScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("menu-root", nil)),
		onStart:   opts.OnStart,
		lastScore: opts.LastScore,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *MenuScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 229, G: 57, B: 53, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 198, G: 40, B: 40, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 160, G: 27, B: 27, A: 255}),
	}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(40),
		)),
	)
	rootContainer.AddChild(column)

	column.AddChild(widget.NewText(
		widget.TextOpts.Text("Balloon Pop", fonts.MPlusTitleFont, color.White),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	if s.lastScore > 0 {
		column.AddChild(widget.NewText(
			widget.TextOpts.Text(fmt.Sprintf("Last score: %d", s.lastScore), fonts.TTFNormalFont, color.White),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		))
	}

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Start", fonts.TTFLargeFont, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   60,
			Right:  60,
			Top:    10,
			Bottom: 10,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.onStart()
		}),
	)
	column.AddChild(button)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
