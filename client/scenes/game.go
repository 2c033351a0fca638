package scenes

import (
	"fmt"
	stdimage "image"
	"image/color"
	"time"

	"github.com/cbodonnell/balloonpop/client/fonts"
	"github.com/cbodonnell/balloonpop/client/input"
	"github.com/cbodonnell/balloonpop/client/objects"
	"github.com/cbodonnell/balloonpop/pkg/collisions"
	"github.com/cbodonnell/balloonpop/pkg/game"
	gametypes "github.com/cbodonnell/balloonpop/pkg/game/types"
	"github.com/cbodonnell/balloonpop/pkg/log"
	"github.com/cbodonnell/balloonpop/pkg/queue"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// PopQueueSize bounds the pop requests buffered between input and the session.
	PopQueueSize = 32
	// PopTextTTL is how long the "+1" effect floats, in milliseconds.
	PopTextTTL = 600
)

// GameScene shows a running session. It is the session's presenter: every
// balloon visual is created, moved and destroyed on the session's behalf.
type GameScene struct {
	*BaseScene

	session  *game.Session
	viewport gametypes.Viewport
	now      func() time.Time

	// hitSpace resolves pointer positions to the balloons under them.
	hitSpace *collisions.HitSpace
	// popQueue buffers pop requests until the next update.
	popQueue queue.Queue[gametypes.PopRequest]
	// balloons are the balloon visuals indexed by balloon ID.
	balloons map[string]*objects.Balloon
	pointers []stdimage.Point

	scoreboard   *objects.Scoreboard
	pauseOverlay *objects.TextOverlayObject
	ui           *ebitenui.UI
	backButton   *widget.Button
	onBack       func()
}

type GameSceneOptions struct {
	// Sound plays the pop cue.
	Sound game.SoundPlayer
	// Tuning holds the gameplay parameters.
	Tuning game.Tuning
	// Viewport is the initial screen size.
	Viewport gametypes.Viewport
	// OnBack is called when the back button is pressed.
	OnBack func()
}

var _ Scene = &GameScene{}
var _ game.Presenter = &GameScene{}

func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	if err := opts.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %v", err)
	}

	s := &GameScene{
		BaseScene:    NewBaseScene(objects.NewSortedZIndexObject("game-root")),
		viewport:     opts.Viewport,
		now:          time.Now,
		hitSpace:     collisions.NewHitSpace(opts.Viewport),
		popQueue:     queue.NewInMemoryQueue[gametypes.PopRequest](PopQueueSize),
		balloons:     make(map[string]*objects.Balloon),
		scoreboard:   objects.NewScoreboard("scoreboard"),
		pauseOverlay: objects.NewTextOverlayObject("pause-overlay", "Paused"),
		onBack:       opts.OnBack,
	}
	tuning := opts.Tuning
	s.session = game.NewSession(game.NewSessionOptions{
		Presenter: s,
		Sound:     opts.Sound,
		Tuning:    &tuning,
		Viewport:  opts.Viewport,
	})
	return s, nil
}

// Session returns the session shown by the scene.
func (s *GameScene) Session() *game.Session {
	return s.session
}

func (s *GameScene) Init() error {
	root := s.GetRoot()
	if err := root.AddChild("grass-back", objects.NewGrass("grass-back", objects.NewGrassOptions{
		Amplitude: 10,
		Frequency: 1,
		Height:    60,
		Color:     color.RGBA{0x2e, 0x7d, 0x32, 0xff},
		ZIndex:    1,
	})); err != nil {
		return fmt.Errorf("failed to add back grass: %v", err)
	}
	if err := root.AddChild("grass-front", objects.NewGrass("grass-front", objects.NewGrassOptions{
		Amplitude: 20,
		Frequency: 1.5,
		Height:    40,
		Color:     color.RGBA{0x66, 0xbb, 0x6a, 0xff},
		ZIndex:    50,
	})); err != nil {
		return fmt.Errorf("failed to add front grass: %v", err)
	}
	if err := root.AddChild(s.scoreboard.GetID(), s.scoreboard); err != nil {
		return fmt.Errorf("failed to add scoreboard: %v", err)
	}
	if err := root.AddChild(s.pauseOverlay.GetID(), s.pauseOverlay); err != nil {
		return fmt.Errorf("failed to add pause overlay: %v", err)
	}

	s.renderUI()

	if err := s.BaseScene.Init(); err != nil {
		return err
	}

	s.session.Start(s.now())
	return nil
}

func (s *GameScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 255, G: 255, B: 255, A: 200}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 230, G: 230, B: 235, A: 220}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 200, G: 200, B: 210, A: 240}),
	}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(16)),
		)),
	)

	s.backButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Back", fonts.TTFNormalFont, &widget.ButtonTextColor{
			Idle:     color.NRGBA{R: 40, G: 40, B: 60, A: 255},
			Disabled: color.NRGBA{R: 120, G: 120, B: 120, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   20,
			Right:  20,
			Top:    5,
			Bottom: 5,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if s.onBack != nil {
				s.onBack()
			}
		}),
	)
	rootContainer.AddChild(s.backButton)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *GameScene) Update() error {
	now := s.now()

	s.ui.Update()

	if err := s.handlePointers(); err != nil {
		return fmt.Errorf("failed to handle pointers: %v", err)
	}

	if err := s.processPopRequests(now); err != nil {
		return fmt.Errorf("failed to process pop requests: %v", err)
	}

	if s.session.IsRunning() {
		s.session.Tick(now)
	} else {
		// popped balloons finish on wall-clock time even while paused
		s.session.FireDue(now)
	}
	s.pauseOverlay.SetVisible(s.session.IsPaused())

	if err := s.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update base scene: %v", err)
	}

	return nil
}

// handlePointers turns clicks and touches on balloons into pop requests.
func (s *GameScene) handlePointers() error {
	s.pointers = input.AppendJustPressedPointers(s.pointers[:0])
	if len(s.pointers) == 0 || !s.session.IsRunning() {
		return nil
	}

	s.hitSpace.Sync(s.session.Balloons(), s.viewport)
	backRect := s.backButton.GetWidget().Rect
	for _, p := range s.pointers {
		if p.In(backRect) {
			continue
		}
		id, ok := s.hitSpace.BalloonAt(float64(p.X), float64(p.Y))
		if !ok {
			continue
		}
		if err := s.popQueue.Enqueue(gametypes.PopRequest{BalloonID: id}); err != nil {
			log.Warn("Dropped pop request for balloon %s: %v", id, err)
		}
	}
	return nil
}

func (s *GameScene) processPopRequests(now time.Time) error {
	requests, err := s.popQueue.ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read pop requests: %v", err)
	}
	for _, req := range requests {
		s.session.Pop(req.BalloonID, now)
	}
	return nil
}

// Resize fits the session and every balloon visual to a new screen size.
func (s *GameScene) Resize(viewport gametypes.Viewport) {
	if viewport == s.viewport {
		return
	}
	s.viewport = viewport
	s.session.Resize(viewport)
	for _, b := range s.session.Balloons() {
		if obj, ok := s.balloons[b.ID]; ok {
			obj.SetPosition(b, viewport)
		}
	}
}

func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	s.BaseScene.Draw(screen)
	s.ui.Draw(screen)
}

func (s *GameScene) CreateBalloon(b *gametypes.Balloon) {
	obj := objects.NewBalloon(b, s.viewport)
	if err := s.GetRoot().AddChild(b.ID, obj); err != nil {
		log.Error("Failed to add balloon %s: %v", b.ID, err)
		return
	}
	s.balloons[b.ID] = obj
}

func (s *GameScene) MoveBalloon(b *gametypes.Balloon) {
	obj, ok := s.balloons[b.ID]
	if !ok {
		log.Warn("Moved balloon %s has no visual", b.ID)
		return
	}
	obj.SetPosition(b, s.viewport)
}

func (s *GameScene) ShowPopped(b *gametypes.Balloon) {
	obj, ok := s.balloons[b.ID]
	if !ok {
		log.Warn("Popped balloon %s has no visual", b.ID)
		return
	}
	obj.SetPopped()

	x, y := collisions.ScreenPosition(b, s.viewport)
	effectID := fmt.Sprintf("pop-text-%s", uuid.NewString())
	effect := objects.NewTextEffect(effectID, objects.NewTextEffectOptions{
		Text:   "+1",
		X:      x + b.Size/2,
		Y:      y + b.Size/2,
		Color:  color.White,
		TTL:    PopTextTTL,
		ZIndex: 150,
	})
	if err := s.GetRoot().AddChild(effectID, effect); err != nil {
		log.Error("Failed to add pop text effect: %v", err)
	}
}

func (s *GameScene) DestroyBalloon(id string) {
	if _, ok := s.balloons[id]; !ok {
		return
	}
	delete(s.balloons, id)
	if err := s.GetRoot().RemoveChild(id); err != nil {
		log.Error("Failed to remove balloon %s: %v", id, err)
	}
}

func (s *GameScene) SetScoreDigits(hundreds, tens, ones int) {
	s.scoreboard.SetDigits(hundreds, tens, ones)
}
