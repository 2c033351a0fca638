package game

import (
	"fmt"

	"github.com/cbodonnell/balloonpop/client/input"
	"github.com/cbodonnell/balloonpop/client/scenes"
	"github.com/cbodonnell/balloonpop/pkg/game"
	gametypes "github.com/cbodonnell/balloonpop/pkg/game/types"
	"github.com/cbodonnell/balloonpop/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// sound plays the pop cue.
	sound game.SoundPlayer
	// tuning holds the gameplay parameters for every new session.
	tuning game.Tuning
	// viewport is the current screen size.
	viewport gametypes.Viewport
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
	// gameScene is the current scene while playing.
	gameScene *scenes.GameScene
	// focused is the window focus seen on the previous update.
	focused bool
	// lastScore is the score of the last finished session.
	lastScore int
	// pendingMode is a mode change requested from a UI handler.
	pendingMode *GameMode
}

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	}
	return "Unknown"
}

type NewGameOptions struct {
	Debug    bool
	Sound    game.SoundPlayer
	Tuning   game.Tuning
	Viewport gametypes.Viewport
}

func NewGame(opts NewGameOptions) (*Game, error) {
	if err := opts.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %v", err)
	}

	g := &Game{
		debug:    opts.Debug,
		sound:    opts.Sound,
		tuning:   opts.Tuning,
		viewport: opts.Viewport,
		focused:  true,
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) requestMode(mode GameMode) {
	g.pendingMode = &mode
}

func (g *Game) loadMenu() error {
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		OnStart: func() {
			g.requestMode(GameModePlay)
		},
		LastScore: g.lastScore,
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.gameScene = nil
	g.mode = GameModeMenu
	return nil
}

func (g *Game) loadGame() error {
	gameScene, err := scenes.NewGameScene(scenes.GameSceneOptions{
		Sound:    g.sound,
		Tuning:   g.tuning,
		Viewport: g.viewport,
		OnBack: func() {
			g.requestMode(GameModeMenu)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := g.SetScene(gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	g.gameScene = gameScene
	g.mode = GameModePlay
	log.Info("Game started")
	return nil
}

// exitGame ends the session and returns to the menu.
func (g *Game) exitGame() error {
	if g.gameScene != nil {
		session := g.gameScene.Session()
		session.Exit()
		g.lastScore = session.Score()
		log.Info("Game over with score %d", g.lastScore)
	}
	return g.loadMenu()
}

func (g *Game) Update() error {
	g.handleFocus()

	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	if err := g.applyPendingMode(); err != nil {
		return fmt.Errorf("failed to change mode: %v", err)
	}

	return nil
}

// handleFocus pauses the session when the window loses focus and resumes it
// when focus comes back.
func (g *Game) handleFocus() {
	focused := ebiten.IsFocused()
	if focused == g.focused {
		return
	}
	g.focused = focused
	if g.mode != GameModePlay || g.gameScene == nil {
		return
	}
	session := g.gameScene.Session()
	if !focused {
		session.Pause()
		return
	}
	session.Resume()
}

func (g *Game) handleInput() error {
	switch g.mode {
	case GameModeMenu:
		if input.IsPositiveJustPressed() {
			g.requestMode(GameModePlay)
		}
	case GameModePlay:
		if input.IsNegativeJustPressed() {
			g.requestMode(GameModeMenu)
		}
	}

	return nil
}

func (g *Game) applyPendingMode() error {
	if g.pendingMode == nil {
		return nil
	}
	mode := *g.pendingMode
	g.pendingMode = nil
	if mode == g.mode {
		return nil
	}

	switch mode {
	case GameModeMenu:
		return g.exitGame()
	case GameModePlay:
		return g.loadGame()
	}
	return fmt.Errorf("unknown game mode: %s", mode)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))

	if g.gameScene == nil {
		return
	}

	session := g.gameScene.Session()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Balloons: %d", len(session.Balloons())))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Interval: %s", session.SpawnInterval()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Cleanups: %d", session.PendingCleanups()))
}

// Layout follows the window size so the play area always fills the screen.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	viewport := gametypes.Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	if viewport != g.viewport {
		g.viewport = viewport
		if g.gameScene != nil {
			g.gameScene.Resize(viewport)
		}
	}
	return outsideWidth, outsideHeight
}
