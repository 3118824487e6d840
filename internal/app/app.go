//go:build ebiten

package app

import (
	"log"

	"bloom/internal/audio"
	"bloom/internal/config"
	"bloom/internal/core"
	"bloom/internal/flower"
	"bloom/internal/prefs"
	"bloom/internal/render"
	"bloom/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the flower to the ebiten.Game interface. The host loop runs
// at ebiten's tick rate; the logical frame ticks (rotation, animation) are
// paced separately at the configured frame rate.
type Game struct {
	cfg     config.Config
	scheme  core.Scheme
	flower  *flower.Flower
	painter *render.MeshPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	player  *audio.Player
	store   *prefs.Store
	ticker  *core.FrameTicker
}

// New wires the game together. The player may be nil (no soundtrack) and
// the store may be degraded; both are handled.
func New(cfg config.Config, scheme core.Scheme, fl *flower.Flower, player *audio.Player, store *prefs.Store) *Game {
	viewW := cfg.Window.Width
	return &Game{
		cfg:     cfg,
		scheme:  scheme,
		flower:  fl,
		painter: render.NewMeshPainter(viewW, cfg.Window.Height, cfg.Grid.FlowerSize, cfg.Grid.AlphaValue),
		hud:     ui.NewHUD(fl, cfg.Window.HUDWidth, cfg.Window.Height),
		overlay: ui.NewOverlay(),
		player:  player,
		store:   store,
		ticker:  core.NewFrameTicker(cfg.Grid.FrameRate),
	}
}

// Update handles input and advances one logical frame when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.flower.SetAnimated(!g.flower.Animated())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.applyScheme(core.NextScheme(g.scheme.Name))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.player.SetMuted(!g.player.Muted())
		g.savePrefs()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetParams()
	}

	g.overlay.Update()
	g.hud.Update(g.cfg.Window.Width, ui.Status{
		Scheme:   g.scheme.Name,
		Muted:    g.player.Muted(),
		HasAudio: g.player != nil,
	})

	if g.ticker.ShouldTick() {
		g.flower.AdvanceRotation()
		g.flower.Tick()
	}
	return nil
}

// Draw renders the flower view and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.scheme.Background)
	g.painter.Draw(screen, g.flower.Faces(), g.flower.Rotation())
	g.hud.Draw(screen, g.cfg.Window.Width)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size: flower view plus HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width + g.cfg.Window.HUDWidth, g.cfg.Window.Height
}

func (g *Game) applyScheme(s core.Scheme) {
	if s.Name == "" || s.Name == g.scheme.Name {
		return
	}
	pal, err := flower.PaletteFromHex(s.Palette)
	if err != nil {
		log.Printf("app: scheme %q unusable: %v", s.Name, err)
		return
	}
	if err := g.flower.SetPalette(pal); err != nil {
		log.Printf("app: scheme %q rejected: %v", s.Name, err)
		return
	}
	g.scheme = s
	g.hud.SetTextColor(s.PanelText)
	g.savePrefs()
}

func (g *Game) resetParams() {
	d := flower.DefaultParams()
	g.flower.UpdateParams(map[string]float64{
		flower.KeyOpening:       d.Opening,
		flower.KeyDensity:       d.Density,
		flower.KeyAlign:         d.Align,
		flower.KeyCurve1:        d.Curve1,
		flower.KeyCurve2:        d.Curve2,
		flower.KeyRotationSpeed: d.RotationSpeed,
	})
}

func (g *Game) savePrefs() {
	if g.store == nil {
		return
	}
	if err := g.store.Save(prefs.Prefs{Scheme: g.scheme.Name, Muted: g.player.Muted()}); err != nil {
		log.Printf("app: saving prefs: %v", err)
	}
}
