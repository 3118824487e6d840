//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"bloom/internal/app"
	"bloom/internal/audio"
	"bloom/internal/config"
	"bloom/internal/core"
	"bloom/internal/flower"
	"bloom/internal/prefs"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		log.Fatal(err)
	}
	if opts.Scheme != "" {
		cfg.Scheme = opts.Scheme
	}
	if opts.Seed >= 0 {
		cfg.Seed = opts.Seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	store, err := prefs.Open("bloom")
	if err != nil {
		log.Printf("prefs unavailable, continuing without persistence: %v", err)
		store = prefs.NewDegraded()
	}
	saved, err := store.Load(prefs.Prefs{Scheme: cfg.Scheme})
	if err != nil {
		log.Printf("ignoring saved prefs: %v", err)
	}
	if opts.Scheme == "" && saved.Scheme != "" {
		cfg.Scheme = saved.Scheme
	}

	scheme, ok := core.SchemeByName(cfg.Scheme)
	if !ok {
		log.Fatalf("unknown color scheme %q (have %v)", cfg.Scheme, core.SchemeNames())
	}
	palette, err := flower.PaletteFromHex(scheme.Palette)
	if err != nil {
		log.Fatal(err)
	}

	fl, err := flower.New(cfg.Grid, palette, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}

	var player *audio.Player
	if cfg.Soundtrack != "" && !opts.NoAudio {
		player, err = audio.Open(cfg.Soundtrack)
		if err != nil {
			log.Printf("soundtrack disabled: %v", err)
		} else {
			player.SetMuted(saved.Muted)
			defer player.Close()
		}
	}

	game := app.New(cfg, scheme, fl, player, store)

	ebiten.SetTPS(cfg.Grid.FrameRate)
	ebiten.SetWindowTitle("bloom — " + scheme.Name)
	ebiten.SetWindowSize(cfg.Window.Width+cfg.Window.HUDWidth, cfg.Window.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
