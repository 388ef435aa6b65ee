package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/snapsheet/assets/icon"
	"github.com/depeter/snapsheet/internal/app"
	"github.com/depeter/snapsheet/internal/config"
	"github.com/depeter/snapsheet/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (default "+config.ConfigPath()+")")
	writeDefaults := flag.Bool("write-config", false, "write the default config to -config and exit")
	flag.Parse()

	if *writeDefaults {
		defaults := config.DefaultConfig()
		var err error
		if *configPath == "" {
			*configPath = config.ConfigPath()
			err = defaults.Save()
		} else {
			err = defaults.SaveFile(*configPath)
		}
		if err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Printf("Wrote default config to %s", *configPath)
		return
	}

	// Load config
	var cfg *config.Config
	var err error
	if *configPath == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFile(*configPath)
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Init fonts
	if err := ui.InitFonts(goregular.TTF); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	game := app.NewGame(cfg, app.DemoPlaces)

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("SnapSheet")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
