package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sqwad/config"
	"github.com/milk9111/sqwad/prefabs"
	"github.com/milk9111/sqwad/screen"
)

func main() {
	configPath := flag.String("config", "sqwad.yaml", "path to the yaml config")
	seed := flag.Uint64("seed", 0, "rng seed of the first session (0 keeps the config value)")
	initial := flag.String("screen", "", "screen to start on (main_menu, gameplay, game_over)")
	watch := flag.Bool("watch", false, "reload prefabs and scripts when they change on disk")
	debug := flag.Bool("debug", false, "enable debug mode")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *initial != "" {
		cfg.InitialScreen = *initial
	}
	cfg.WatchPrefabs = cfg.WatchPrefabs || *watch
	cfg.Debug = cfg.Debug || *debug

	if cfg.WatchPrefabs {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("watch prefabs: %v", err)
		} else {
			defer watcher.Close()
			go logReloads(watcher)
		}
	}

	app, err := screen.NewApp(screen.Options{
		Seed:    cfg.Seed,
		Audio:   newTonePlayer(),
		OpenURL: openURL,
		Initial: cfg.InitialScreen,
		Damping: cfg.Damping,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(cfg, app)); err != nil {
		log.Fatal(err)
	}
}

func logReloads(w *prefabs.Watcher) {
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			log.Printf("prefabs: %s changed, next load picks it up", name)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("prefabs: watch: %v", err)
		}
	}
}
