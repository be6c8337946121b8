package main

import (
	"flag"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/ninja/internal/application/game"
	"github.com/younwookim/ninja/internal/application/replay"
	"github.com/younwookim/ninja/internal/application/scene/playing"
	"github.com/younwookim/ninja/internal/application/system"
	"github.com/younwookim/ninja/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	stageFlag := flag.String("stage", "demo", "Stage to load from configs/stages")
	playersFlag := flag.Int("players", 1, "Number of players (1-4)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	watchFlag := flag.String("watch", "", "Load configs from this directory and reload them on change")
	flag.Parse()

	opts := playing.Options{
		StageName:  *stageFlag,
		Players:    *playersFlag,
		RecordPath: *recordFlag,
	}

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if data.Stage != "" {
			opts.StageName = data.Stage
		}
		opts.Replay = replay.NewReplayer(*data)
		log.Printf("Replaying %s: %d frames, %d players", *replayFlag, opts.Replay.TotalFrames(), opts.Replay.Players())
	}

	loader, err := newLoader(*watchFlag)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}

	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load stage
	stageCfg, err := loader.LoadStage(opts.StageName)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}
	stage, err := system.LoadStage(stageCfg)
	if err != nil {
		log.Fatalf("Failed to build stage: %v", err)
	}

	if *watchFlag != "" && opts.Replay == nil {
		watcher, err := config.NewWatcher(*watchFlag, filepath.Join(*watchFlag, "stages"))
		if err != nil {
			log.Fatalf("Failed to watch configs: %v", err)
		}
		defer func() { _ = watcher.Close() }()
		go func() {
			for err := range watcher.Errors {
				log.Printf("Config watcher: %v", err)
			}
		}()
		opts.Loader = loader
		opts.Changes = watcher.Events
		log.Printf("Watching %s for changes", *watchFlag)
	}

	scene, err := playing.New(cfg, stageCfg, stage, opts)
	if err != nil {
		log.Fatalf("Failed to start stage: %v", err)
	}

	display := cfg.Tuning.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight)
	if display.Framerate > 0 {
		g.SetDT(1.0 / float64(display.Framerate))
		ebiten.SetTPS(display.Framerate)
	}

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Ninja")

	// Run game
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}

// newLoader reads the embedded configs, or dir when one is given
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
