package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/younwookim/blockfall/internal/application/game"
	"github.com/younwookim/blockfall/internal/application/replay"
	"github.com/younwookim/blockfall/internal/application/scene/playing"
	"github.com/younwookim/blockfall/internal/infrastructure/config"
	"github.com/younwookim/blockfall/internal/infrastructure/spectate"
)

var (
	recordFlag   = flag.String("record", "", "Record input to file (e.g., -record replay.json, or -record auto)")
	replayFlag   = flag.String("replay", "", "Play back a recorded replay file")
	headlessFlag = flag.Bool("headless", false, "With -replay: run without a window and print the result")
	spectateFlag = flag.String("spectate", "", "Serve a read-only spectator websocket on this address (e.g., :8090)")
	presetFlag   = flag.String("preset", "", "Start from a field preset in configs/presets")
	seedFlag     = flag.Int64("seed", 0, "Piece sequence seed (0 = time based)")
	configFlag   = flag.String("config", "", "Read configs from this directory instead of the embedded copy")
	debugFlag    = flag.Bool("debug", false, "Log file and line numbers")
)

// loadConfig reads configs from dir, or from the embedded copy when dir is empty
func loadConfig(dir string) (*config.Loader, *config.GameConfig, error) {
	var loader *config.Loader
	if dir != "" {
		loader = config.NewLoader(dir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get config subfs: %w", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}

	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, err
	}
	return loader, cfg, nil
}

// loadPreset returns nil for an empty name
func loadPreset(loader *config.Loader, name string) (*config.PresetConfig, error) {
	if name == "" {
		return nil, nil
	}
	preset, err := loader.LoadPreset(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load preset %s: %w", name, err)
	}
	return preset, nil
}

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	flag.Parse()

	if *debugFlag {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	configDir := *configFlag
	if configDir == "" {
		configDir = os.Getenv("BLOCKFALL_CONFIG_DIR")
	}
	spectateAddr := *spectateFlag
	if spectateAddr == "" {
		spectateAddr = os.Getenv("BLOCKFALL_SPECTATE")
	}

	loader, cfg, err := loadConfig(configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Config loaded from %s", loader.BasePath())

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	presetName := *presetFlag
	name := replay.NewSessionName()

	var (
		replayer *replay.Replayer
		data     *replay.ReplayData
	)
	if *replayFlag != "" {
		data, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		log.Printf("Replay loaded: %s (%s, %d frames, seed %d)", *replayFlag, data.Session, data.Length, data.Seed)

		name = data.Session
		if presetName == "" {
			presetName = data.Preset
		}

		if *headlessFlag {
			preset, err := loadPreset(loader, presetName)
			if err != nil {
				log.Fatal(err)
			}
			result, err := runReplay(cfg, preset, data)
			if err != nil {
				log.Fatalf("Replay failed: %v", err)
			}
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				log.Fatalf("Failed to encode replay result: %v", err)
			}
			fmt.Println(string(out))
			return
		}
		replayer = replay.NewReplayer(*data)
		seed = replayer.Seed()
	}

	preset, err := loadPreset(loader, presetName)
	if err != nil {
		log.Fatal(err)
	}

	opts := playing.Options{
		Seed:   seed,
		Name:   name,
		Preset: preset,
	}
	if replayer != nil {
		opts.Input = replayer
	} else if *recordFlag != "" {
		opts.RecordPath = *recordFlag
		if opts.RecordPath == "auto" {
			opts.RecordPath = replay.GenerateFilename(name)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if spectateAddr != "" {
		hub := spectate.NewHub()
		go hub.Run(ctx)
		go func() {
			if err := hub.ListenAndServe(ctx, spectateAddr); err != nil {
				log.Printf("Spectator server stopped: %v", err)
			}
		}()
		opts.Publisher = hub
	}

	scene, err := playing.New(cfg, opts)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	log.Printf("Session %s (seed: %d)", scene.Name(), scene.Seed())

	display := cfg.Rules.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight)
	// A replay runs at the rate it was recorded at
	tps := tickRate(cfg, data)
	g.SetTPS(tps)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Blockfall - " + name)
	ebiten.SetTPS(tps)

	// Run game
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}
