// weft is an Elm-style terminal UI runtime: immutable component trees,
// message-driven updates, and weighted flexbox-like layout.
//
// Running the binary starts a small demo application that echoes typed
// keys into the main pane over a status line. It exists to exercise the
// full stack end to end; real applications import the packages and build
// their own component registry.
//
// Usage:
//
//	weft [flags]
//
// Flags:
//
//	-config string   Path to configuration file (default: XDG search path)
//	-log string      Log file path (overrides config)
//	-no-alt-screen   Render in the main screen buffer
//	-version         Print version and exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gitlab.com/tinyland/lab/weft/pkg/components"
	"gitlab.com/tinyland/lab/weft/pkg/config"
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/log"
	"gitlab.com/tinyland/lab/weft/pkg/message"
	"gitlab.com/tinyland/lab/weft/pkg/model"
	"gitlab.com/tinyland/lab/weft/pkg/program"
	"gitlab.com/tinyland/lab/weft/pkg/terminal"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	var (
		flagConfig      = flag.String("config", "", "path to configuration file")
		flagLog         = flag.String("log", "", "log file path")
		flagNoAltScreen = flag.Bool("no-alt-screen", false, "render in the main screen buffer")
		flagVersion     = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *flagVersion {
		fmt.Printf("weft %s (%s)\n", version, commit)
		return
	}

	if err := run(*flagConfig, *flagLog, *flagNoAltScreen); err != nil {
		fmt.Fprintln(os.Stderr, "weft:", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string, noAltScreen bool) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if logPath != "" {
		cfg.General.LogFile = logPath
	}
	if noAltScreen {
		cfg.Render.AltScreen = false
	}

	if !terminal.IsInteractive() {
		return fmt.Errorf("stdin/stdout is not a terminal")
	}

	logCfg := log.DefaultConfig()
	logCfg.Level = cfg.General.LogLevel
	logCfg.OutputPath = cfg.General.LogFile
	logger, err := log.New(logCfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	reg := model.NewRegistry()
	if err := components.RegisterAll(reg); err != nil {
		return err
	}
	if err := registerDemo(reg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := program.New(cfg, reg, "demo", nil, program.WithLogger(logger))
	err = p.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// registerDemo declares the demo tree: a column container whose main pane
// echoes typed keys and whose single-row status line shows the key hints.
func registerDemo(reg *model.Registry) error {
	return reg.Register(&model.Definition{
		Name:      "demo",
		Container: true,
		Direction: layout.Column,
		Defaults: model.State{
			"typed": "",
		},
		Children: []model.ChildSpec{
			{
				Select: model.Use{Name: components.TextName},
				Weight: 9,
				Map: func(parent model.State) model.State {
					content := parent.String("typed", "")
					if content == "" {
						content = "type something"
					}
					return model.State{"content": content, "bold": true}
				},
			},
			{
				Select: model.Use{Name: components.TextName},
				Weight: 1,
				Map: func(model.State) model.State {
					return model.State{
						"content": "q:quit  backspace:erase  ctrl+l:clear",
						"fg":      "#6B7280",
					}
				},
			},
		},
		Update: demoUpdate,
	})
}

func demoUpdate(m *model.Model, msg message.Message) (*model.Model, message.Command, error) {
	switch v := msg.(type) {
	case message.KeyPress:
		switch v.Key {
		case "q", "ctrl+c":
			return m, message.ExitCommand{}, nil
		case "ctrl+l":
			next, err := m.With(model.State{"typed": ""})
			return next, message.NoCommand{}, err
		case "backspace":
			typed := m.State().String("typed", "")
			if typed != "" {
				r := []rune(typed)
				typed = string(r[:len(r)-1])
			}
			next, err := m.With(model.State{"typed": typed})
			return next, message.NoCommand{}, err
		default:
			if v.Value == "" {
				return m, message.NoCommand{}, nil
			}
			typed := m.State().String("typed", "") + v.Value
			next, err := m.With(model.State{"typed": typed})
			return next, message.NoCommand{}, err
		}

	case message.Resize:
		next, err := m.With(model.State{
			model.KeyWidth:  v.Width,
			model.KeyHeight: v.Height,
		})
		return next, message.NoCommand{}, err

	case message.Reload:
		// Live reload re-registers definitions elsewhere; rebuilding the
		// tree here is enough to pick them up.
		next, err := m.With(model.State{})
		return next, message.NoCommand{}, err

	default:
		return m, message.NoCommand{}, nil
	}
}
