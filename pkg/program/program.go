// Package program is the driver that composes a weft application: it owns
// the runtime, the renderer, the input reader, and the optional file
// watcher, and runs the tick/render cycle until the runtime stops.
//
// Program is the explicit composition context. Everything it needs arrives
// through its constructor; there is no package-level mutable state, so
// tests can run a full program against a bytes.Buffer.
package program

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"gitlab.com/tinyland/lab/weft/pkg/config"
	"gitlab.com/tinyland/lab/weft/pkg/input"
	"gitlab.com/tinyland/lab/weft/pkg/message"
	"gitlab.com/tinyland/lab/weft/pkg/model"
	"gitlab.com/tinyland/lab/weft/pkg/renderer"
	"gitlab.com/tinyland/lab/weft/pkg/runtime"
	"gitlab.com/tinyland/lab/weft/pkg/terminal"
	"gitlab.com/tinyland/lab/weft/pkg/watch"
)

// Program wires a registry and a root component to the I/O edge.
type Program struct {
	cfg  *config.Config
	reg  *model.Registry
	log  *zap.Logger
	rt   *runtime.Runtime
	rend *renderer.Renderer

	rootName  string
	rootState model.State

	out       io.Writer
	withInput bool
}

// Option configures a Program.
type Option func(*Program)

// WithOutput redirects frames away from stdout. Mainly for tests.
func WithOutput(w io.Writer) Option {
	return func(p *Program) { p.out = w }
}

// WithoutInput disables the keyboard reader (and raw mode). Mainly for
// tests and non-interactive drivers.
func WithoutInput() Option {
	return func(p *Program) { p.withInput = false }
}

// WithLogger installs a logger. Defaults to a no-op.
func WithLogger(log *zap.Logger) Option {
	return func(p *Program) { p.log = log }
}

// New builds a program that will run the named root component.
func New(cfg *config.Config, reg *model.Registry, rootName string, rootState model.State, opts ...Option) *Program {
	p := &Program{
		cfg:       cfg,
		reg:       reg,
		log:       zap.NewNop(),
		rt:        runtime.New(),
		rootName:  rootName,
		rootState: rootState,
		out:       os.Stdout,
		withInput: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.rend = renderer.New(p.out, renderer.WithAltScreen(cfg.Render.AltScreen))
	return p
}

// Runtime exposes the underlying runtime so external producers (timers,
// collectors) can enqueue messages.
func (p *Program) Runtime() *runtime.Runtime {
	return p.rt
}

// Run executes the tick/render cycle until the runtime stops or ctx is
// done. The terminal is restored on every exit path.
func (p *Program) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p.reg.SetScreenSize(terminal.ScreenSize)

	root, err := p.reg.New(p.rootName, p.rootState)
	if err != nil {
		return fmt.Errorf("build root component: %w", err)
	}

	var reader *input.Reader
	if p.withInput {
		reader = input.NewReader(os.Stdin, p.rt)
		if err := reader.Start(ctx); err != nil {
			return fmt.Errorf("start input reader: %w", err)
		}
		defer reader.Stop()
	}

	if p.cfg.Watch.Enabled {
		w := watch.New(p.cfg.Watch.Paths, p.cfg.Watch.Debounce.Duration, p.rt, p.log)
		w.Start(ctx)
		defer w.Stop()
	}

	p.rend.Start()
	defer p.rend.Stop()

	p.rt.Start()
	p.log.Info("program started",
		zap.String("root", p.rootName),
		zap.Duration("tick", p.cfg.General.TickInterval.Duration))

	// Prime the first frame: the initial Resize both informs the app of
	// its dimensions and makes the first tick render-worthy.
	w, h := terminal.ScreenSize()
	p.rt.Enqueue(message.Resize{Width: w, Height: h})

	ticker := time.NewTicker(p.cfg.General.TickInterval.Duration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.rt.Stop()
			return ctx.Err()

		case <-ticker.C:
			next, err := p.rt.Tick(root)
			if err != nil {
				p.rt.Stop()
				p.log.Error("update failed", zap.Error(err))
				return err
			}
			root = next

			if p.rt.ShouldRender() {
				view, err := root.View()
				if err != nil {
					p.rt.Stop()
					p.log.Error("render failed", zap.Error(err))
					return err
				}
				p.rend.Frame(view)
			}

			if !p.rt.Running() {
				p.log.Info("program stopped")
				return nil
			}
		}
	}
}
