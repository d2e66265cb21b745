package input

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/x/term"

	"gitlab.com/tinyland/lab/weft/pkg/message"
	"gitlab.com/tinyland/lab/weft/pkg/terminal"
)

// Sink is where decoded messages go; the runtime's Enqueue satisfies it.
type Sink interface {
	Enqueue(msg message.Message)
}

// Reader decodes keyboard input from a terminal into KeyPress messages and
// forwards window-size changes as Resize messages.
type Reader struct {
	in   *os.File
	sink Sink

	rawState *term.State
}

// NewReader creates a Reader on the given terminal file (normally
// os.Stdin).
func NewReader(in *os.File, sink Sink) *Reader {
	return &Reader{in: in, sink: sink}
}

// Start puts the terminal into raw mode and launches the two producer
// goroutines: the byte-reading loop and the SIGWINCH watcher. Both stop
// when ctx is cancelled; Stop restores the terminal mode.
func (r *Reader) Start(ctx context.Context) error {
	state, err := term.MakeRaw(r.in.Fd())
	if err != nil {
		return err
	}
	r.rawState = state

	go r.readLoop(ctx)
	go r.resizeLoop(ctx)
	return nil
}

// Stop restores the terminal out of raw mode. Safe to call after a failed
// or absent Start.
func (r *Reader) Stop() error {
	if r.rawState == nil {
		return nil
	}
	err := term.Restore(r.in.Fd(), r.rawState)
	r.rawState = nil
	return err
}

// readLoop reads byte bursts and decodes as many complete key presses from
// each burst as possible, carrying incomplete trailing bytes into the next
// read.
func (r *Reader) readLoop(ctx context.Context) {
	buf := make([]byte, 256)
	var pending []byte

	for {
		n, err := r.in.Read(buf)
		if err != nil {
			// EOF, closed fd, or restore-during-read all end the loop.
			return
		}
		if ctx.Err() != nil {
			return
		}

		pending = append(pending, buf[:n]...)
		for len(pending) > 0 {
			kp, consumed := DecodeKey(pending)
			if consumed == 0 {
				break // incomplete sequence, wait for more bytes
			}
			pending = pending[consumed:]
			if kp.Key != "" {
				r.sink.Enqueue(kp)
			}
		}
	}
}

// resizeLoop forwards SIGWINCH as Resize messages carrying the new
// dimensions.
func (r *Reader) resizeLoop(ctx context.Context) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	defer signal.Stop(ch)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			s := terminal.GetSizeFromFd(r.in.Fd())
			r.sink.Enqueue(message.Resize{Width: s.Cols, Height: s.Rows})
		}
	}
}
