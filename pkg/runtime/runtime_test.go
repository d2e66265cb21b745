package runtime

import (
	"errors"
	"sync"
	"testing"

	"gitlab.com/tinyland/lab/weft/pkg/message"
	"gitlab.com/tinyland/lab/weft/pkg/model"
)

// newRootModel builds a registry with a single "root" component whose
// Update is supplied by the test, and returns an instance of it.
func newRootModel(t *testing.T, update model.UpdateFunc) *model.Model {
	t.Helper()
	reg := model.NewRegistry()
	def := &model.Definition{
		Name:   "root",
		View:   func(*model.Model) (string, error) { return "", nil },
		Update: update,
	}
	if update == nil {
		def.Update = func(m *model.Model, _ message.Message) (*model.Model, message.Command, error) {
			return m, message.NoCommand{}, nil
		}
	}
	if err := reg.Register(def); err != nil {
		t.Fatalf("register: %v", err)
	}
	m, err := reg.New("root", nil)
	if err != nil {
		t.Fatalf("new root: %v", err)
	}
	return m
}

func TestEmptyTickIsIdempotent(t *testing.T) {
	rt := New()
	m := newRootModel(t, nil)

	got, err := rt.Tick(m)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if got != m {
		t.Error("empty tick must return the model unchanged")
	}
	if rt.ShouldRender() {
		t.Error("empty tick must not schedule a render")
	}
}

func TestNoneMessagesSuppressRender(t *testing.T) {
	rt := New()
	m := newRootModel(t, nil)

	rt.Enqueue(message.None{})
	rt.Enqueue(message.None{})

	if _, err := rt.Tick(m); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if rt.ShouldRender() {
		t.Error("a tick draining only None messages must not schedule a render")
	}
}

func TestAnyNonNoneMessageSchedulesRender(t *testing.T) {
	rt := New()
	// Update leaves the model untouched; render is still due because a
	// non-None message was drained.
	m := newRootModel(t, nil)

	rt.Enqueue(message.None{})
	rt.Enqueue(message.Tick{})
	rt.Enqueue(message.None{})

	if _, err := rt.Tick(m); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !rt.ShouldRender() {
		t.Error("a tick draining a non-None message must schedule a render")
	}

	// The flag reflects the most recent tick only.
	if _, err := rt.Tick(m); err != nil {
		t.Fatalf("second Tick: %v", err)
	}
	if rt.ShouldRender() {
		t.Error("render flag must reset on the next (empty) tick")
	}
}

func TestTickDrainsInFIFOOrder(t *testing.T) {
	rt := New()
	var seen []string
	m := newRootModel(t, func(m *model.Model, msg message.Message) (*model.Model, message.Command, error) {
		if kp, ok := msg.(message.KeyPress); ok {
			seen = append(seen, kp.Key)
		}
		return m, nil, nil
	})

	for _, k := range []string{"a", "b", "c"} {
		rt.Enqueue(message.KeyPress{Key: k})
	}
	if _, err := rt.Tick(m); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	want := []string{"a", "b", "c"}
	if len(seen) != len(want) {
		t.Fatalf("drained %d messages, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("message %d = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestExitCommandStopsRuntime(t *testing.T) {
	rt := New()
	rt.Start()

	// The canonical quit scenario: "q" answers with ExitCommand.
	m := newRootModel(t, func(m *model.Model, msg message.Message) (*model.Model, message.Command, error) {
		if kp, ok := msg.(message.KeyPress); ok && kp.Key == "q" {
			return m, message.ExitCommand{}, nil
		}
		return m, message.NoCommand{}, nil
	})

	rt.Enqueue(message.KeyPress{Key: "q", Value: "q"})
	if _, err := rt.Tick(m); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if rt.Running() {
		t.Error("runtime must be stopped after an ExitCommand")
	}
}

func TestBatchCommandDefersToNextTick(t *testing.T) {
	rt := New()
	var seen []message.Message
	m := newRootModel(t, func(m *model.Model, msg message.Message) (*model.Model, message.Command, error) {
		seen = append(seen, msg)
		if _, ok := msg.(message.Tick); ok {
			return m, message.BatchCommand{Messages: []message.Message{
				message.KeyPress{Key: "x"},
				message.Reload{},
			}}, nil
		}
		return m, nil, nil
	})

	rt.Enqueue(message.Tick{})
	m, err := rt.Tick(m)
	if err != nil {
		t.Fatalf("tick 1: %v", err)
	}
	if len(seen) != 1 {
		t.Fatalf("tick 1 drained %d messages, want 1 (batch must not be re-entrant)", len(seen))
	}

	if _, err := rt.Tick(m); err != nil {
		t.Fatalf("tick 2: %v", err)
	}
	if len(seen) != 3 {
		t.Fatalf("tick 2 drained %d total, want 3", len(seen))
	}
	if !message.Equal(seen[1], message.KeyPress{Key: "x"}) || !message.Equal(seen[2], message.Reload{}) {
		t.Errorf("batch contents replayed out of order: %v", seen[1:])
	}
}

func TestUpdateErrorPropagates(t *testing.T) {
	rt := New()
	boom := errors.New("boom")
	m := newRootModel(t, func(m *model.Model, _ message.Message) (*model.Model, message.Command, error) {
		return nil, nil, boom
	})

	rt.Enqueue(message.None{})
	if _, err := rt.Tick(m); !errors.Is(err, boom) {
		t.Errorf("Tick err = %v, want the update error verbatim", err)
	}
}

func TestStartStopFlags(t *testing.T) {
	rt := New()
	if rt.Running() {
		t.Error("a new runtime must be stopped")
	}
	rt.Start()
	if !rt.Running() {
		t.Error("Start must set running")
	}
	rt.Stop()
	if rt.Running() {
		t.Error("Stop must clear running")
	}
}

func TestConcurrentProducers(t *testing.T) {
	rt := New()
	count := 0
	m := newRootModel(t, func(m *model.Model, _ message.Message) (*model.Model, message.Command, error) {
		count++
		return m, nil, nil
	})

	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				rt.Enqueue(message.Tick{})
			}
		}()
	}
	wg.Wait()

	if _, err := rt.Tick(m); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if count != producers*perProducer {
		t.Errorf("drained %d messages, want %d", count, producers*perProducer)
	}
}
