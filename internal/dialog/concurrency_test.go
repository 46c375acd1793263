package dialog

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventLog records observer events per dialog. Safe for concurrent use.
type eventLog struct {
	mu     sync.Mutex
	events map[uuid.UUID][]string
}

func newEventLog() *eventLog {
	return &eventLog{events: make(map[uuid.UUID][]string)}
}

func (l *eventLog) add(id uuid.UUID, event string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events[id] = append(l.events[id], event)
}

func (l *eventLog) DialogShown(id uuid.UUID, _ Content, _ int)      { l.add(id, "shown") }
func (l *eventLog) ButtonPressed(id uuid.UUID, _ int, label string) { l.add(id, "pressed "+label) }
func (l *eventLog) DialogClosed(id uuid.UUID)                       { l.add(id, "closed") }

func (l *eventLog) snapshot() map[uuid.UUID][]string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[uuid.UUID][]string, len(l.events))
	for id, ev := range l.events {
		out[id] = append([]string(nil), ev...)
	}

	return out
}

// checkState verifies the pool matches the dialog state.
func checkState(m *Manager) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	active := 0
	for i, s := range m.pool.slots {
		if s.active {
			if i != active {
				return fmt.Errorf("slot %d active after an inactive slot", i)
			}
			active++
		}
	}

	if active != m.pool.InUse() {
		return fmt.Errorf("%d active slots, %d in use", active, m.pool.InUse())
	}

	if !m.open && (m.pool.InUse() != 0 || m.requestID != uuid.Nil || m.pressed) {
		return fmt.Errorf("closed dialog holds %d slots", m.pool.InUse())
	}

	return nil
}

// run starts fns together and waits for all of them.
func run(fns ...func()) {
	var wg sync.WaitGroup
	start := make(chan struct{})

	for _, fn := range fns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			fn()
		}()
	}

	close(start)
	wg.Wait()
}

func TestConcurrentPressRunsOneAction(t *testing.T) {
	events := newEventLog()
	m, panel, slots := newTestManager(t, 2, WithObserver(events))

	var fired atomic.Int32
	slow := func() {
		time.Sleep(20 * time.Millisecond)
		fired.Add(1)
	}

	require.NoError(t, m.Show(NewContent("pick one",
		WithButton("A", slow),
		WithButton("B", slow),
	)))
	id := m.RequestID()

	run(
		func() { _ = m.Press(0) },
		func() { _ = m.Press(1) },
	)

	assert.Equal(t, int32(1), fired.Load(), "one press per dialog")
	assertClosed(t, m, panel, slots)

	ev := events.snapshot()[id]
	require.Len(t, ev, 3)
	assert.Equal(t, "shown", ev[0])
	assert.Contains(t, []string{"pressed A", "pressed B"}, ev[1])
	assert.Equal(t, "closed", ev[2])
}

func TestConcurrentPressCloseShow(t *testing.T) {
	events := newEventLog()
	m, _, _ := newTestManager(t, 3, WithObserver(events))

	done := make(chan struct{})
	checkErr := make(chan error, 1)
	go func() {
		defer close(checkErr)
		for {
			select {
			case <-done:
				return
			default:
			}
			if err := checkState(m); err != nil {
				checkErr <- err
				return
			}
		}
	}()

	for round := 0; round < 50; round++ {
		var fired atomic.Int32
		count := func() { fired.Add(1) }

		require.NoError(t, m.Show(NewContent(fmt.Sprintf("round %d", round),
			WithButton("YES", count),
			WithButton("NO", count),
			WithButton("CANCEL", count),
		)))

		run(
			func() { _ = m.Press(0) },
			func() { _ = m.Press(1) },
			func() { _ = m.Press(2) },
			m.Close,
			func() { _ = m.Show(NewContent("intruder", WithButton("OK", nil))) },
		)

		assert.LessOrEqual(t, fired.Load(), int32(1), "round %d", round)

		m.Close()
		require.NoError(t, checkState(m))
		assert.False(t, m.IsOpen())
		assert.Equal(t, 0, m.InUse())
		for _, s := range m.Slots() {
			assert.False(t, s.Active)
		}
	}

	close(done)
	require.NoError(t, <-checkErr)

	for id, ev := range events.snapshot() {
		require.NotEmpty(t, ev)
		assert.Equal(t, "shown", ev[0], "dialog %s", id)
		assert.Equal(t, "closed", ev[len(ev)-1], "dialog %s", id)
		assert.LessOrEqual(t, len(ev), 3, "dialog %s: %v", id, ev)
	}
}

func TestConcurrentShowOpensOneDialog(t *testing.T) {
	m, _, _ := newTestManager(t, 2)

	var opened, rejected atomic.Int32
	show := func() {
		err := m.Show(NewContent("race", WithButton("OK", nil)))
		switch {
		case err == nil:
			opened.Add(1)
		case assert.ErrorIs(t, err, ErrDialogOpen):
			rejected.Add(1)
		}
	}

	run(show, show, show, show)

	assert.Equal(t, int32(1), opened.Load())
	assert.Equal(t, int32(3), rejected.Load())
	assert.Equal(t, 1, m.InUse())
}
