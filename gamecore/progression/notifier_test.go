package progression

import (
	"sync"
	"testing"
	"time"

	"github.com/ethernalpaths/gamecore/gamecore/catalog"
)

// immediateClock fires every delay instantly so drains finish without waiting.
type immediateClock struct{}

func (immediateClock) After(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

// stepClock blocks each delay until the test releases it, making the drain
// loop advance one emission at a time.
type stepClock struct {
	step chan time.Time
}

func newStepClock() *stepClock {
	return &stepClock{step: make(chan time.Time)}
}

func (c *stepClock) After(time.Duration) <-chan time.Time {
	return c.step
}

func (c *stepClock) tick() {
	c.step <- time.Now()
}

func achievementsNamed(keys ...string) []catalog.Achievement {
	out := make([]catalog.Achievement, 0, len(keys))
	for _, key := range keys {
		out = append(out, catalog.Achievement{Key: key})
	}
	return out
}

func collectUnlocks(n *UnlockNotifier) (*[]string, *sync.Mutex, func()) {
	var mu sync.Mutex
	var got []string
	dispose := n.Subscribe(func(e UnlockEvent) {
		mu.Lock()
		got = append(got, e.Achievement.Key)
		mu.Unlock()
	})
	return &got, &mu, dispose
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition not reached within deadline")
}

func TestUnlockNotifier_FIFOOrder(t *testing.T) {
	n := NewUnlockNotifier(immediateClock{}, 1)
	got, mu, dispose := collectUnlocks(n)
	defer dispose()

	n.Enqueue(achievementsNamed("a", "b", "c")...)

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(*got) == 3
	})

	mu.Lock()
	defer mu.Unlock()
	want := []string{"a", "b", "c"}
	for i, key := range want {
		if (*got)[i] != key {
			t.Errorf("emission[%d] = %s, want %s", i, (*got)[i], key)
		}
	}
}

func TestUnlockNotifier_EventType(t *testing.T) {
	n := NewUnlockNotifier(immediateClock{}, 1)
	done := make(chan UnlockEvent, 1)
	dispose := n.Subscribe(func(e UnlockEvent) { done <- e })
	defer dispose()

	n.Enqueue(catalog.Achievement{Key: "first_steps", Name: "Erste Schritte"})

	select {
	case e := <-done:
		if e.Type != EventAchievementUnlocked {
			t.Errorf("event type = %q, want %q", e.Type, EventAchievementUnlocked)
		}
		if e.Achievement.Key != "first_steps" {
			t.Errorf("event achievement = %q, want first_steps", e.Achievement.Key)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event delivered")
	}
}

func TestUnlockNotifier_PacedDelivery(t *testing.T) {
	clock := newStepClock()
	n := NewUnlockNotifier(clock, time.Second)
	got, mu, dispose := collectUnlocks(n)
	defer dispose()

	n.Enqueue(achievementsNamed("a", "b")...)

	// First emission happens before any delay elapses.
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(*got) == 1
	})

	// The second stays queued until the clock fires.
	mu.Lock()
	if len(*got) != 1 {
		t.Fatalf("emissions before tick = %d, want 1", len(*got))
	}
	mu.Unlock()
	if pending := n.Pending(); pending != 1 {
		t.Errorf("Pending() = %d, want 1", pending)
	}

	clock.tick()
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(*got) == 2
	})
	clock.tick() // release the trailing delay so the drain goroutine exits
}

func TestUnlockNotifier_EnqueueDuringDrainAppends(t *testing.T) {
	clock := newStepClock()
	n := NewUnlockNotifier(clock, time.Second)
	got, mu, dispose := collectUnlocks(n)
	defer dispose()

	n.Enqueue(achievementsNamed("a")...)
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(*got) == 1
	})

	// The drain is parked on the delay; new unlocks join the same queue.
	n.Enqueue(achievementsNamed("b", "c")...)
	if pending := n.Pending(); pending != 2 {
		t.Errorf("Pending() = %d, want 2", pending)
	}

	clock.tick()
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(*got) == 2
	})
	clock.tick()
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(*got) == 3
	})

	mu.Lock()
	defer mu.Unlock()
	want := []string{"a", "b", "c"}
	for i, key := range want {
		if (*got)[i] != key {
			t.Errorf("emission[%d] = %s, want %s", i, (*got)[i], key)
		}
	}
	clock.tick()
}

func TestUnlockNotifier_DisposeStopsDelivery(t *testing.T) {
	n := NewUnlockNotifier(immediateClock{}, 1)
	got, mu, dispose := collectUnlocks(n)

	n.Enqueue(achievementsNamed("a")...)
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(*got) == 1
	})

	dispose()
	n.Enqueue(achievementsNamed("b")...)
	waitFor(t, func() bool { return n.Pending() == 0 })

	mu.Lock()
	defer mu.Unlock()
	if len(*got) != 1 {
		t.Errorf("disposed listener still received events: %v", *got)
	}
}

func TestUnlockNotifier_EnqueueNothingIsNoop(t *testing.T) {
	n := NewUnlockNotifier(immediateClock{}, 1)
	n.Enqueue()
	if n.Pending() != 0 {
		t.Errorf("Pending() = %d after empty enqueue", n.Pending())
	}
}

func TestUnlockNotifier_Defaults(t *testing.T) {
	n := NewUnlockNotifier(nil, 0)
	if n.delay != DefaultNotifyDelay {
		t.Errorf("delay = %v, want %v", n.delay, DefaultNotifyDelay)
	}
	if n.clock == nil {
		t.Errorf("clock not defaulted")
	}
}
