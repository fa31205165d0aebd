package progression

import (
	"sync"
	"time"

	"github.com/ethernalpaths/gamecore/gamecore/catalog"
)

// DefaultNotifyDelay is the spacing between sequential unlock notifications.
const DefaultNotifyDelay = 2500 * time.Millisecond

// Clock abstracts the drain delay so tests can run without wall-clock waits.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// UnlockEvent is delivered to subscribers once per unlocked achievement.
type UnlockEvent struct {
	Type        string
	Achievement catalog.Achievement
}

const EventAchievementUnlocked = "achievement_unlocked"

// UnlockNotifier drains queued unlocks one at a time with a fixed delay
// between emissions, FIFO. Enqueue during an active drain appends to the same
// queue; there is never more than one drain goroutine.
type UnlockNotifier struct {
	mu        sync.Mutex
	queue     []catalog.Achievement
	listeners map[int]func(UnlockEvent)
	nextID    int
	draining  bool
	clock     Clock
	delay     time.Duration
}

func NewUnlockNotifier(clock Clock, delay time.Duration) *UnlockNotifier {
	if clock == nil {
		clock = realClock{}
	}
	if delay <= 0 {
		delay = DefaultNotifyDelay
	}
	return &UnlockNotifier{
		listeners: make(map[int]func(UnlockEvent)),
		clock:     clock,
		delay:     delay,
	}
}

// Subscribe registers a listener and returns its disposer. Disposing stops
// future deliveries but does not interrupt an in-flight delay.
func (n *UnlockNotifier) Subscribe(fn func(UnlockEvent)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.listeners[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

// Enqueue appends achievements to the queue and starts a drain if none is
// running.
func (n *UnlockNotifier) Enqueue(achievements ...catalog.Achievement) {
	if len(achievements) == 0 {
		return
	}

	n.mu.Lock()
	n.queue = append(n.queue, achievements...)
	start := !n.draining
	if start {
		n.draining = true
	}
	n.mu.Unlock()

	if start {
		go n.drain()
	}
}

// Pending reports the number of queued, not yet emitted unlocks.
func (n *UnlockNotifier) Pending() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.queue)
}

func (n *UnlockNotifier) drain() {
	for {
		n.mu.Lock()
		if len(n.queue) == 0 {
			n.draining = false
			n.mu.Unlock()
			return
		}
		achievement := n.queue[0]
		n.queue = n.queue[1:]
		listeners := make([]func(UnlockEvent), 0, len(n.listeners))
		for _, fn := range n.listeners {
			listeners = append(listeners, fn)
		}
		n.mu.Unlock()

		event := UnlockEvent{
			Type:        EventAchievementUnlocked,
			Achievement: achievement,
		}
		for _, fn := range listeners {
			fn(event)
		}

		<-n.clock.After(n.delay)
	}
}
