package theme

import (
	"fmt"
	"sort"
	"sync"
)

// Controller owns the current mode for a session. Every change is persisted and then broadcast
// to subscribers, in that order.
type Controller struct {
	mu          sync.Mutex
	mode        Mode
	persister   *Persister
	subscribers map[int]func(Mode)
	nextID      int
}

// NewController starts a controller at initial and persists it, the same reaction any later
// change gets. An invalid initial mode is replaced by DefaultMode.
func NewController(initial Mode, persister *Persister) *Controller {
	if !initial.Valid() {
		initial = DefaultMode
	}

	c := &Controller{
		mode:        initial,
		persister:   persister,
		subscribers: make(map[int]func(Mode)),
	}
	if persister != nil {
		persister.ApplyAndPersist(initial)
	}
	return c
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Toggle flips the mode and returns the new value.
func (c *Controller) Toggle() Mode {
	c.mu.Lock()
	next := c.mode.Opposite()
	c.commitLocked(next)
	subs := c.snapshotLocked()
	c.mu.Unlock()

	notify(subs, next)
	return next
}

// Set switches to mode. Setting the current mode is a no-op.
func (c *Controller) Set(mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown theme mode %q", mode)
	}

	c.mu.Lock()
	if c.mode == mode {
		c.mu.Unlock()
		return nil
	}
	c.commitLocked(mode)
	subs := c.snapshotLocked()
	c.mu.Unlock()

	notify(subs, mode)
	return nil
}

// Subscribe registers fn to be called after every change. The returned function unregisters it.
func (c *Controller) Subscribe(fn func(Mode)) func() {
	if fn == nil {
		return func() {}
	}

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subscribers, id)
			c.mu.Unlock()
		})
	}
}

func (c *Controller) commitLocked(mode Mode) {
	c.mode = mode
	if c.persister != nil {
		c.persister.ApplyAndPersist(mode)
	}
}

func (c *Controller) snapshotLocked() []func(Mode) {
	ids := make([]int, 0, len(c.subscribers))
	for id := range c.subscribers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	subs := make([]func(Mode), 0, len(ids))
	for _, id := range ids {
		subs = append(subs, c.subscribers[id])
	}
	return subs
}

func notify(subs []func(Mode), mode Mode) {
	for _, fn := range subs {
		fn(mode)
	}
}
