// Package notify keeps the transient status messages shown by the
// front-ends: "loading", "success", "error" and "info" toasts that expire on
// their own. A keyed message replaces the visible message with the same key,
// so one long-running action owns a single slot.
package notify

import (
	"sync"
	"time"
)

type Kind string

const (
	KindLoading Kind = "loading"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// DefaultTTL is how long non-loading messages stay visible.
const DefaultTTL = 3 * time.Second

type Notification struct {
	ID      uint64
	Key     string
	Kind    Kind
	Content string
	Shown   time.Time
	// TTL of zero means the message stays until replaced or dismissed.
	TTL time.Duration
}

func (n Notification) Expired(now time.Time) bool {
	return n.TTL > 0 && !now.Before(n.Shown.Add(n.TTL))
}

type Center struct {
	mu      sync.Mutex
	now     func() time.Time
	ttl     time.Duration
	items   []Notification
	nextID  uint64
	subs    map[uint64]func(Notification)
	nextSub uint64
}

type Option func(*Center)

// WithClock replaces time.Now; used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *Center) { c.now = now }
}

func WithDefaultTTL(d time.Duration) Option {
	return func(c *Center) { c.ttl = d }
}

func NewCenter(opts ...Option) *Center {
	c := &Center{now: time.Now, ttl: DefaultTTL, subs: map[uint64]func(Notification){}}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Show displays n and returns it with ID and Shown filled in.
func (c *Center) Show(n Notification) Notification {
	c.mu.Lock()
	c.nextID++
	n.ID = c.nextID
	n.Shown = c.now()
	replaced := false
	if n.Key != "" {
		for i := range c.items {
			if c.items[i].Key == n.Key {
				c.items[i] = n
				replaced = true
				break
			}
		}
	}
	if !replaced {
		c.items = append(c.items, n)
	}
	subs := make([]func(Notification), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}
	return n
}

func (c *Center) Loading(key, content string) Notification {
	return c.Show(Notification{Key: key, Kind: KindLoading, Content: content})
}

func (c *Center) Success(key, content string) Notification {
	return c.Show(Notification{Key: key, Kind: KindSuccess, Content: content, TTL: c.ttl})
}

func (c *Center) Error(key, content string) Notification {
	return c.Show(Notification{Key: key, Kind: KindError, Content: content, TTL: c.ttl})
}

func (c *Center) Info(key, content string) Notification {
	return c.Show(Notification{Key: key, Kind: KindInfo, Content: content, TTL: c.ttl})
}

// Active drops expired messages and returns the rest in display order.
func (c *Center) Active(now time.Time) []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.items[:0]
	for _, n := range c.items {
		if !n.Expired(now) {
			out = append(out, n)
		}
	}
	c.items = out
	res := make([]Notification, len(out))
	copy(res, out)
	return res
}

// Subscribe registers fn for every future message. Call the returned
// function to unsubscribe. fn runs on the caller's goroutine of Show.
func (c *Center) Subscribe(fn func(Notification)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextSub++
	id := c.nextSub
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}
