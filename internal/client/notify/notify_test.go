package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestCenter() (*Center, *clock) {
	clk := &clock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	return NewCenter(WithClock(clk.now)), clk
}

func TestKeyedReplacesSameSlot(t *testing.T) {
	c, clk := newTestCenter()

	c.Loading("download-row", "Downloading employee data...")
	c.Info("", "unrelated")
	c.Success("download-row", "Download completed!")

	active := c.Active(clk.t)
	require.Len(t, active, 2)
	assert.Equal(t, KindSuccess, active[0].Kind)
	assert.Equal(t, "Download completed!", active[0].Content)
	assert.Equal(t, "unrelated", active[1].Content)
}

func TestUnkeyedStack(t *testing.T) {
	c, clk := newTestCenter()
	c.Error("", "a")
	c.Error("", "b")
	assert.Len(t, c.Active(clk.t), 2)
}

func TestExpiry(t *testing.T) {
	c, clk := newTestCenter()

	c.Loading("k", "working")
	c.Error("", "Failed to fetch employee data")

	clk.t = clk.t.Add(DefaultTTL - time.Millisecond)
	assert.Len(t, c.Active(clk.t), 2)

	clk.t = clk.t.Add(time.Millisecond)
	active := c.Active(clk.t)
	require.Len(t, active, 1)
	assert.Equal(t, KindLoading, active[0].Kind, "loading stays until replaced")
}

func TestSubscribe(t *testing.T) {
	c, _ := newTestCenter()

	var mu sync.Mutex
	var got []string
	cancel := c.Subscribe(func(n Notification) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, string(n.Kind)+":"+n.Content)
	})

	c.Loading("k", "one")
	c.Success("k", "two")
	cancel()
	c.Info("", "three")

	assert.Equal(t, []string{"loading:one", "success:two"}, got)
}

func TestShowAssignsIDs(t *testing.T) {
	c, clk := newTestCenter()
	a := c.Info("", "a")
	b := c.Info("", "b")
	assert.Less(t, a.ID, b.ID)
	assert.Equal(t, clk.t, a.Shown)
	assert.Equal(t, DefaultTTL, a.TTL)
}

func TestWithDefaultTTL(t *testing.T) {
	clk := &clock{t: time.Unix(0, 0)}
	c := NewCenter(WithClock(clk.now), WithDefaultTTL(time.Second))
	c.Success("", "ok")
	assert.Empty(t, c.Active(clk.t.Add(time.Second)))
}
