package discord

import (
	"sync"
	"time"
)

// cooldown allows one use per user and command within each window.
type cooldown struct {
	mu     sync.Mutex
	window time.Duration
	last   map[string]time.Time
	now    func() time.Time
}

func newCooldown(window time.Duration) *cooldown {
	return &cooldown{
		window: window,
		last:   make(map[string]time.Time),
		now:    time.Now,
	}
}

// Allow records a use of command by userID. When the user is still cooling
// down it returns false and the time left; the rejected call is not recorded.
func (c *cooldown) Allow(userID, command string) (bool, time.Duration) {
	if c.window <= 0 {
		return true, 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	key := userID + "/" + command
	if last, ok := c.last[key]; ok {
		if wait := c.window - now.Sub(last); wait > 0 {
			return false, wait
		}
	}
	c.last[key] = now
	c.prune(now)
	return true, 0
}

// prune drops entries whose window has passed so the map stays bounded by
// the number of recently active users.
func (c *cooldown) prune(now time.Time) {
	for key, last := range c.last {
		if now.Sub(last) >= c.window {
			delete(c.last, key)
		}
	}
}
