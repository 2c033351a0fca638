package game

import (
	"sort"
	"time"
)

// cleanupScheduler holds one-shot cleanup tasks keyed by balloon ID.
type cleanupScheduler struct {
	due   map[string]time.Time
	order map[string]uint64
	seq   uint64
}

func newCleanupScheduler() *cleanupScheduler {
	return &cleanupScheduler{
		due:   make(map[string]time.Time),
		order: make(map[string]uint64),
	}
}

// Schedule registers a task for id. A second schedule for the same id is ignored.
func (c *cleanupScheduler) Schedule(id string, at time.Time) {
	if _, ok := c.due[id]; ok {
		return
	}
	c.seq++
	c.due[id] = at
	c.order[id] = c.seq
}

func (c *cleanupScheduler) Cancel(id string) {
	delete(c.due, id)
	delete(c.order, id)
}

func (c *cleanupScheduler) CancelAll() {
	c.due = make(map[string]time.Time)
	c.order = make(map[string]uint64)
}

func (c *cleanupScheduler) Len() int {
	return len(c.due)
}

// Due removes and returns the ids whose time has come, earliest first.
func (c *cleanupScheduler) Due(now time.Time) []string {
	var ids []string
	for id, at := range c.due {
		if !now.Before(at) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := c.due[ids[i]], c.due[ids[j]]
		if !a.Equal(b) {
			return a.Before(b)
		}
		return c.order[ids[i]] < c.order[ids[j]]
	})
	for _, id := range ids {
		c.Cancel(id)
	}
	return ids
}
