// Package taskcache caches each team's task list for a short TTL. Every
// successful mutation invalidates the team's entry, which is the refresh
// signal the presentation layer relies on: the next list call repopulates
// from the store.
package taskcache

import (
	"sync"
	"time"

	"github.com/teamboard/teamboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type entry struct {
	tasks []models.Task
	exp   time.Time
}

// Cache is a TTL'd in-memory per-team task-list cache. Safe for
// concurrent use.
type Cache struct {
	mu  sync.RWMutex
	m   map[primitive.ObjectID]entry
	ttl time.Duration
}

// New creates a Cache with the given TTL. A non-positive TTL disables
// caching entirely (Get always misses), which keeps test setups simple.
func New(ttl time.Duration) *Cache {
	return &Cache{m: make(map[primitive.ObjectID]entry), ttl: ttl}
}

// Get returns the cached task list for a team, or (nil, false) on a miss
// or expired entry.
func (c *Cache) Get(teamID primitive.ObjectID) ([]models.Task, bool) {
	if c == nil || c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.m[teamID]
	if !ok || time.Now().After(e.exp) {
		return nil, false
	}
	return e.tasks, true
}

// Set stores the task list for a team.
func (c *Cache) Set(teamID primitive.ObjectID, tasks []models.Task) {
	if c == nil || c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[teamID] = entry{tasks: tasks, exp: time.Now().Add(c.ttl)}
}

// Invalidate drops the team's entry. Called after every successful
// create, update, or delete.
func (c *Cache) Invalidate(teamID primitive.ObjectID) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, teamID)
}
