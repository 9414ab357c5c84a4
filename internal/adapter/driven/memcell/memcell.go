// Package memcell implements the Cell port with an in-process map. Nothing is
// persisted across process restarts; intended for tests and ephemeral use.
package memcell

import (
	"context"
	"sync"

	"github.com/jmswanson/walletvault/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Cell = (*Cell)(nil)

// Cell is an in-memory Cell implementation. Safe for concurrent use.
type Cell struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates an empty in-memory cell.
func New() *Cell {
	return &Cell{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (c *Cell) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.values[key]
	return value, ok, nil
}

// Set stores value under key.
func (c *Cell) Set(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

// Remove deletes the value under key. Removing an absent key is a no-op.
func (c *Cell) Remove(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}
