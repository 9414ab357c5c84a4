// Package filecell implements the Cell port on a single JSON file.
//
// The file holds a flat key→value object and is rewritten atomically on every
// mutation, so a crash mid-write never leaves a torn file. Values are opaque
// ciphertext, but the file is still created with 0600 and its parent directory
// with 0700.
package filecell

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/jmswanson/walletvault/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Cell = (*Cell)(nil)

// Cell is a file-backed Cell implementation. Every operation reads or rewrites
// the whole file; the store holds one slot, so that is not a scaling concern.
type Cell struct {
	path string
}

// DefaultPath returns the default store file location, following the XDG Base
// Directory spec.
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "walletvault", "cells.json")
}

// New creates a file-backed cell at path. The file is created lazily on the
// first Set.
func New(path string) *Cell {
	return &Cell{path: path}
}

// Get returns the value stored under key.
func (c *Cell) Get(_ context.Context, key string) (string, bool, error) {
	values, err := c.load()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

// Set stores value under key, rewriting the file atomically.
func (c *Cell) Set(_ context.Context, key, value string) error {
	values, err := c.load()
	if err != nil {
		return err
	}
	values[key] = value
	return c.save(values)
}

// Remove deletes the value under key. Removing an absent key is a no-op, and
// a missing store file counts as absent.
func (c *Cell) Remove(_ context.Context, key string) error {
	values, err := c.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return c.save(values)
}

func (c *Cell) load() (map[string]string, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}

	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", c.path, err)
	}
	return values, nil
}

func (c *Cell) save(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	if err := atomic.WriteFile(c.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Chmod(c.path, 0600); err != nil {
		return fmt.Errorf("chmod store file: %w", err)
	}
	return nil
}
