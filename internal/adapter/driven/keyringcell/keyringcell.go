// Package keyringcell implements the Cell port on the OS-native credential
// store (macOS Keychain, Windows Credential Manager, Secret Service on Linux).
//
// The cell key maps to the keyring account name under a fixed service name.
// The OS already encrypts at rest, but the vault stores ciphertext here
// anyway; the keyring is just another persistence cell.
package keyringcell

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/jmswanson/walletvault/internal/domain/port/driven"
)

// DefaultService is the keyring service name used when none is configured.
const DefaultService = "walletvault"

// Compile-time interface satisfaction check.
var _ driven.Cell = (*Cell)(nil)

// Cell is a keyring-backed Cell implementation.
type Cell struct {
	service string
}

// New creates a keyring cell under the given service name. An empty service
// falls back to DefaultService.
func New(service string) *Cell {
	if service == "" {
		service = DefaultService
	}
	return &Cell{service: service}
}

// Get returns the value stored under key.
func (c *Cell) Get(_ context.Context, key string) (string, bool, error) {
	value, err := keyring.Get(c.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("keyring get %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key.
func (c *Cell) Set(_ context.Context, key, value string) error {
	if err := keyring.Set(c.service, key, value); err != nil {
		return fmt.Errorf("keyring set %q: %w", key, err)
	}
	return nil
}

// Remove deletes the value under key. A missing entry is not an error.
func (c *Cell) Remove(_ context.Context, key string) error {
	err := keyring.Delete(c.service, key)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring delete %q: %w", key, err)
	}
	return nil
}
