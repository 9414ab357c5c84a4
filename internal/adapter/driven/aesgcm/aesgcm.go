// Package aesgcm implements the Cipher port with AES-256-GCM.
//
// The 32-byte cipher key is derived from the configured secret string with
// SHA-256, so any secret length is accepted. Ciphertexts are base64-encoded
// nonce || ciphertext || tag.
package aesgcm

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/jmswanson/walletvault/internal/domain/port/driven"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.Cipher = (*Service)(nil)
	_ driven.Cipher = Noop{}
)

// Service encrypts and decrypts strings with AES-256-GCM under a key fixed at
// construction.
type Service struct {
	gcm cipher.AEAD
}

// New creates a Service keyed by SHA-256(secret). secret must be non-empty.
func New(secret string) (*Service, error) {
	if secret == "" {
		return nil, errors.New("empty cipher secret")
	}

	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("aes.NewCipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cipher.NewGCM: %w", err)
	}

	return &Service{gcm: gcm}, nil
}

// Encrypt returns base64(nonce || ciphertext || tag) for plaintext.
func (s *Service) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, s.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("rand nonce: %w", err)
	}

	// Seal appends the ciphertext to nonce, producing: nonce || ciphertext || tag.
	ciphertext := s.gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt reverses Encrypt. It fails on malformed base64, truncated input,
// tampered ciphertext, and ciphertext sealed under a different key.
func (s *Service) Decrypt(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("base64 decode: %w", err)
	}

	nonceSize := s.gcm.NonceSize()
	if len(data) < nonceSize {
		return "", errors.New("ciphertext too short")
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plaintext, err := s.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("gcm.Open: %w", err)
	}

	return string(plaintext), nil
}

// Noop passes values through unencrypted. Dev/test only; the composition root
// refuses to select it in production.
type Noop struct{}

func (Noop) Encrypt(plaintext string) (string, error)  { return plaintext, nil }
func (Noop) Decrypt(ciphertext string) (string, error) { return ciphertext, nil }
