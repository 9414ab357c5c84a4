package application

import (
	"context"
	"log/slog"

	"github.com/jmswanson/walletvault/internal/domain/model"
	"github.com/jmswanson/walletvault/internal/domain/port/driven"
	verrors "github.com/jmswanson/walletvault/internal/errors"
)

// StorageSlot is the one fixed key under which the encrypted credential record
// lives in the persistence cell. This is a single-slot store, not a
// collection: at most one record exists at any time.
const StorageSlot = "web3_credentials"

// CredentialService encrypts one JSON-serializable credential record and
// persists it in a single named slot of the injected persistence cell. Every
// operation is a synchronous request/response with no background work.
//
// Update performs an unguarded read-merge-write: two callers updating
// concurrently can lose one writer's fields (last writer wins). That is the
// documented contract of the single-slot design, not a bug.
type CredentialService struct {
	cell   driven.Cell
	cipher driven.Cipher
	logger *slog.Logger

	// warnDefaultKey is set by the composition root when the configured
	// secret still equals the built-in fallback in a production environment.
	warnDefaultKey bool
}

// NewCredentialService creates a CredentialService on the given cell and
// cipher. logger may be nil, in which case slog.Default() is used.
// warnDefaultKey makes every write emit a diagnostic warning without blocking
// the write.
func NewCredentialService(cell driven.Cell, cipher driven.Cipher, logger *slog.Logger, warnDefaultKey bool) *CredentialService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CredentialService{
		cell:           cell,
		cipher:         cipher,
		logger:         logger,
		warnDefaultKey: warnDefaultKey,
	}
}

// Set serializes record, encrypts it, and writes the ciphertext to the
// storage slot, fully overwriting prior contents. A nil record is rejected
// with an invalid-input error. Serialization, encryption, and persistence
// failures are logged with their cause and surface as a generic
// storage-write error.
func (s *CredentialService) Set(ctx context.Context, record model.CredentialRecord) error {
	if record == nil {
		return verrors.InvalidInput("credentials must be a non-nil object")
	}

	if s.warnDefaultKey {
		s.logger.Warn("storing credentials under the default secret key in production; configure a dedicated secret")
	}

	plaintext, err := record.Marshal()
	if err != nil {
		s.logger.Error("failed to serialize credentials", "error", err)
		return verrors.StorageWrite(err)
	}

	blob, err := s.cipher.Encrypt(plaintext)
	if err != nil {
		s.logger.Error("failed to encrypt credentials", "error", err)
		return verrors.StorageWrite(err)
	}

	if err := s.cell.Set(ctx, StorageSlot, blob); err != nil {
		s.logger.Error("failed to persist credentials", "slot", StorageSlot, "error", err)
		return verrors.StorageWrite(err)
	}
	return nil
}

// Get decrypts and deserializes the stored record. An empty slot returns
// (nil, nil): absence is an explicit result, not an error. A wrong key and
// tampered or corrupted ciphertext are indistinguishable; both surface as the
// same retrieval error.
func (s *CredentialService) Get(ctx context.Context) (model.CredentialRecord, error) {
	blob, ok, err := s.cell.Get(ctx, StorageSlot)
	if err != nil {
		s.logger.Error("failed to read credentials", "slot", StorageSlot, "error", err)
		return nil, verrors.Retrieval(err)
	}
	if !ok || blob == "" {
		return nil, nil
	}

	plaintext, err := s.cipher.Decrypt(blob)
	if err != nil {
		s.logger.Error("failed to decrypt credentials", "error", err)
		return nil, verrors.Retrieval(err)
	}

	record, err := model.UnmarshalRecord(plaintext)
	if err != nil {
		s.logger.Error("failed to deserialize credentials", "error", err)
		return nil, verrors.Retrieval(err)
	}
	return record, nil
}

// Exists reports whether the storage slot currently holds a non-empty value.
// It never fails outward: an inaccessible cell reads as false, so callers
// cannot distinguish "no credentials" from "storage broken" through this
// call. Best-effort by contract.
func (s *CredentialService) Exists(ctx context.Context) bool {
	value, ok, err := s.cell.Get(ctx, StorageSlot)
	if err != nil {
		s.logger.Debug("existence check failed, reporting absent", "slot", StorageSlot, "error", err)
		return false
	}
	return ok && value != ""
}

// Remove deletes the storage slot. Removing an already-absent slot still
// succeeds; only a cell failure surfaces, as a generic removal error.
func (s *CredentialService) Remove(ctx context.Context) error {
	if err := s.cell.Remove(ctx, StorageSlot); err != nil {
		s.logger.Error("failed to remove credentials", "slot", StorageSlot, "error", err)
		return verrors.Removal(err)
	}
	return nil
}

// GetField returns the named field of the stored record. The boolean result
// is false when no record is stored, when the record lacks the field, and
// when the field holds a falsy value (false, 0, ""), which this contract
// cannot distinguish from absence. Retrieval failures are wrapped with the
// field name.
func (s *CredentialService) GetField(ctx context.Context, name string) (any, bool, error) {
	record, err := s.Get(ctx)
	if err != nil {
		return nil, false, verrors.FieldRetrieval(name, err)
	}
	if record == nil {
		return nil, false, nil
	}

	value, ok := record.Field(name)
	return value, ok, nil
}

// Update shallow-merges partial over the stored record and writes the result
// back: fields named in partial overwrite same-named fields, fields not
// mentioned are preserved, and an absent record merges as empty. The
// read-merge-write is not atomic across callers.
func (s *CredentialService) Update(ctx context.Context, partial model.CredentialRecord) error {
	if partial == nil {
		return verrors.InvalidInput("partial credentials must be a non-nil object")
	}

	current, err := s.Get(ctx)
	if err != nil {
		return verrors.Update(err)
	}
	if current == nil {
		current = model.CredentialRecord{}
	}

	if err := s.Set(ctx, current.Merge(partial)); err != nil {
		return verrors.Update(err)
	}
	return nil
}
