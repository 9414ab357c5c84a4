// Package errors provides the kinded error type returned by vault operations.
//
// Every underlying failure (cipher error, cell error, parse error) is caught at
// the operation boundary and re-signaled as one of the coarse kinds below with
// a generic message. The low-level cause stays attached for logging and
// errors.Is/As chains but is never part of the message shown to callers.
package errors

import (
	"errors"
	"fmt"
)

// Kind categorizes a vault operation failure.
type Kind string

const (
	// KindInvalidInput indicates a malformed call argument.
	KindInvalidInput Kind = "invalid_input"
	// KindStorageWrite indicates the serialize/encrypt/persist path failed.
	KindStorageWrite Kind = "storage_write_failed"
	// KindRetrieval indicates decryption or deserialization failed on read.
	KindRetrieval Kind = "retrieval_failed"
	// KindRemoval indicates the persistence cell failed to delete the slot.
	KindRemoval Kind = "removal_failed"
	// KindFieldRetrieval indicates a single-field read failed; wraps KindRetrieval.
	KindFieldRetrieval Kind = "field_retrieval_failed"
	// KindUpdate indicates the read-merge-write sequence failed.
	KindUpdate Kind = "update_failed"
)

// Error is a vault operation failure with a machine-matchable kind and a
// deliberately generic message.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

// Error implements the error interface. The underlying cause is not included.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.cause
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var verr *Error
	for errors.As(err, &verr) {
		if verr.Kind == kind {
			return true
		}
		err = verr.cause
		if err == nil {
			return false
		}
	}
	return false
}

// KindOf returns the kind of the outermost *Error in err's chain, or "" if
// err carries no kinded error.
func KindOf(err error) Kind {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return ""
}

// InvalidInput creates an invalid-argument error. It carries no cause; the
// problem is in the call itself.
func InvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

// StorageWrite creates a write-path error wrapping cause.
func StorageWrite(cause error) *Error {
	return &Error{Kind: KindStorageWrite, Message: "failed to store credentials", cause: cause}
}

// Retrieval creates a read-path error wrapping cause.
func Retrieval(cause error) *Error {
	return &Error{Kind: KindRetrieval, Message: "failed to retrieve credentials", cause: cause}
}

// Removal creates a delete-path error wrapping cause.
func Removal(cause error) *Error {
	return &Error{Kind: KindRemoval, Message: "failed to remove credentials", cause: cause}
}

// FieldRetrieval creates a field-read error naming the field and wrapping the
// inner retrieval failure.
func FieldRetrieval(field string, cause error) *Error {
	return &Error{
		Kind:    KindFieldRetrieval,
		Message: fmt.Sprintf("failed to retrieve credential field %q", field),
		cause:   cause,
	}
}

// Update creates a read-merge-write error wrapping cause.
func Update(cause error) *Error {
	return &Error{Kind: KindUpdate, Message: "failed to update credentials", cause: cause}
}
