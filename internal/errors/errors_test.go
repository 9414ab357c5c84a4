package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	verrors "github.com/jmswanson/walletvault/internal/errors"
)

func TestError_MessageOmitsCause(t *testing.T) {
	cause := stderrors.New("cipher: message authentication failed")
	err := verrors.Retrieval(cause)

	assert.Equal(t, "failed to retrieve credentials", err.Error())
	assert.NotContains(t, err.Error(), "authentication")
}

func TestError_UnwrapReachesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := verrors.StorageWrite(cause)

	require.ErrorIs(t, err, cause)
}

func TestIsKind_MatchesDirectKind(t *testing.T) {
	err := verrors.Removal(stderrors.New("boom"))

	assert.True(t, verrors.IsKind(err, verrors.KindRemoval))
	assert.False(t, verrors.IsKind(err, verrors.KindRetrieval))
}

func TestIsKind_MatchesWrappedKind(t *testing.T) {
	inner := verrors.Retrieval(stderrors.New("bad ciphertext"))
	outer := verrors.FieldRetrieval("token", inner)

	assert.True(t, verrors.IsKind(outer, verrors.KindFieldRetrieval))
	assert.True(t, verrors.IsKind(outer, verrors.KindRetrieval))
	assert.False(t, verrors.IsKind(outer, verrors.KindStorageWrite))
}

func TestKindOf_ReturnsOutermostKind(t *testing.T) {
	inner := verrors.Retrieval(stderrors.New("bad ciphertext"))
	outer := verrors.Update(inner)

	assert.Equal(t, verrors.KindUpdate, verrors.KindOf(outer))
	assert.Equal(t, verrors.Kind(""), verrors.KindOf(stderrors.New("plain")))
}

func TestFieldRetrieval_NamesField(t *testing.T) {
	err := verrors.FieldRetrieval("privateKey", verrors.Retrieval(nil))

	assert.Contains(t, err.Error(), `"privateKey"`)
}

func TestInvalidInput_HasNoCause(t *testing.T) {
	err := verrors.InvalidInput("credentials must be a non-nil object")

	assert.Nil(t, err.Unwrap())
	assert.Equal(t, verrors.KindInvalidInput, verrors.KindOf(err))
}
