package keyringcell_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/jmswanson/walletvault/internal/adapter/driven/keyringcell"
)

func TestCell_SetGetRemove(t *testing.T) {
	keyring.MockInit()
	cell := keyringcell.New("walletvault-test")
	ctx := context.Background()

	_, ok, err := cell.Get(ctx, "web3_credentials")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cell.Set(ctx, "web3_credentials", "blob-1"))

	value, ok, err := cell.Get(ctx, "web3_credentials")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "blob-1", value)

	require.NoError(t, cell.Remove(ctx, "web3_credentials"))
	_, ok, err = cell.Get(ctx, "web3_credentials")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCell_RemoveAbsentKeyIsNoop(t *testing.T) {
	keyring.MockInit()
	cell := keyringcell.New("walletvault-test")

	assert.NoError(t, cell.Remove(context.Background(), "never-set"))
}

func TestNew_EmptyServiceFallsBackToDefault(t *testing.T) {
	keyring.MockInit()
	cell := keyringcell.New("")

	require.NoError(t, cell.Set(context.Background(), "web3_credentials", "blob-1"))

	value, err := keyring.Get(keyringcell.DefaultService, "web3_credentials")
	require.NoError(t, err)
	assert.Equal(t, "blob-1", value)
}
