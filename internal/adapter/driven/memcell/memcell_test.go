package memcell_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmswanson/walletvault/internal/adapter/driven/memcell"
)

func TestCell_SetGetRemove(t *testing.T) {
	cell := memcell.New()
	ctx := context.Background()

	_, ok, err := cell.Get(ctx, "web3_credentials")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cell.Set(ctx, "web3_credentials", "blob-1"))

	value, ok, err := cell.Get(ctx, "web3_credentials")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "blob-1", value)

	require.NoError(t, cell.Set(ctx, "web3_credentials", "blob-2"))
	value, _, err = cell.Get(ctx, "web3_credentials")
	require.NoError(t, err)
	assert.Equal(t, "blob-2", value)

	require.NoError(t, cell.Remove(ctx, "web3_credentials"))
	_, ok, err = cell.Get(ctx, "web3_credentials")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCell_RemoveAbsentKeyIsNoop(t *testing.T) {
	cell := memcell.New()

	assert.NoError(t, cell.Remove(context.Background(), "never-set"))
}
