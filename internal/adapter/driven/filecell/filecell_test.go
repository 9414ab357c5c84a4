package filecell_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmswanson/walletvault/internal/adapter/driven/filecell"
)

func newTestCell(t *testing.T) (*filecell.Cell, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vault", "cells.json")
	return filecell.New(path), path
}

func TestCell_GetOnMissingFileIsAbsent(t *testing.T) {
	cell, _ := newTestCell(t)

	_, ok, err := cell.Get(context.Background(), "web3_credentials")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCell_SetGetRemove(t *testing.T) {
	cell, _ := newTestCell(t)
	ctx := context.Background()

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

func TestCell_ValuesSurviveReopen(t *testing.T) {
	cell, path := newTestCell(t)
	ctx := context.Background()

	require.NoError(t, cell.Set(ctx, "web3_credentials", "blob-1"))

	reopened := filecell.New(path)
	value, ok, err := reopened.Get(ctx, "web3_credentials")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "blob-1", value)
}

func TestCell_RemoveAbsentKeyLeavesNoFile(t *testing.T) {
	cell, path := newTestCell(t)

	require.NoError(t, cell.Remove(context.Background(), "never-set"))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no-op remove must not create the store file")
}

func TestCell_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	cell, path := newTestCell(t)

	require.NoError(t, cell.Set(context.Background(), "web3_credentials", "blob-1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestCell_CorruptFileSurfacesError(t *testing.T) {
	cell, path := newTestCell(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

	_, _, err := cell.Get(context.Background(), "web3_credentials")
	assert.Error(t, err)
}
