package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janpfeifer/star/internal/board"
	"github.com/janpfeifer/star/internal/valuetable"
)

func TestRunCompletesRequestedPlayoutsAndDumpsTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.bin")

	cfg := Config{Board: board.Small, Workers: 4, MasterSeed: 1, TablePath: path, DumpThreshold: 0}
	result, err := Run(context.Background(), cfg, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, result.PlayoutsCompleted)
	assert.False(t, result.Interrupted)

	_, err = os.Stat(path)
	require.NoError(t, err)

	loaded := valuetable.New(2 * board.Small.NPieces)
	require.NoError(t, loaded.Load(path))
	assert.Greater(t, loaded.Len(), 0)
}

func TestRunStopsEarlyWhenContextIsCanceled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.bin")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	cfg := Config{Board: board.Small, Workers: 2, MasterSeed: 2, TablePath: path, DumpThreshold: 0}
	result, err := Run(ctx, cfg, 1_000_000)
	require.NoError(t, err)
	assert.True(t, result.Interrupted)
	assert.Less(t, result.PlayoutsCompleted, 1_000_000)

	_, statErr := os.Stat(path)
	require.NoError(t, statErr) // the table is still dumped on interruption
}

func TestRunWithMissingTableFileStartsFresh(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "does-not-exist.bin")

	cfg := Config{Board: board.Small, Workers: 1, MasterSeed: 3, TablePath: path, DumpThreshold: 0}
	result, err := Run(context.Background(), cfg, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, result.PlayoutsCompleted)
}
