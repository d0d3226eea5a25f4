package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWatchRejectsDirectory(t *testing.T) {
	var buf bytes.Buffer
	err := runWatch(context.Background(), t.TempDir(), testOpts(), &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got directory")
}

func TestRunWatchMissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := runWatch(context.Background(), "/nonexistent/README.md", testOpts(), &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to access")
}

func TestRunWatchStopsOnContextCancel(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "README.md", cleanFixture)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	require.NoError(t, runWatch(ctx, path, testOpts(), &buf))
	// The initial check still runs before the watcher loop notices the
	// cancelled context.
	assert.Contains(t, buf.String(), "is clean")
	assert.Contains(t, buf.String(), "Stopped")
}
