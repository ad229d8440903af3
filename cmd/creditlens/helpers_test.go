package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mero2-web/credit-system-ai/internal/source"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setSourceConfig pins the source viper keys for one test and restores the
// empty defaults afterwards.
func setSourceConfig(t *testing.T, snapshot, database string) {
	t.Helper()

	viper.Set("source.snapshot", snapshot)
	viper.Set("source.database", database)
	t.Cleanup(func() {
		viper.Set("source.snapshot", "")
		viper.Set("source.database", "")
	})
}

func TestOpenSource_SnapshotWinsOverDatabase(t *testing.T) {
	dir := t.TempDir()

	snapPath := filepath.Join(dir, "export.json")
	require.NoError(t, os.WriteFile(snapPath, []byte(`{"applications": []}`), 0o600))

	setSourceConfig(t, snapPath, filepath.Join(dir, "missing.db"))

	src, err := openSource()
	require.NoError(t, err)
	defer closeSource(src)

	_, ok := src.(*source.SnapshotSource)
	assert.True(t, ok, "snapshot path should win over database path")
}

func TestOpenSource_MissingDatabase(t *testing.T) {
	setSourceConfig(t, "", filepath.Join(t.TempDir(), "missing.db"))

	_, err := openSource()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database")
}

func TestOpenSource_MalformedSnapshot(t *testing.T) {
	dir := t.TempDir()

	snapPath := filepath.Join(dir, "export.json")
	require.NoError(t, os.WriteFile(snapPath, []byte("not json"), 0o600))

	setSourceConfig(t, snapPath, "")

	_, err := openSource()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open snapshot")
}

func TestFetchProgress_SkipsEmptySources(t *testing.T) {
	p := &fetchProgress{}

	// A zero total never creates a bar, and finishing without one is a no-op.
	p.observe(0, 0)
	assert.Nil(t, p.bar)
	p.finish()
}
