package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainCmd_Help(t *testing.T) {
	cmd := explainCmd()
	cmd.SetArgs([]string{"--help"})

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()

	// Check help content
	assert.Contains(t, output, "Rank the per-feature weights")
	assert.Contains(t, output, "Examples:")
	assert.Contains(t, output, "creditlens explain")
	assert.Contains(t, output, "--contributions")
	assert.Contains(t, output, "--format")
}

func TestExplainCmd_RequiresCustomerID(t *testing.T) {
	cmd := explainCmd()
	cmd.SetArgs([]string{})

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestReadWeights(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "weights.json")
	payload := `{"income": 0.42, "expenses": -0.21, "BiasTerm": 3.0}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	weights, err := readWeights(path)
	require.NoError(t, err)

	assert.Len(t, weights, 3)
	assert.InDelta(t, 0.42, weights["income"], 0.0001)
	assert.InDelta(t, -0.21, weights["expenses"], 0.0001)
}

func TestReadWeights_MissingFile(t *testing.T) {
	_, err := readWeights(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read contributions file")
}

func TestReadWeights_MalformedJSON(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "weights.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"income": "high"}`), 0o600))

	_, err := readWeights(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse contributions file")
}
