package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/internal/puzzle"
)

const manifest = `
logging:
  level: debug
  format: json
batch:
  jobs: 4
  runs:
    - name: day1
      puzzle: dial
      input: inputs/day1.txt
    - puzzle: circuit
      input: inputs/day8.txt
      params:
        connections: 10
        top: 3
`

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, LoggingConfig{Level: "debug", Format: "json"}, cfg.Logging)
	assert.Equal(t, 4, cfg.Batch.Jobs)
	require.Len(t, cfg.Batch.Runs, 2)

	assert.Equal(t, "day1", cfg.Batch.Runs[0].Label())
	assert.Equal(t, puzzle.DefaultParams(), cfg.Batch.Runs[0].Params)

	want := puzzle.DefaultParams()
	want.Connections = 10
	assert.Equal(t, want, cfg.Batch.Runs[1].Params)
	assert.Equal(t, "circuit", cfg.Batch.Runs[1].Label())
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [oops"), 0o600))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"level", "logging:\n  level: loud\n"},
		{"format", "logging:\n  format: xml\n"},
		{"jobs", "batch:\n  jobs: -2\n"},
		{"puzzle", "batch:\n  runs:\n    - puzzle: day99\n      input: x\n"},
		{"input", "batch:\n  runs:\n    - puzzle: dial\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.doc))
			require.NoError(t, err)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestValidate_UnknownPuzzleWrapped(t *testing.T) {
	cfg, err := Parse([]byte("batch:\n  runs:\n    - puzzle: day99\n      input: x\n"))
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.Validate(), puzzle.ErrUnknownPuzzle)
}
