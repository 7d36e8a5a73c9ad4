package puzzle

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	dialSample  = "L68\nL30\nR48\nL5\nR60\nL55\nL1\nL99\nR14\nL82\n"
	freshSample = "3-5\n10-14\n16-20\n12-18\n\n1\n5\n8\n11\n17\n32\n"
)

// writeInput stores body in a temp file and returns its path.
func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

//--------------------------------------------------------------------------------//
// Registry
//--------------------------------------------------------------------------------//

func TestNames(t *testing.T) {
	want := []string{
		"beam", "circuit", "dial", "forklift", "homework",
		"ingredients", "joltage", "products", "tiles",
	}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	e, err := Lookup("dial")
	require.NoError(t, err)
	assert.Equal(t, "dial", e.Name)
	assert.NotEmpty(t, e.Summary)

	_, err = Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownPuzzle)
}

func TestRegister_Duplicate(t *testing.T) {
	err := Register(Entry{Name: "dial", Solve: func(io.Reader, Params) (int, error) { return 0, nil }})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestSolve(t *testing.T) {
	ctx := context.Background()
	path := writeInput(t, dialSample)

	got, err := Solve(ctx, "dial", path, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	p := DefaultParams()
	p.AnyClick = true
	got, err = Solve(ctx, "dial", path, p)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestSolve_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := Solve(ctx, "dial", filepath.Join(t.TempDir(), "missing"), DefaultParams())
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = Solve(ctx, "nope", "whatever", DefaultParams())
	assert.ErrorIs(t, err, ErrUnknownPuzzle)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = Solve(cancelled, "dial", writeInput(t, dialSample), DefaultParams())
	assert.ErrorIs(t, err, context.Canceled)
}

//--------------------------------------------------------------------------------//
// Params
//--------------------------------------------------------------------------------//

func TestParams_UnmarshalDefaults(t *testing.T) {
	var r Run
	require.NoError(t, yaml.Unmarshal([]byte("puzzle: dial\ninput: in.txt\n"), &r))
	assert.Equal(t, DefaultParams(), r.Params)

	require.NoError(t, yaml.Unmarshal([]byte("puzzle: circuit\nparams:\n  connections: 10\n  descending: true\n"), &r))
	want := DefaultParams()
	want.Connections = 10
	want.Descending = true
	assert.Equal(t, want, r.Params)
	assert.Equal(t, "circuit", r.Label())
}

//--------------------------------------------------------------------------------//
// Batch
//--------------------------------------------------------------------------------//

func TestRunBatch(t *testing.T) {
	dialPath := writeInput(t, dialSample)
	freshPath := writeInput(t, freshSample)
	total := DefaultParams()
	total.Total = true

	runs := []Run{
		{Name: "dial-1", Puzzle: "dial", Input: dialPath, Params: DefaultParams()},
		{Puzzle: "ingredients", Input: freshPath, Params: DefaultParams()},
		{Name: "fresh-2", Puzzle: "ingredients", Input: freshPath, Params: total},
		{Name: "broken", Puzzle: "nope", Input: dialPath},
		{Name: "missing", Puzzle: "dial", Input: filepath.Join(t.TempDir(), "missing")},
	}

	core, logs := observer.New(zapcore.DebugLevel)
	out, err := RunBatch(context.Background(), zap.New(core), runs, 2)
	require.NoError(t, err)
	require.Len(t, out, len(runs))

	assert.Equal(t, "dial-1", out[0].Name)
	assert.Equal(t, 3, out[0].Answer)
	assert.Equal(t, "ingredients", out[1].Name)
	assert.Equal(t, 3, out[1].Answer)
	assert.Equal(t, 14, out[2].Answer)
	assert.ErrorIs(t, out[3].Err, ErrUnknownPuzzle)
	assert.ErrorIs(t, out[4].Err, fs.ErrNotExist)
	for _, o := range out[:3] {
		assert.NoError(t, o.Err, o.Name)
	}

	assert.Equal(t, 2, logs.FilterMessage("run failed").Len())
	assert.Equal(t, 3, logs.FilterMessage("run solved").Len())
}

func TestRunBatch_Jobs(t *testing.T) {
	_, err := RunBatch(context.Background(), nil, nil, -1)
	assert.ErrorIs(t, err, ErrBadJobs)

	out, err := RunBatch(context.Background(), nil, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runs := []Run{{Puzzle: "dial", Input: writeInput(t, dialSample), Params: DefaultParams()}}
	out, err := RunBatch(ctx, zap.NewNop(), runs, 1)
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, out, 1)
	assert.ErrorIs(t, out[0].Err, context.Canceled)
}

func TestEverySolverRuns(t *testing.T) {
	inputs := map[string]string{
		"beam":        ".S.\n...\n.^.\n...\n",
		"circuit":     "0,0,0\n1,0,0\n5,0,0\n",
		"dial":        dialSample,
		"forklift":    "@@\n@@\n",
		"homework":    "1 2\n3 4\n+ *\n",
		"ingredients": freshSample,
		"joltage":     "987654321111111\n",
		"products":    "11-22\n",
		"tiles":       "0,0\n4,0\n4,2\n0,2\n",
	}
	for _, name := range Names() {
		body, ok := inputs[name]
		require.True(t, ok, "no input for %s", name)
		t.Run(name, func(t *testing.T) {
			_, err := Solve(context.Background(), name, writeInput(t, body), DefaultParams())
			assert.NoError(t, err, strings.TrimSpace(body))
		})
	}
}
