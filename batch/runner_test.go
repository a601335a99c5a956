// Package batch_test exercises the batch driver end to end against a
// temporary directory tree: depot placement, rebalancing, missing-file and
// unparsable-file tolerance, and output-directory recreation.
package batch_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eashwar-S/rpp-scenarios/batch"
)

const sampleInstance = `NAME: toy.1
NUMBER OF VERTICES: 4
VEHICLE CAPACITY: 10
NUMBER OF REQUIRED_EDGES: 2
NUMBER OF NON_REQUIRED_EDGES: 2
NUMBER OF VEHICLES: 1
LIST_REQUIRED_EDGES:
(1,2) edge weight 3.0
(3,4) edge weight 4.0
LIST_NON_REQUIRED_EDGES:
(1,3) edge weight 2.0
(2,4) edge weight 2.0
FAILURE_SCENARIO:
(1,2) disabled
DEPOT: 4
`

// writeScenario places content at the canonical path for (family, n).
func writeScenario(t *testing.T, base, family string, n int, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(batch.FamilyDir(base, family), 0o755))
	require.NoError(t, os.WriteFile(batch.ScenarioPath(base, family, n), []byte(content), 0o644))
}

func testConfig(t *testing.T, count int) batch.Config {
	t.Helper()
	dir := t.TempDir()

	return batch.Config{
		Instances:  map[string]int{"toy": count},
		InputBase:  filepath.Join(dir, "in"),
		OutputBase: filepath.Join(dir, "out"),
		Factor:     2,
	}
}

func TestScenarioPath(t *testing.T) {
	got := batch.ScenarioPath("base", "gdb", 7)
	want := filepath.Join("base", "gdb_failure_scenarios", "gdb.7.txt")
	assert.Equal(t, want, got)
}

func TestConfigValidate(t *testing.T) {
	cfg := batch.DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Factor = 0
	assert.ErrorIs(t, cfg.Validate(), batch.ErrBadFactor)

	cfg = batch.DefaultConfig()
	cfg.Instances = nil
	assert.ErrorIs(t, cfg.Validate(), batch.ErrNoInstances)
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instances.yaml")
	require.NoError(t, os.WriteFile(path, []byte("factor: 3\ninput_base: Inputs\n"), 0o644))

	cfg, err := batch.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.Factor)
	assert.Equal(t, "Inputs", cfg.InputBase)
	// Untouched fields keep their defaults.
	assert.Equal(t, 37, cfg.Instances["gdb"])
	assert.Equal(t, "Updated_Failure_Scenarios", cfg.OutputBase)
}

func TestPlaceDepots_EndToEnd(t *testing.T) {
	cfg := testConfig(t, 1)
	writeScenario(t, cfg.InputBase, "toy", 1, sampleInstance)

	runner, err := batch.NewRunner(cfg)
	require.NoError(t, err)
	require.NoError(t, runner.PlaceDepots())

	data, err := os.ReadFile(batch.ScenarioPath(cfg.OutputBase, "toy", 1))
	require.NoError(t, err)
	out := string(data)

	// Radius 10/2 = 5 covers everything from vertex 1, the greedy pick.
	assert.Contains(t, out, "DEPOT: 1\n")
	assert.NotContains(t, out, "DEPOT: 4")
	// One depot forces two vehicles in the placement path too.
	assert.Contains(t, out, "NUMBER OF VEHICLES: 2")
	// Edge lines pass through untouched.
	assert.Contains(t, out, "(3,4) edge weight 4.0")
	assert.Contains(t, out, "(1,2) disabled")
}

func TestRebalanceAll_EndToEnd(t *testing.T) {
	cfg := testConfig(t, 1)
	writeScenario(t, cfg.InputBase, "toy", 1, sampleInstance)

	runner, err := batch.NewRunner(cfg)
	require.NoError(t, err)
	require.NoError(t, runner.RebalanceAll())

	data, err := os.ReadFile(batch.ScenarioPath(cfg.OutputBase, "toy", 1))
	require.NoError(t, err)
	out := string(data)

	// Already 2/2 with target ceil(4/2)=2: counts rewritten, blocks intact.
	assert.Contains(t, out, "NUMBER OF REQUIRED_EDGES: 2")
	assert.Contains(t, out, "NUMBER OF NON_REQUIRED_EDGES: 2")
	// Single depot in the footer forces two vehicles.
	assert.Contains(t, out, "NUMBER OF VEHICLES: 2")
	assert.Contains(t, out, "DEPOT: 4")
}

func TestRun_MissingFileSkipped(t *testing.T) {
	cfg := testConfig(t, 3)
	// Only scenario 2 exists; 1 and 3 are missing and must be skipped.
	writeScenario(t, cfg.InputBase, "toy", 2, sampleInstance)

	runner, err := batch.NewRunner(cfg)
	require.NoError(t, err)
	require.NoError(t, runner.PlaceDepots())

	_, err = os.Stat(batch.ScenarioPath(cfg.OutputBase, "toy", 2))
	assert.NoError(t, err)
	_, err = os.Stat(batch.ScenarioPath(cfg.OutputBase, "toy", 1))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_UnparsableFileSkippedBatchContinues(t *testing.T) {
	cfg := testConfig(t, 2)
	// Scenario 1 lacks the mandatory capacity header; scenario 2 is fine.
	writeScenario(t, cfg.InputBase, "toy", 1, "NUMBER OF VERTICES: 2\nLIST_REQUIRED_EDGES:\n(1,2) edge weight 1.0\n")
	writeScenario(t, cfg.InputBase, "toy", 2, sampleInstance)

	runner, err := batch.NewRunner(cfg)
	require.NoError(t, err)
	require.NoError(t, runner.PlaceDepots())

	_, err = os.Stat(batch.ScenarioPath(cfg.OutputBase, "toy", 1))
	assert.True(t, os.IsNotExist(err), "unparsable file must produce no output")
	_, err = os.Stat(batch.ScenarioPath(cfg.OutputBase, "toy", 2))
	assert.NoError(t, err, "batch must continue past a bad file")
}

func TestRun_RecreatesOutputDir(t *testing.T) {
	cfg := testConfig(t, 1)
	writeScenario(t, cfg.InputBase, "toy", 1, sampleInstance)

	// Plant a stale file from a "previous run".
	stale := filepath.Join(cfg.OutputBase, "leftover.txt")
	require.NoError(t, os.MkdirAll(cfg.OutputBase, 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	runner, err := batch.NewRunner(cfg)
	require.NoError(t, err)
	require.NoError(t, runner.PlaceDepots())

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale outputs must not survive a run")
}

func TestNewRunner_RejectsBadConfig(t *testing.T) {
	_, err := batch.NewRunner(batch.Config{Factor: 2})
	assert.ErrorIs(t, err, batch.ErrNoInstances)
}

func TestSplitJoinSymmetry(t *testing.T) {
	// PlaceDepots round-trips raw lines; line endings must be stable.
	cfg := testConfig(t, 1)
	writeScenario(t, cfg.InputBase, "toy", 1, sampleInstance)

	runner, err := batch.NewRunner(cfg)
	require.NoError(t, err)
	require.NoError(t, runner.PlaceDepots())

	data, err := os.ReadFile(batch.ScenarioPath(cfg.OutputBase, "toy", 1))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"), "output ends with exactly one newline")
	assert.False(t, strings.HasSuffix(string(data), "\n\n"))
}
