package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/enumconform/internal/store"
)

// executeRoot runs the full command tree and returns stdout and stderr.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCheckCommandMissingArgs(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewCheckCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestCheckCommandMissingPath(t *testing.T) {
	_, _, err := executeRoot(t, "check", "/nonexistent/enums")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path not found")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCheckCommandJSONCommandError(t *testing.T) {
	out, _, err := executeRoot(t, "check", "--format", "json", "/nonexistent/enums")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "path not found: /nonexistent/enums", resp.Error.Message)
}

func TestCheckCommandMalformedEnvSeed(t *testing.T) {
	t.Setenv("ENUMCONFORM_SEED", "not-a-number")

	out, _, err := executeRoot(t, "check", "testdata/enums")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "[E008]")
	assert.Empty(t, out)
}

func TestCheckCommandPasses(t *testing.T) {
	out, _, err := executeRoot(t, "check", "testdata/enums", "--seed", "42")
	require.NoError(t, err)

	assert.Contains(t, out, "✓ Status (21 checks)")
	assert.Contains(t, out, "✓ Priority (18 checks)")
	assert.Contains(t, out, "✓ Stage (21 checks)")
	assert.Contains(t, out, "Check Summary: 3 passed, 0 failed, 3 total")
	assert.Contains(t, out, "Seed: 42 (replay with --seed 42)")
	assert.Contains(t, out, "✓ All enumerations conform")
}

func TestCheckCommandFails(t *testing.T) {
	out, _, err := executeRoot(t, "check", "testdata/broken", "--seed", "1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	assert.Contains(t, out, "✗ Dup")
	assert.Contains(t, out, "backing value 1 shared by FIRST and SECOND")
	assert.Contains(t, out, "Check Summary: 0 passed, 1 failed, 1 total")
}

func TestCheckCommandFilter(t *testing.T) {
	out, _, err := executeRoot(t, "check", "testdata/enums", "--filter", "Pri*", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Priority")
	assert.NotContains(t, out, "Status")
	assert.Contains(t, out, "1 total")
}

func TestCheckCommandNoMatches(t *testing.T) {
	out, _, err := executeRoot(t, "check", "testdata/enums", "--filter", "Nothing")
	require.NoError(t, err)
	assert.Contains(t, out, "No enumerations found.")
}

func TestCheckCommandSeedFromEnv(t *testing.T) {
	t.Setenv("ENUMCONFORM_SEED", "777")

	out, _, err := executeRoot(t, "check", "testdata/enums/good.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Seed: 777")
}

func TestCheckCommandSeedFlagBeatsEnv(t *testing.T) {
	t.Setenv("ENUMCONFORM_SEED", "777")

	out, _, err := executeRoot(t, "check", "testdata/enums/good.yaml", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Seed: 5")
}

func TestCheckCommandJSON(t *testing.T) {
	out, _, err := executeRoot(t, "check", "testdata/enums", "testdata/broken", "--format", "json", "--seed", "9")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string      `json:"status"`
		Seed   string      `json:"seed"`
		Data   CheckResult `json:"data"`
		Error  *CLIError   `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "9", resp.Seed)
	assert.Equal(t, 4, resp.Data.Total)
	assert.Equal(t, 3, resp.Data.Passed)
	assert.Equal(t, 1, resp.Data.Failed)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeCheckFailed, resp.Error.Code)

	dup := resp.Data.Enums[3]
	assert.Equal(t, "Dup", dup.Name)
	assert.False(t, dup.Pass)
	assert.NotEmpty(t, dup.Failures)
}

func TestCheckCommandVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := executeRoot(t, "check", "testdata/broken", "--seed", "1", "--verbose", "--format", "json")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), "stdout must stay valid JSON")
	assert.Contains(t, errOut, "Checking 1 enumeration(s) with seed 1")
	assert.Contains(t, errOut, "conformance check failed")
}

func TestCheckCommandRecordsHistory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")

	out, _, err := executeRoot(t, "check", "testdata/enums", "--seed", "42", "--db", db, "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Data CheckResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	for _, e := range resp.Data.Enums {
		assert.NotEmpty(t, e.RunID, e.Name)
	}

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()

	runs, err := st.ListRuns(t.Context(), "")
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "Status", runs[0].Enum)
	assert.Equal(t, uint64(42), runs[0].Seed)
	assert.Equal(t, filepath.Join("testdata", "enums", "good.yaml"), runs[0].Source)
	assert.Equal(t, resp.Data.Enums[0].RunID, runs[0].ID)
}
