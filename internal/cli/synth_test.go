package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthCommandText(t *testing.T) {
	out, _, err := executeRoot(t, "synth", "testdata/enums/good.yaml", "--seed", "42")
	require.NoError(t, err)

	assert.Contains(t, out, "Status (string)")
	assert.Regexp(t, `ACTIVE\s+active\s+-> invalid_active_\d+`, out)
	assert.Contains(t, out, "Priority (int)")
	assert.Regexp(t, `HIGH\s+3\s+-> 4`, out)
	assert.Contains(t, out, "Seed: 42")
}

func TestSynthCommandJSON(t *testing.T) {
	out, _, err := executeRoot(t, "synth", "testdata/enums/stage.cue", "--seed", "42", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   SynthResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "42", resp.Data.Seed)
	require.Len(t, resp.Data.Enums, 1)

	stage := resp.Data.Enums[0]
	assert.Equal(t, "Stage", stage.Name)
	assert.Equal(t, "int", stage.Kind)
	assert.Equal(t, []InvalidValue{
		{Case: "DRAFT", Valid: "10", Invalid: "31"},
		{Case: "IN_REVIEW", Valid: "20", Invalid: "31"},
		{Case: "PUBLISHED", Valid: "30", Invalid: "31"},
	}, stage.Invalid)
}

func TestSynthCommandReproducible(t *testing.T) {
	first, _, err := executeRoot(t, "synth", "testdata/enums", "--seed", "1234")
	require.NoError(t, err)
	second, _, err := executeRoot(t, "synth", "testdata/enums", "--seed", "1234")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSynthCommandMalformedEnvSeedJSON(t *testing.T) {
	t.Setenv("ENUMCONFORM_SEED", "-3")

	out, _, err := executeRoot(t, "synth", "testdata/enums", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeBadSeed, resp.Error.Code)
	assert.NotNil(t, resp.Error.Details)
}

func TestSynthCommandSeedFlagOverridesMalformedEnv(t *testing.T) {
	t.Setenv("ENUMCONFORM_SEED", "not-a-number")

	out, _, err := executeRoot(t, "synth", "testdata/enums", "--seed", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Seed: 0")
}

func TestSynthCommandMissingPath(t *testing.T) {
	_, _, err := executeRoot(t, "synth", "testdata/missing")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
