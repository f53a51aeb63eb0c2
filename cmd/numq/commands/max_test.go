package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvo/numq/pkg/mathx"
)

func TestMaxCommand(t *testing.T) {
	out, err := executeCommand(t, "max", "3", "7", "2", "9", "1")
	require.NoError(t, err)
	assert.Equal(t, "Maximum value: 9\n", out)
}

func TestMaxCommand_SingleElement(t *testing.T) {
	out, err := executeCommand(t, "max", "42")
	require.NoError(t, err)
	assert.Equal(t, "Maximum value: 42\n", out)
}

func TestMaxCommand_Stdin(t *testing.T) {
	out, err := executeCommandWithInput(t, "3 7 2\n9 1\n", "max")
	require.NoError(t, err)
	assert.Equal(t, "Maximum value: 9\n", out)
}

func TestMaxCommand_EmptyInput(t *testing.T) {
	_, err := executeCommandWithInput(t, "", "max")
	require.Error(t, err)
	assert.ErrorIs(t, err, mathx.ErrEmptyInput)
}

func TestMaxCommand_BadInput(t *testing.T) {
	_, err := executeCommand(t, "max", "3", "seven", "2")
	assert.Error(t, err)
}

func TestMaxCommand_Index(t *testing.T) {
	out, err := executeCommand(t, "max", "--index", "3", "7", "2", "9", "1")
	require.NoError(t, err)
	assert.Equal(t, "Maximum value: 9\nIndex: 3\n", out)
}

func TestMaxCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "max", "--json", "3", "7", "2", "9", "1")
	require.NoError(t, err)

	var parsed maxOutput
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, int64(9), parsed.Max)
	assert.Equal(t, 3, parsed.Index)
	assert.Equal(t, 5, parsed.Count)
}

func TestMaxCommand_JSONIndexZero(t *testing.T) {
	out, err := executeCommand(t, "max", "--json", "9", "3", "7")
	require.NoError(t, err)

	// A maximum in first position must still be reported explicitly.
	assert.Contains(t, out, `"index": 0`)

	var parsed maxOutput
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, int64(9), parsed.Max)
	assert.Equal(t, 0, parsed.Index)
}

func TestStatsCommand(t *testing.T) {
	out, err := executeCommand(t, "stats", "3", "7", "2", "9", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Count: 5\n")
	assert.Contains(t, out, "Min:   2\n")
	assert.Contains(t, out, "Max:   9\n")
	assert.Contains(t, out, "Sum:   22\n")
	assert.Contains(t, out, "Mean:  4.40\n")
}

func TestStatsCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "stats", "--json", "3", "7", "2", "9", "1")
	require.NoError(t, err)

	var parsed statsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, statsOutput{Count: 5, Min: 2, Max: 9, Sum: 22, Mean: 4.4}, parsed)
}

func TestStatsCommand_EmptyInput(t *testing.T) {
	_, err := executeCommandWithInput(t, "", "stats")
	require.Error(t, err)
	assert.ErrorIs(t, err, mathx.ErrEmptyInput)
}
