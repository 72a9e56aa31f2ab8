package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI against a shared database path.
func run(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	return execute(t, append(args, "--db", db)...)
}

func TestAddCommand_PrintsFingerprint(t *testing.T) {
	db := tempDB(t)

	out, err := run(t, db, "add", "Ana", "Pay rent", "500", "2025-11-01")
	require.NoError(t, err)

	fingerprint := strings.TrimSpace(strings.TrimPrefix(out, "recorded: "))
	assert.Len(t, fingerprint, 64)
}

func TestAddCommand_NonNumericAmount(t *testing.T) {
	_, err := run(t, tempDB(t), "add", "Ana", "Pay rent", "lots", "2025-11-01")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "amount must be a number")
}

func TestAddCommand_NegativeAmount(t *testing.T) {
	db := tempDB(t)

	out, err := run(t, db, "add", "Ana", "Pay rent", "-10", "2025-11-01")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [VALIDATION]")

	// The rejected add left no row behind.
	out, err = run(t, db, "list", "Ana")
	require.NoError(t, err)
	assert.Contains(t, out, "no commitments for Ana")
}

func TestCompleteCommand_UnknownFingerprint(t *testing.T) {
	out, err := run(t, tempDB(t), "complete", "deadbeef")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [NOT_FOUND]")
}

func TestAddCompleteRepFlow(t *testing.T) {
	db := tempDB(t)

	out, err := run(t, db, "add", "Ana", "Pay rent", "500", "2025-11-01")
	require.NoError(t, err)
	fingerprint := strings.TrimSpace(strings.TrimPrefix(out, "recorded: "))

	out, err = run(t, db, "rep", "Ana")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana: 0.00%")

	out, err = run(t, db, "complete", fingerprint)
	require.NoError(t, err)
	assert.Contains(t, out, "completed: "+fingerprint)

	// Completing again succeeds - the transition is idempotent.
	_, err = run(t, db, "complete", fingerprint)
	require.NoError(t, err)

	out, err = run(t, db, "rep", "Ana")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana: 100.00%")

	_, err = run(t, db, "add", "Ana", "Clean house", "0", "2025-11-05")
	require.NoError(t, err)

	out, err = run(t, db, "rep", "Ana")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana: 50.00%")
}

func TestListCommand_TextOrderAndLimit(t *testing.T) {
	db := tempDB(t)

	_, err := run(t, db, "add", "Ana", "first", "1", "2025-11-01")
	require.NoError(t, err)
	_, err = run(t, db, "add", "Ana", "second", "2", "2025-11-02")
	require.NoError(t, err)

	out, err := run(t, db, "list", "Ana")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "second"), strings.Index(out, "first"),
		"most recent commitment must be listed first")

	out, err = run(t, db, "list", "Ana", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "second")
	assert.NotContains(t, out, "first")
}

func TestListCommand_JSON(t *testing.T) {
	db := tempDB(t)

	_, err := run(t, db, "add", "Ana", "Pay rent", "500", "2025-11-01")
	require.NoError(t, err)

	out, err := run(t, db, "list", "Ana", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   []struct {
			Message     string  `json:"message"`
			Amount      float64 `json:"amount"`
			Status      string  `json:"status"`
			Fingerprint string  `json:"fingerprint"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Pay rent", resp.Data[0].Message)
	assert.Equal(t, 500.0, resp.Data[0].Amount)
	assert.Equal(t, "PENDING", resp.Data[0].Status)
	assert.Len(t, resp.Data[0].Fingerprint, 64)
}

func TestExportCommand_Stdout(t *testing.T) {
	db := tempDB(t)

	_, err := run(t, db, "add", "Ana", "Pay rent", "500", "2025-11-01")
	require.NoError(t, err)

	out, err := run(t, db, "export", "--output", "-")
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Ana", records[0]["user"])
	assert.Equal(t, "PENDING", records[0]["status"])
	// The export contract omits internal fields.
	assert.NotContains(t, records[0], "id")
	assert.NotContains(t, records[0], "created_at")
}

func TestExportCommand_File(t *testing.T) {
	db := tempDB(t)
	path := filepath.Join(t.TempDir(), "out.json")

	_, err := run(t, db, "add", "Ana", "Pay rent", "500", "2025-11-01")
	require.NoError(t, err)

	out, err := run(t, db, "export", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "exported to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "["))
}

func TestChatCommand_RequiresToken(t *testing.T) {
	t.Setenv("TRUSTLEDGER_TOKEN", "")

	_, err := run(t, tempDB(t), "chat", "Ana")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "no bot token configured")
}

func TestChatCommand_DispatchesLines(t *testing.T) {
	t.Setenv("TRUSTLEDGER_TOKEN", "sekret")
	t.Setenv("TRUSTLEDGER_EXPORT_PATH", filepath.Join(t.TempDir(), "trust_log.json"))
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(strings.NewReader("add Pay rent | 500 | 2025-11-01\nrep\n"))
	cmd.SetArgs([]string{"chat", "Ana", "--db", tempDB(t)})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Commitment recorded with fingerprint")
	assert.Contains(t, out, "Your current reputation is 0.00%")
}
