package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMessages = `[
  {"id": "2", "content": "", "embeds": [{"title": "Beta", "fields": [{"name": "👥 Players", "value": "**3**/8"}]}]},
  {"id": "1", "content": "hello", "embeds": []}
]`

func runParse(t *testing.T, stdin string, args ...string) []parseResult {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(append([]string{"parse"}, args...))
	t.Cleanup(func() {
		RootCmd.SetIn(nil)
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
	})

	require.NoError(t, RootCmd.Execute())

	var results []parseResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	return results
}

func TestParseCmd_Stdin(t *testing.T) {
	results := runParse(t, sampleMessages)

	require.Len(t, results, 2)
	assert.Equal(t, "2", results[0].MessageID)
	assert.True(t, results[0].Informative)
	assert.Equal(t, "Beta", results[0].Extracted.ServerName)
	assert.Equal(t, "3/8", results[0].Extracted.Players)
	assert.False(t, results[1].Informative)
}

func TestParseCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "message.json")
	msg := `{"id": "9", "embeds": [{"description": "TeleportToPlaceInstance(1, 'abc-def-456')"}]}`
	require.NoError(t, os.WriteFile(path, []byte(msg), 0o600))

	results := runParse(t, "", path)

	require.Len(t, results, 1)
	assert.Equal(t, "abc-def-456", results[0].Extracted.JobID)
}

func TestDecodeMessages_Invalid(t *testing.T) {
	_, err := decodeMessages([]byte("  "))
	assert.Error(t, err)

	_, err = decodeMessages([]byte("{oops"))
	assert.Error(t, err)
}
