package auditlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	entries := []Entry{
		{Timestamp: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC), Action: "add", Details: "Income | 100 | salary"},
		{Timestamp: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC), Action: "modify", Row: "0", Details: "200"},
	}
	require.NoError(t, Append(dir, entries))

	got, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "add", got[0].Action)
	assert.Equal(t, "", got[0].Row)
	assert.Equal(t, "modify", got[1].Action)
	assert.Equal(t, "0", got[1].Row)
	assert.True(t, got[0].Timestamp.Equal(entries[0].Timestamp))
}

func TestAppend_WritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, []Entry{{Timestamp: time.Now(), Action: "add"}}))
	require.NoError(t, Append(dir, []Entry{{Timestamp: time.Now(), Action: "import"}}))

	data, err := os.ReadFile(filepath.Join(dir, "logs", "activity-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))

	got, err := Read(dir)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRead_NoFile(t *testing.T) {
	got, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnmarshalEntry_FieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"too", "short"})
	require.Error(t, err)
}
