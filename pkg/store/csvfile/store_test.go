package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEntries(t *testing.T, content string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entries.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return NewStore(path)
}

func TestGetEntries(t *testing.T) {
	store := writeEntries(t, `date,kind,duration,description,client
2024-06-03,work,1,dev feature X,Acme
2024-06-04,work,1,shared day,Acme + Globex
2024-06-08,weekend,0,,
2024-06-20,work,1,out of range,Acme
`)

	from := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC)
	entries, err := store.GetEntries(context.Background(), from, to)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, "work", entries[0].Kind)
	assert.Equal(t, "1", entries[0].Duration)
	assert.Equal(t, "Acme + Globex", entries[1].Client)
}

func TestGetEntries_BadHeader(t *testing.T) {
	store := writeEntries(t, "day,type,hours,notes,customer\n")

	_, err := store.GetEntries(context.Background(), time.Now(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected entries header")
}

func TestGetEntries_BadDate(t *testing.T) {
	store := writeEntries(t, "date,kind,duration,description,client\n03/06/2024,work,1,,Acme\n")

	_, err := store.GetEntries(context.Background(), time.Now(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestGetEntries_MissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope.csv"))

	_, err := store.GetEntries(context.Background(), time.Now(), time.Now())
	assert.Error(t, err)
}
