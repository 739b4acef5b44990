package rates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_UnknownClientDefaultsToZero(t *testing.T) {
	lookup := NewStatic(map[string]float64{"Acme": 500})

	assert.Equal(t, 500.0, lookup.Rate("Acme"))
	assert.Equal(t, 0.0, lookup.Rate("Globex"))
}

func TestStatic_CopiesInput(t *testing.T) {
	src := map[string]float64{"Acme": 500}
	lookup := NewStatic(src)
	src["Acme"] = 900

	assert.Equal(t, 500.0, lookup.Rate("Acme"))
}

func TestStatic_ClientsSorted(t *testing.T) {
	lookup := NewStatic(map[string]float64{"Globex": 450, "Acme": 500})

	assert.Equal(t, []string{"Acme", "Globex"}, lookup.Clients())
}

func TestNewRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.ini")
	profile := `[Acme]
tjm = 500

[Globex]
tjm = 650.5

[NoRate]
devise = EUR
`
	require.NoError(t, os.WriteFile(path, []byte(profile), 0o600))

	lookup, err := NewRegistry(path)
	require.NoError(t, err)

	assert.Equal(t, 500.0, lookup.Rate("Acme"))
	assert.Equal(t, 650.5, lookup.Rate("Globex"))
	assert.Equal(t, 0.0, lookup.Rate("NoRate"))
	assert.Equal(t, []string{"Acme", "Globex"}, lookup.Clients())
}

func TestNewRegistry_InvalidRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.ini")
	require.NoError(t, os.WriteFile(path, []byte("[Acme]\ntjm = abc\n"), 0o600))

	_, err := NewRegistry(path)
	assert.Error(t, err)
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "nope.ini"))
	assert.Error(t, err)
}
