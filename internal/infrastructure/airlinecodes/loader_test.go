package airlinecodes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	codes, err := Default()
	require.NoError(t, err)

	tests := map[string]string{
		"AK": "AXM",
		"MH": "MAS",
		"QZ": "AWQ",
		"GA": "GIA",
		"CX": "CPA",
	}
	for iata, icao := range tests {
		got, ok := codes.Lookup(iata)
		assert.True(t, ok, iata)
		assert.Equal(t, icao, got, iata)
	}

	translated, ok := codes.TranslateIdent("AK6322")
	assert.True(t, ok)
	assert.Equal(t, "AXM6322", translated)
}

func TestDefault_EveryPrefixIsTranslatable(t *testing.T) {
	var raw file
	require.NoError(t, yaml.Unmarshal(defaultTable, &raw))

	codes, err := Default()
	require.NoError(t, err)
	require.Equal(t, len(raw.Airlines), codes.Len())

	for iata, icao := range raw.Airlines {
		translated, ok := codes.TranslateIdent(iata + "123")
		assert.True(t, ok, "%s is never reached by translation", iata)
		assert.Equal(t, icao+"123", translated, iata)
	}
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	codes, err := Load("")
	require.NoError(t, err)

	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, def.Len(), codes.Len())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("airlines:\n  zz: zzz\n"), 0o600))

	codes, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, codes.Len())
	translated, ok := codes.TranslateIdent("ZZ123")
	assert.True(t, ok)
	assert.Equal(t, "ZZZ123", translated)

	_, ok = codes.TranslateIdent("AK6322")
	assert.False(t, ok, "a custom table replaces the default")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read airline codes file")
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"malformed yaml", "airlines: [", "failed to parse airline codes"},
		{"empty table", "airlines: {}\n", "empty"},
		{"missing key", "other: 1\n", "empty"},
		{"three letter iata", "airlines:\n  AXM: AXM\n", "invalid airline code pair"},
		{"two letter icao", "airlines:\n  AK: AX\n", "invalid airline code pair"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
