package input_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keychain/input"
)

func TestParse(t *testing.T) {
	codes, err := input.Parse(strings.NewReader("029A\n980A\n\n  179A \n456A\n379A\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"029A", "980A", "179A", "456A", "379A"}, codes)
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"NoSuffix":  "029A\n123\n",
		"Letter":    "0B9A\n",
		"Lowercase": "029a\n",
		"OnlyA":     "A\n",
		"TwoA":      "12AA\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := input.Parse(strings.NewReader(in))
			assert.ErrorIs(t, err, input.ErrMalformedCode)
		})
	}

	_, err := input.Parse(strings.NewReader("029A\n12x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParse_Empty(t *testing.T) {
	_, err := input.Parse(strings.NewReader("\n \n"))
	assert.ErrorIs(t, err, input.ErrNoCodes)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.txt")
	require.NoError(t, os.WriteFile(path, []byte("341A\r\n083A\r\n"), 0o644))

	codes, err := input.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"341A", "083A"}, codes)

	_, err = input.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
