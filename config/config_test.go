package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keychain/config"
	"github.com/katalvlaran/keychain/keypad"
)

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.Depth)
	assert.Equal(t, log.InfoLevel, cfg.Level())

	num, dir, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, keypad.Numeric().Rows(), num.Rows())
	assert.Equal(t, keypad.Directional().Rows(), dir.Rows())
}

func TestDecode_Overrides(t *testing.T) {
	src := `
depth = 26
workers = 2
log_level = "debug"

[keypads]
gap = "#"
numeric = ["789", "456", "123", "#0A"]
directional = ["#^A", "<v>"]
`
	cfg, err := config.Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 26, cfg.Depth)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 5, cfg.MaxEncodeDepth, "unset keys keep defaults")
	assert.Equal(t, log.DebugLevel, cfg.Level())

	num, _, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, keypad.Position{Row: 3, Col: 0}, num.Gap())
}

func TestDecode_Invalid(t *testing.T) {
	cases := map[string]string{
		"ZeroDepth":    "depth = 0",
		"NegWorkers":   "workers = -1",
		"BadLevel":     `log_level = "loud"`,
		"UnknownKey":   "robots = 3",
		"LongGap":      "[keypads]\ngap = \"##\"",
		"RaggedLayout": "[keypads]\nnumeric = [\"789\", \"45\"]",
		"ZeroEncode":   "max_encode_depth = 0",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(src))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Decode(strings.NewReader("depth = "))
	assert.Error(t, err)
}

func TestLoad_RoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Depth = 26
	cfg.Workers = 1

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))

	path := filepath.Join(t.TempDir(), "keychain.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
