package config

import (
	"strings"
	"testing"

	"github.com/arthur-debert/wixsync/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGenerateConfigContentRoundTrips(t *testing.T) {
	cfg := Default()
	cfg.Scan.Exclude = []string{"*.pdb"}
	cfg.Files = []string{"/ignored.toml"}

	t.Run("toml", func(t *testing.T) {
		out, err := GenerateConfigContent(cfg, FormatTOML)
		require.NoError(t, err)
		assert.Contains(t, out, "[manifest]")
		assert.NotContains(t, out, "ignored")

		var back Config
		require.NoError(t, toml.Unmarshal([]byte(out), &back))
		assert.Equal(t, cfg.Manifest, back.Manifest)
		assert.Equal(t, cfg.Component, back.Component)
		assert.Equal(t, cfg.Scan, back.Scan)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := GenerateConfigContent(cfg, FormatYAML)
		require.NoError(t, err)
		assert.Contains(t, out, "disk_id: \"1\"")

		var back Config
		require.NoError(t, yaml.Unmarshal([]byte(out), &back))
		assert.Equal(t, cfg.Install, back.Install)
		assert.Equal(t, cfg.Scan, back.Scan)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := GenerateConfigContent(cfg, "ini")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestGenerateTemplateContent(t *testing.T) {
	out := GenerateTemplateContent()

	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "line %q should be commented", line)
	}
	assert.Contains(t, out, "# anchor = \"ProgramFilesFolder\"")
	assert.Contains(t, out, "[scan]")
}
