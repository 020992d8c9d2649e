package genconfig

import (
	"strings"
	"testing"

	"github.com/arthur-debert/wixsync/pkg/config"
	"github.com/arthur-debert/wixsync/pkg/errors"
	"github.com/arthur-debert/wixsync/pkg/filesystem"
	"github.com/arthur-debert/wixsync/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfig(t *testing.T) {
	t.Run("output to stdout", func(t *testing.T) {
		cfg := config.Default()
		cfg.Manifest.Anchor = "INSTALLFOLDER"

		result, err := GenConfig(GenConfigOptions{Config: cfg})

		require.NoError(t, err)
		assert.Equal(t, "toml", result.Format)
		assert.Contains(t, result.ConfigContent, "[manifest]")
		assert.Contains(t, result.ConfigContent, "INSTALLFOLDER")
		assert.Empty(t, result.FilesWritten)
	})

	t.Run("yaml", func(t *testing.T) {
		result, err := GenConfig(GenConfigOptions{Format: "yaml"})

		require.NoError(t, err)
		assert.Contains(t, result.ConfigContent, "anchor: ProgramFilesFolder")
	})

	t.Run("template", func(t *testing.T) {
		result, err := GenConfig(GenConfigOptions{Template: true, Format: "yaml"})

		require.NoError(t, err)
		assert.Equal(t, "toml", result.Format, "the template only exists as toml")

		// Verify that configuration values are commented out
		for _, line := range strings.Split(result.ConfigContent, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") ||
				(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")) {
				continue
			}
			assert.Fail(t, "Found uncommented configuration line", "Line: %s", line)
		}
		assert.Contains(t, result.ConfigContent, "# suffix = \"Component\"")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := GenConfig(GenConfigOptions{Format: "ini"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestGenConfigWrite(t *testing.T) {
	fsys := filesystem.NewMemory()

	result, err := GenConfig(GenConfigOptions{Write: true, TargetDir: "/work/setup", FileSystem: fsys})
	require.NoError(t, err)
	assert.Equal(t, []string{"/work/setup/.wixsync.toml"}, result.FilesWritten)
	assert.Equal(t, result.ConfigContent, testutil.ReadFile(t, fsys, "/work/setup/.wixsync.toml"))

	// an existing file is never overwritten
	require.NoError(t, fsys.WriteFile("/work/setup/.wixsync.toml", []byte("# mine\n"), 0644))
	again, err := GenConfig(GenConfigOptions{Write: true, TargetDir: "/work/setup", FileSystem: fsys})
	require.NoError(t, err)
	assert.Empty(t, again.FilesWritten)
	assert.Equal(t, []string{"/work/setup/.wixsync.toml"}, again.FilesSkipped)
	assert.Equal(t, "# mine\n", testutil.ReadFile(t, fsys, "/work/setup/.wixsync.toml"))
}
