package config

import (
	"bytes"
	"strings"

	"github.com/arthur-debert/wixsync/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Output formats understood by GenerateConfigContent
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// GenerateConfigContent renders cfg as a configuration file
func GenerateConfigContent(cfg *Config, format string) (string, error) {
	switch strings.ToLower(format) {
	case "", FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(cfg); err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration as toml")
		}
		return buf.String(), nil
	case FormatYAML, "yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration as yaml")
		}
		if err := enc.Close(); err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration as yaml")
		}
		return buf.String(), nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown config format %q", format).
			WithDetail("format", format)
	}
}

// GenerateTemplateContent returns the documented defaults with every value
// commented out, ready to be saved as a starting config file
func GenerateTemplateContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [manifest], [scan]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
