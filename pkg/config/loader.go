package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/wixsync/pkg/errors"
	"github.com/arthur-debert/wixsync/pkg/filesystem"
	"github.com/arthur-debert/wixsync/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	// AppDirName is the directory under $XDG_CONFIG_HOME holding the user config
	AppDirName = "wixsync"
	// EnvPrefix starts every environment variable read as configuration
	EnvPrefix = "WIXSYNC_"
)

var (
	userConfigNames    = []string{"config.toml", "config.yaml", "config.yml"}
	projectConfigNames = []string{".wixsync.toml", ".wixsync.yaml", ".wixsync.yml"}
)

// LoadOptions selects the optional configuration layers
type LoadOptions struct {
	// ManifestDir is searched for a project config file
	ManifestDir string
	// File is an explicit config file; it must exist
	File string
	// Overrides are dotted keys set from the command line
	Overrides map[string]interface{}
	// Exclude patterns are appended to scan.exclude
	Exclude []string
	// FileSystem reads the config files; nil means the OS filesystem
	FileSystem types.FS
}

// Load merges, later wins: embedded defaults, the user config, the project
// config next to the manifest, the explicit file, WIXSYNC_* variables and
// the overrides.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")
	var loaded []string

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	path, err := findFirst(fsys, filepath.Join(xdg.ConfigHome, AppDirName), userConfigNames)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadFile(k, fsys, path); err != nil {
			return nil, err
		}
		loaded = append(loaded, path)
	}

	// 3. Project config
	if opts.ManifestDir != "" {
		path, err := findFirst(fsys, opts.ManifestDir, projectConfigNames)
		if err != nil {
			return nil, err
		}
		if path != "" {
			if err := loadFile(k, fsys, path); err != nil {
				return nil, err
			}
			loaded = append(loaded, path)
		}
	}

	// 4. Explicit file
	if opts.File != "" {
		if _, err := fsys.Stat(opts.File); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.File).
				WithDetail("path", opts.File)
		}
		if err := loadFile(k, fsys, opts.File); err != nil {
			return nil, err
		}
		loaded = append(loaded, opts.File)
	}

	// 5. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 6. Command line
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	cfg.Scan.Exclude = appendUnique(cfg.Scan.Exclude, opts.Exclude...)
	cfg.Files = loaded

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps WIXSYNC_COMPONENT_DISK_ID to component.disk_id: the first
// underscore separates the section from the key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

func findFirst(fsys types.FS, dir string, names []string) (string, error) {
	for _, name := range names {
		path := filepath.Join(dir, name)
		_, err := fsys.Stat(path)
		if err == nil {
			return path, nil
		}
		if !os.IsNotExist(err) {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat %s", path).
				WithDetail("path", path)
		}
	}
	return "", nil
}

func loadFile(k *koanf.Koanf, fsys types.FS, path string) error {
	parser, err := parserFor(path)
	if err != nil {
		return err
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path).
			WithDetail("path", path)
	}
	if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported config format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

func appendUnique(dest []string, items ...string) []string {
	seen := make(map[string]bool, len(dest))
	for _, item := range dest {
		seen[item] = true
	}
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		dest = append(dest, item)
	}
	return dest
}
