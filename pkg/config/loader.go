package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"

	"github.com/arthur-debert/aoc/pkg/errors"
)

// EnvPrefix marks environment variables read as configuration
const EnvPrefix = "AOC_"

// ProjectFiles are looked up in the working directory, first match wins
var ProjectFiles = []string{"aoc.toml", ".aoc.toml"}

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions selects the files and overrides merged on top of the defaults
type LoadOptions struct {
	// WorkDir is searched for a project file. Empty means the current directory.
	WorkDir string
	// File replaces the project file lookup and must exist
	File string
	// SkipUserConfig ignores $XDG_CONFIG_HOME/aoc/config.toml
	SkipUserConfig bool
	// SkipProjectConfig ignores project files in WorkDir
	SkipProjectConfig bool
	// Overrides are dotted keys set from command line flags
	Overrides map[string]interface{}
}

// DefaultsContent returns the embedded defaults file
func DefaultsContent() string {
	return string(defaultConfig)
}

// UserConfigPath returns $XDG_CONFIG_HOME/aoc/config.toml
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "aoc", "config.toml")
}

// Default returns the configuration built from the embedded defaults only
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return unmarshal(k)
}

// Load merges the configuration layers, lowest to highest: embedded
// defaults, user config, project config, AOC_* environment, overrides.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config if it exists
	if !opts.SkipUserConfig {
		if err := loadFileIfExists(k, UserConfigPath()); err != nil {
			return nil, err
		}
	}

	// 3. Project config
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.File).
				WithDetail("path", opts.File)
		}
		if err := loadFile(k, opts.File); err != nil {
			return nil, err
		}
	} else if !opts.SkipProjectConfig {
		for _, name := range ProjectFiles {
			path := filepath.Join(opts.WorkDir, name)
			if fileExists(path) {
				if err := loadFile(k, path); err != nil {
					return nil, err
				}
				break
			}
		}
	}

	// 4. Env vars
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("inputs", cfg.Inputs.Dir).
		Str("format", cfg.Output.Format).
		Int("parallelism", cfg.Run.Parallelism).
		Msg("Configuration loaded")

	return cfg, nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps AOC_SECTION_KEY_NAME to section.key_name. Variables without
// a section are skipped.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if !strings.Contains(key, "_") {
		return ""
	}
	return strings.Replace(key, "_", ".", 1)
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if !fileExists(path) {
		return nil
	}
	return loadFile(k, path)
}

func loadFile(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	log.Debug().Str("path", path).Msg("Loaded config file")
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
