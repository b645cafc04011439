// ABOUTME: Layered lift configuration with backend selection.
// ABOUTME: Merges the YAML file, LIFT_* env vars and CLI flags, then opens storage.

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/harperreed/lift/internal/storage"
)

const (
	// EnvPrefix is the prefix of every environment override.
	EnvPrefix = "LIFT_"

	BackendSQLite = "sqlite"
	BackendBadger = "badger"
)

// Config stores lift configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "badger".
	Backend string `koanf:"backend" yaml:"backend,omitempty" validate:"omitempty,oneof=sqlite badger"`

	// DataDir is the root directory for data storage. SQLite puts
	// lift_data.db here, badger uses the badger/ subdirectory.
	// Supports ~ expansion. Defaults to ~/.local/share/lift.
	DataDir string `koanf:"data_dir" yaml:"data_dir,omitempty"`

	// DB overrides the SQLite database file.
	DB string `koanf:"db" yaml:"db,omitempty" validate:"omitempty,filepath"`

	Verbose bool `koanf:"verbose" yaml:"verbose,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendSQLite
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDBPath returns the SQLite file, honouring the db override.
func (c *Config) GetDBPath() string {
	if c.DB != "" {
		return ExpandPath(c.DB)
	}
	return filepath.Join(c.GetDataDir(), storage.DefaultDBName)
}

// GetBadgerDir returns the badger store directory.
func (c *Config) GetBadgerDir() string {
	return filepath.Join(c.GetDataDir(), "badger")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks field values after ~ expansion.
func (c *Config) Validate() error {
	expanded := *c
	expanded.DB = ExpandPath(c.DB)
	if err := validate.Struct(expanded); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s=%q fails %q", strings.ToLower(fe.Field()), fe.Value(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage(ctx context.Context) (storage.Repository, error) {
	backend := c.GetBackend()

	switch backend {
	case BackendSQLite:
		return storage.Open(ctx, c.GetDBPath())
	case BackendBadger:
		return storage.OpenBadger(c.GetBadgerDir())
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "lift", "config.yaml")
}

// Load reads config from the default file, the environment and flags.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	return LoadFrom(GetConfigPath(), flags)
}

// LoadFrom is Load with an explicit config file path. A missing file is
// not an error.
func LoadFrom(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat config file %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, flagKey(flags)), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps LIFT_DATA_DIR to data_dir.
func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

var flagKeys = map[string]string{
	"backend":  "backend",
	"data-dir": "data_dir",
	"db":       "db",
	"verbose":  "verbose",
}

// flagKey keeps only the config flags and maps their names to config keys.
func flagKey(fs *pflag.FlagSet) func(f *pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
