// Package config loads, validates and persists lcafocus configuration.
//
// Configuration is read from $LCAFOCUS_HOME/config.yaml (default
// ~/.lcafocus/config.yaml), optionally overlaid by a project-local
// .lcafocus/config.yaml, and finally overridden by LCAFOCUS_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvHome         = "LCAFOCUS_HOME"
	EnvProjectDir   = "LCAFOCUS_PROJECT_DIR"
	EnvLogLevel     = "LCAFOCUS_LOG_LEVEL"
	EnvLogFormat    = "LCAFOCUS_LOG_FORMAT"
	EnvOutputFormat = "LCAFOCUS_OUTPUT_FORMAT"
	EnvFactors      = "LCAFOCUS_FACTORS"
)

const (
	configFileName      = "config.yaml"
	defaultPrecision    = 2
	defaultOutputFormat = "table"
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
	outputTypeFile      = "file"
	configFilePerm      = 0600
	maxPrecision        = 10
)

// ErrUnknownKey is returned by Get and Set for keys outside the schema.
var ErrUnknownKey = errors.New("unknown configuration key")

// Config is the full lcafocus configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Factors FactorsConfig `yaml:"factors"`

	// path is the file Config was loaded from and is saved to.
	path string

	// loadErrs records files that exist but could not be applied.
	loadErrs []error
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" validate:"oneof=table json ndjson"`
	Precision     int    `yaml:"precision"      validate:"gte=0,lte=10"`
	Color         bool   `yaml:"color"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level"  validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `yaml:"format" validate:"oneof=json console"`
	File   string `yaml:"file,omitempty"`
}

// FactorsConfig locates the default impact factor document.
type FactorsConfig struct {
	Path string `yaml:"path,omitempty"`
}

//nolint:gochecknoglobals // validator instances cache struct metadata and are safe for reuse.
var configValidate = validator.New()

// Defaults returns a Config populated with built-in defaults only.
func Defaults() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: defaultOutputFormat,
			Precision:     defaultPrecision,
			Color:         true,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// New loads the user configuration file on top of the defaults and applies
// environment overrides. A missing file yields defaults. A file that cannot
// be read or parsed also yields defaults, and the failure is kept for
// LoadErrors.
func New() *Config {
	cfg := Defaults()
	if dir, err := GetConfigDir(); err == nil {
		cfg.path = filepath.Join(dir, configFileName)
		if loadErr := cfg.loadFile(cfg.path); loadErr != nil && !errors.Is(loadErr, fs.ErrNotExist) {
			// A partial decode may have touched some fields.
			fresh := Defaults()
			fresh.path = cfg.path
			fresh.loadErrs = []error{loadErr}
			cfg = fresh
		}
	}
	cfg.applyEnv()
	return cfg
}

// LoadErrors returns the failures met while reading configuration files.
// Callers report them once logging is available.
func (c *Config) LoadErrors() []error {
	return c.loadErrs
}

// Load reads path on top of the defaults. Environment overrides are applied.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	cfg.path = path
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadFile reads path on top of the defaults without environment overrides,
// for editing the file in place.
func LoadFile(path string) (*Config, error) {
	cfg := Defaults()
	cfg.path = path
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = strings.ToLower(v)
	}
	if v := os.Getenv(EnvFactors); v != "" {
		c.Factors.Path = v
	}
}

// Path returns the file this configuration is bound to.
func (c *Config) Path() string {
	return c.path
}

// SetPath rebinds the configuration to a different file for Save.
func (c *Config) SetPath(path string) {
	c.path = path
}

// Validate checks every section against its constraints.
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Save writes the configuration to its bound path, creating the directory.
func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("config has no file path")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.path, data, configFilePerm); err != nil {
		return fmt.Errorf("writing config %s: %w", c.path, err)
	}
	return nil
}

// Keys lists every dotted key accepted by Get and Set.
func Keys() []string {
	keys := []string{
		"output.default_format", "output.precision", "output.color",
		"logging.level", "logging.format", "logging.file",
		"factors.path",
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key such as "output.precision".
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "output.default_format":
		return c.Output.DefaultFormat, nil
	case "output.precision":
		return strconv.Itoa(c.Output.Precision), nil
	case "output.color":
		return strconv.FormatBool(c.Output.Color), nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.file":
		return c.Logging.File, nil
	case "factors.path":
		return c.Factors.Path, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set assigns a dotted key from its string form and validates the result.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "output.default_format":
		next.Output.DefaultFormat = value
	case "output.precision":
		p, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("output.precision must be an integer: %w", err)
		}
		if p < 0 || p > maxPrecision {
			return fmt.Errorf("output.precision must be between 0 and %d, got %d", maxPrecision, p)
		}
		next.Output.Precision = p
	case "output.color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("output.color must be a boolean: %w", err)
		}
		next.Output.Color = b
	case "logging.level":
		next.Logging.Level = strings.ToLower(value)
	case "logging.format":
		next.Logging.Format = strings.ToLower(value)
	case "logging.file":
		next.Logging.File = value
	case "factors.path":
		next.Factors.Path = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}
