package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/weblib-dev/weblib/internal/errors"
	"github.com/weblib-dev/weblib/pkg/css"
)

const (
	// ConfigName is the base name of the configuration file.
	ConfigName = "weblib"

	// ConfigFileName is the configuration file searched for in the working directory.
	ConfigFileName = ConfigName + ".yaml"

	// EnvPrefix prefixes environment overrides, e.g. WEBLIB_ADDR or WEBLIB_LOG_LEVEL.
	EnvPrefix = "WEBLIB"

	// DefaultAddr is the default listen address.
	DefaultAddr = ":8080"

	// DefaultFramework is the default CSS framework.
	DefaultFramework = "bootstrap"
)

// Config is the complete weblib configuration.
type Config struct {
	// Addr is the address the server listens on.
	Addr string `mapstructure:"addr" yaml:"addr"`

	// Framework selects the CSS framework used by components.
	Framework string `mapstructure:"framework" yaml:"framework"`

	// Lang is the lang attribute of rendered documents.
	Lang string `mapstructure:"lang" yaml:"lang"`

	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
	Tracing TracingConfig `mapstructure:"tracing" yaml:"tracing"`
	Export  ExportConfig  `mapstructure:"export" yaml:"export"`

	// path is the file the config was loaded from, if any.
	path string
}

// LogConfig controls the CLI log handler.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `mapstructure:"level" yaml:"level"`

	// Format is text (colourised) or json.
	Format string `mapstructure:"format" yaml:"format"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// TracingConfig controls OpenTelemetry request spans.
type TracingConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// ExportConfig holds the static export targets.
type ExportConfig struct {
	// Dir is the output directory.
	Dir string `mapstructure:"dir" yaml:"dir"`

	S3 S3Config `mapstructure:"s3" yaml:"s3"`
}

// S3Config names the S3 bucket pages are uploaded to.
type S3Config struct {
	Bucket string `mapstructure:"bucket" yaml:"bucket"`
	Prefix string `mapstructure:"prefix" yaml:"prefix"`
	Region string `mapstructure:"region" yaml:"region"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Addr:      DefaultAddr,
		Framework: DefaultFramework,
		Lang:      "en",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Export: ExportConfig{
			Dir: "dist",
			S3: S3Config{
				Region: "us-east-1",
			},
		},
	}
}

// keys lists every configuration key with its default.
func keys(c *Config) map[string]any {
	return map[string]any{
		"addr":             c.Addr,
		"framework":        c.Framework,
		"lang":             c.Lang,
		"log.level":        c.Log.Level,
		"log.format":       c.Log.Format,
		"metrics.enabled":  c.Metrics.Enabled,
		"metrics.path":     c.Metrics.Path,
		"tracing.enabled":  c.Tracing.Enabled,
		"export.dir":       c.Export.Dir,
		"export.s3.bucket": c.Export.S3.Bucket,
		"export.s3.prefix": c.Export.S3.Prefix,
		"export.s3.region": c.Export.S3.Region,
	}
}

// NewViper returns a viper instance with defaults and environment
// overrides configured.
func NewViper() *viper.Viper {
	v := viper.New()
	for key, value := range keys(Default()) {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds command-line flags to configuration keys. flags maps a
// key such as "log.level" to a flag name such as "log-level". Flags only
// override lower layers when set on the command line.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, flags map[string]string) error {
	for key, name := range flags {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads configuration in layers: defaults, then the YAML file, then
// WEBLIB_* environment variables, then bound flags. An explicit path must
// exist; otherwise weblib.yaml is used when present in the working
// directory.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.New("W101").WithSubject(path).Wrap(err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, errors.New("W102").WithSubject(path).Wrap(err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.New("W102").WithSubject(v.ConfigFileUsed()).Wrap(err)
	}
	cfg.path = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	if _, err := css.Lookup(c.Framework); err != nil {
		return errors.New("W403").WithSubject(c.Framework)
	}
	if _, err := c.SlogLevel(); err != nil {
		return errors.New("W103").WithSubject("log.level").Wrap(err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("W103").WithSubject("log.format").
			Wrap(fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("W103").WithSubject("metrics.path").
			Wrap(fmt.Errorf("path %q must start with /", c.Metrics.Path))
	}
	if c.Lang == "" {
		return errors.New("W103").WithSubject("lang").Wrap(fmt.Errorf("lang must not be empty"))
	}
	return nil
}

// SlogLevel parses Log.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.Log.Level))
	return level, err
}

// Path returns the file the config was loaded from, or "" when none was read.
func (c *Config) Path() string {
	return c.path
}

// Marshal returns the YAML encoding of c.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// SaveTo writes c to path as YAML.
func (c *Config) SaveTo(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return errors.New("W104").WithSubject(path).Wrap(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("W104").WithSubject(path).Wrap(err)
	}
	c.path = path
	return nil
}

// Init writes a starter configuration to path. An existing file is only
// replaced when force is set.
func Init(path string, force bool) (*Config, error) {
	if path == "" {
		path = ConfigFileName
	}
	if _, err := os.Stat(path); err == nil && !force {
		return nil, errors.New("W105").WithSubject(path)
	}
	cfg := Default()
	if err := cfg.SaveTo(path); err != nil {
		return nil, err
	}
	return cfg, nil
}
