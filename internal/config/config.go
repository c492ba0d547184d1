package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vango-dev/minidom/internal/errors"
)

const (
	// JSONFileName is the JSON configuration file name.
	JSONFileName = "minidom.json"

	// TOMLFileName is the TOML configuration file name.
	TOMLFileName = "minidom.toml"

	// DefaultPort is the default playground server port.
	DefaultPort = 7070

	// DefaultHost is the default playground server host.
	DefaultHost = "localhost"

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "minidom"

	// DefaultMetricsPath is the default metrics endpoint.
	DefaultMetricsPath = "/metrics"
)

// Output formats accepted by Demo.Output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the complete minidom configuration.
type Config struct {
	// Name is shown in the playground page title and log lines.
	Name string `json:"name,omitempty" toml:"name"`

	Log     LogConfig     `json:"log" toml:"log"`
	Server  ServerConfig  `json:"server" toml:"server"`
	Metrics MetricsConfig `json:"metrics" toml:"metrics"`
	Tracing TracingConfig `json:"tracing" toml:"tracing"`
	Demo    DemoConfig    `json:"demo" toml:"demo"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// LogConfig configures the slog handler built by the CLI.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" toml:"level"`

	// Format is text or json.
	Format string `json:"format,omitempty" toml:"format"`
}

// ServerConfig configures the playground server.
type ServerConfig struct {
	Host string `json:"host,omitempty" toml:"host"`
	Port int    `json:"port,omitempty" toml:"port"`

	// ReadTimeout is a Go duration string (e.g., "10s").
	ReadTimeout string `json:"readTimeout,omitempty" toml:"read_timeout"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled" toml:"enabled"`
	Namespace string `json:"namespace,omitempty" toml:"namespace"`
	Path      string `json:"path,omitempty" toml:"path"`
}

// TracingConfig configures OpenTelemetry spans around render passes.
type TracingConfig struct {
	Enabled    bool   `json:"enabled" toml:"enabled"`
	TracerName string `json:"tracerName,omitempty" toml:"tracer_name"`
}

// DemoConfig configures the demo command.
type DemoConfig struct {
	// Delay is the pause between the first and second render.
	Delay string `json:"delay,omitempty" toml:"delay"`

	// Output is text, json or yaml.
	Output string `json:"output,omitempty" toml:"output"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Name: "minidom",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Host:        DefaultHost,
			Port:        DefaultPort,
			ReadTimeout: "10s",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
			Path:      DefaultMetricsPath,
		},
		Tracing: TracingConfig{
			TracerName: "minidom",
		},
		Demo: DemoConfig{
			Delay:  "0s",
			Output: OutputText,
		},
	}
}

// Load reads configuration from dir, trying minidom.json then minidom.toml.
func Load(dir string) (*Config, error) {
	for _, name := range []string{JSONFileName, TOMLFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("C001").
		WithDetail("No " + JSONFileName + " or " + TOMLFileName + " found in " + dir)
}

// LoadOrDefault is Load, falling back to defaults when no file exists.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.CodeOf(err) == "C001" {
		return New(), nil
	}
	return cfg, err
}

// LoadFile reads configuration from path. The decoder is chosen by the file
// extension: .toml for TOML, anything else is parsed as JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("C001").
				WithDetail("No config file at " + path)
		}
		return nil, errors.New("C002").Wrap(err)
	}

	cfg := New()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.New("C002").
				WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
				WithSuggestion("Check that the file is valid TOML")
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("C002").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that the file is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path, as TOML if the extension is
// .toml and JSON otherwise.
func (c *Config) SaveTo(path string) error {
	var data []byte
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		var b strings.Builder
		if err := toml.NewEncoder(&b).Encode(c); err != nil {
			return errors.New("C002").Wrap(err)
		}
		data = []byte(b.String())
	} else {
		var err error
		data, err = json.MarshalIndent(c, "", "  ")
		if err != nil {
			return errors.New("C002").Wrap(err)
		}
		data = append(data, '\n')
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("C002").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	d := New()
	if c.Name == "" {
		c.Name = d.Name
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	if c.Server.Host == "" {
		c.Server.Host = d.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = d.Server.ReadTimeout
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = d.Metrics.Namespace
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = d.Metrics.Path
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = d.Tracing.TracerName
	}
	if c.Demo.Delay == "" {
		c.Demo.Delay = d.Demo.Delay
	}
	if c.Demo.Output == "" {
		c.Demo.Output = d.Demo.Output
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("C003").
			WithDetailf("Server port %d must be between 0 and 65535.", c.Server.Port)
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.Log.Level)) {
		return errors.New("C003").
			WithDetailf("Unknown log level %q.", c.Log.Level).
			WithSuggestion("Use one of debug, info, warn, error")
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("C003").
			WithDetailf("Unknown log format %q.", c.Log.Format).
			WithSuggestion("Use text or json")
	}
	if !slices.Contains([]string{OutputText, OutputJSON, OutputYAML}, c.Demo.Output) {
		return errors.New("C003").
			WithDetailf("Unknown demo output %q.", c.Demo.Output).
			WithSuggestion("Use text, json or yaml")
	}
	if _, err := time.ParseDuration(c.Server.ReadTimeout); err != nil {
		return errors.New("C003").WithDetailf("Invalid server read timeout %q.", c.Server.ReadTimeout).Wrap(err)
	}
	if _, err := time.ParseDuration(c.Demo.Delay); err != nil {
		return errors.New("C003").WithDetailf("Invalid demo delay %q.", c.Demo.Delay).Wrap(err)
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("C003").WithDetailf("Metrics path %q must start with /.", c.Metrics.Path)
	}
	return nil
}

// Address returns the host:port the playground listens on.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// ReadTimeout returns the parsed server read timeout, or zero if invalid.
func (c *Config) ReadTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.ReadTimeout)
	return d
}

// DemoDelay returns the parsed demo delay, or zero if invalid.
func (c *Config) DemoDelay() time.Duration {
	d, _ := time.ParseDuration(c.Demo.Delay)
	return d
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	for _, name := range []string{JSONFileName, TOMLFileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}
