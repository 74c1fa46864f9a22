package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/NayanVR/tuono/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "tuono.json"

	// RoutesFolder is the conventional route source directory,
	// relative to the project root.
	RoutesFolder = "src/routes"

	// OutputFolder is the hidden staging directory for generated sources.
	OutputFolder = ".tuono"

	// RouteExtension is the extension of recognized route source files.
	RouteExtension = ".go"

	// DefaultPort is the default development server port.
	DefaultPort = 3000

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"
)

// Config represents the tuono.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Dev contains development server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// baseDir is the project root the config belongs to.
	baseDir string
}

// DevConfig contains development server settings.
type DevConfig struct {
	// Port is the port to run the dev server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// HotReload enables browser reload on re-bundling.
	HotReload bool `json:"hotReload,omitempty"`
}

// New creates a new Config with default values rooted at dir.
func New(dir string) *Config {
	return &Config{
		Version: "0.1.0",
		Dev: DevConfig{
			Port:      DefaultPort,
			Host:      DefaultHost,
			HotReload: true,
		},
		baseDir: dir,
	}
}

// Load reads configuration from the specified project directory.
// A missing tuono.json is not an error; defaults are returned.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return New(dir), nil
		}
		return nil, errors.New("E002").Wrap(err)
	}

	cfg := New(dir)
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E001").
			WithDetail("Failed to parse tuono.json: " + err.Error()).
			WithSuggestion("Check that tuono.json is valid JSON")
	}

	cfg.applyDefaults()
	return cfg, nil
}

// LoadFromWorkingDir reads configuration from the current directory.
func LoadFromWorkingDir() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, errors.Newf(errors.CategoryConfig, "cannot determine working directory: %v", err)
	}
	return Load(dir)
}

// Dir returns the project root directory.
func (c *Config) Dir() string {
	return c.baseDir
}

// RoutesPath returns the absolute path of the route source directory.
func (c *Config) RoutesPath() string {
	return filepath.Join(c.baseDir, filepath.FromSlash(RoutesFolder))
}

// OutputPath returns the absolute path of the .tuono staging directory.
func (c *Config) OutputPath() string {
	return filepath.Join(c.baseDir, OutputFolder)
}

// DevAddr returns the host:port the dev server binds to.
func (c *Config) DevAddr() string {
	return net.JoinHostPort(c.Dev.Host, strconv.Itoa(c.Dev.Port))
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
}
