package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shadow-js/create-shadow-app/internal/filesystem"
	"github.com/shadow-js/create-shadow-app/internal/git"
	"github.com/shadow-js/create-shadow-app/internal/manifest"
	"github.com/shadow-js/create-shadow-app/internal/models"
	"gopkg.in/yaml.v3"
)

// Environment variables read by the tool.
const (
	EnvConfigPath   = "CREATE_SHADOW_CONFIG"
	EnvTemplatesDir = "CREATE_SHADOW_TEMPLATES_DIR"
	EnvGitBackend   = "CREATE_SHADOW_GIT_BACKEND"
)

// ErrInvalidConfig wraps every parse or validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds user defaults. Pointers distinguish "unset" from false.
type Config struct {
	Language     string            `yaml:"language"`
	Template     string            `yaml:"template"`
	Router       *bool             `yaml:"router"`
	Tailwind     *bool             `yaml:"tailwind"`
	Git          *bool             `yaml:"git"`
	GitBackend   string            `yaml:"git_backend"`
	TemplatesDir string            `yaml:"templates_dir"`
	Packages     map[string]string `yaml:"packages"`

	// Path is the file the config was read from, empty when none was found.
	Path string `yaml:"-"`
}

// DefaultPath returns the config file used when neither the flag nor
// CREATE_SHADOW_CONFIG names one.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "create-shadow-app", "config.yaml")
}

// Load reads the config file and applies environment overrides. An
// explicit path (flag or CREATE_SHADOW_CONFIG) must exist; the default
// location is optional.
func Load(fsys filesystem.FileSystem, flagPath string) (*Config, error) {
	path, explicit := flagPath, flagPath != ""
	if !explicit {
		if env := os.Getenv(EnvConfigPath); env != "" {
			path, explicit = env, true
		}
	}
	if !explicit {
		path = DefaultPath()
	}

	cfg := &Config{}
	if path != "" {
		data, err := fsys.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist) && !explicit:
			// No config file
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := decode(data, cfg); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
			}
			cfg.Path = path
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv() {
	if dir := os.Getenv(EnvTemplatesDir); dir != "" {
		c.TemplatesDir = dir
	}
	if backend := os.Getenv(EnvGitBackend); backend != "" {
		c.GitBackend = backend
	}
}

// Validate checks the enum fields and package ranges.
func (c *Config) Validate() error {
	var errs []error

	if c.Language != "" {
		if _, err := models.ParseLanguage(c.Language); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Template != "" {
		if _, err := models.ParseTemplateID(c.Template); err != nil {
			errs = append(errs, err)
		}
	}
	if c.GitBackend != "" {
		if _, err := git.ParseBackend(c.GitBackend); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := c.Catalog(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Options returns the built-in defaults overlaid with the config values.
func (c *Config) Options() models.Options {
	opts := models.DefaultOptions()

	if lang, err := models.ParseLanguage(c.Language); err == nil {
		opts.Language = lang
	}
	if tmpl, err := models.ParseTemplateID(c.Template); err == nil {
		opts.Template = tmpl
	}
	if c.Router != nil {
		opts.UseRouter = *c.Router
	}
	if c.Tailwind != nil {
		opts.UseTailwind = *c.Tailwind
	}
	if c.Git != nil {
		opts.InitGit = *c.Git
	}
	return opts
}

// Backend returns the configured git backend, exec by default.
func (c *Config) Backend() git.Backend {
	if b, err := git.ParseBackend(c.GitBackend); err == nil {
		return b
	}
	return git.BackendExec
}

// Catalog returns the default package catalog with the configured overrides.
func (c *Config) Catalog() (manifest.Catalog, error) {
	if len(c.Packages) == 0 {
		return manifest.DefaultCatalog(), nil
	}
	return manifest.DefaultCatalog().WithOverrides(c.Packages)
}
