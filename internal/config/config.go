// Package config holds the run configuration: defaults from a TOML file,
// overridden by CLI flags, read-only once the run starts.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"airename/internal/naming"
	"airename/internal/template"
)

// Provider names accepted by the factory.
const (
	ProviderClaude   = "claude"
	ProviderOpenAI   = "openai"
	ProviderOllama   = "ollama"
	ProviderLMStudio = "lmstudio"
)

// Config represents the main configuration for airename.
type Config struct {
	Provider            string            `toml:"provider"`
	APIKey              string            `toml:"api_key,omitempty"`
	MaxFileSize         int64             `toml:"max_file_size"` // bytes
	SupportedExtensions []string          `toml:"supported_extensions"`
	NamingConvention    naming.Convention `toml:"naming_convention"`
	LogDir              string            `toml:"log_dir"`

	Template TemplateConfig `toml:"template"`
	LocalLLM LocalLLMConfig `toml:"local_llm"`

	// DryRun is per-invocation, never persisted.
	DryRun bool `toml:"-"`
}

// TemplateConfig configures how templates are applied.
type TemplateConfig struct {
	Category     template.Category   `toml:"category"`
	PersonalName string              `toml:"personal_name,omitempty"`
	DateFormat   template.DateFormat `toml:"date_format"`
}

// LocalLLMConfig holds settings for local providers (ollama, lmstudio).
type LocalLLMConfig struct {
	BaseURL string `toml:"base_url,omitempty"`
	Model   string `toml:"model,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderClaude,
		MaxFileSize: 10 * 1024 * 1024,
		SupportedExtensions: []string{
			".pdf", ".docx", ".doc", ".xlsx", ".xls",
			".txt", ".md", ".rtf",
			".jpg", ".jpeg", ".png",
		},
		NamingConvention: naming.KebabCase,
		LogDir:           defaultLogDir(),
		Template: TemplateConfig{
			Category:   template.Auto,
			DateFormat: template.DateNone,
		},
	}
}

// Validate checks that all enumerated fields hold known values.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderClaude, ProviderOpenAI, ProviderOllama, ProviderLMStudio:
	default:
		return fmt.Errorf("unsupported AI provider: %q", c.Provider)
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("max file size must be positive, got %d", c.MaxFileSize)
	}
	if len(c.SupportedExtensions) == 0 {
		return fmt.Errorf("no supported extensions configured")
	}
	for _, ext := range c.SupportedExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension must start with a dot: %q", ext)
		}
	}
	if err := c.NamingConvention.Validate(); err != nil {
		return err
	}
	if err := c.Template.Category.Validate(); err != nil {
		return err
	}
	if c.Template.DateFormat != "" {
		if err := c.Template.DateFormat.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// RequiresAPIKey reports whether the configured provider is a key-based
// cloud service.
func (c *Config) RequiresAPIKey() bool {
	return c.Provider == ProviderClaude || c.Provider == ProviderOpenAI
}

// TemplateOptions maps the template section into the engine's option type.
func (c *Config) TemplateOptions() template.Options {
	df := c.Template.DateFormat
	if df == "" {
		df = template.DateNone
	}
	return template.Options{
		Category:     c.Template.Category,
		PersonalName: c.Template.PersonalName,
		DateFormat:   df,
	}
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader, on top of the defaults.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path. A missing file
// is not an error: the defaults are returned unchanged.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// Init initializes a new config file at the specified path.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}

// DefaultPath returns the config file path, checking AIRENAME_CONFIG_PATH
// first, then falling back to ~/.config/airename.toml.
func DefaultPath() (string, error) {
	if path := os.Getenv("AIRENAME_CONFIG_PATH"); path != "" {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "airename.toml"), nil
}

func defaultLogDir() string {
	if dir := os.Getenv("AIRENAME_HOME"); dir != "" {
		return filepath.Join(dir, "log")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "log"
	}
	return filepath.Join(homeDir, ".local", "share", "airename", "log")
}
