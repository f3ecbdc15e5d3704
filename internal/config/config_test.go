package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"airename/internal/naming"
	"airename/internal/template"
)

func TestManager_ReadWrite_RoundTrip(t *testing.T) {
	original := DefaultConfig()
	original.Provider = ProviderOllama
	original.NamingConvention = naming.SnakeCase
	original.Template.Category = template.Document
	original.Template.PersonalName = "Alice"
	original.Template.DateFormat = template.DateISO
	original.LocalLLM.BaseURL = "http://localhost:11434"
	original.LocalLLM.Model = "llama3.1"

	var buf bytes.Buffer
	m := &Manager{}

	if err := m.Write(&buf, original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := m.Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got.Provider != ProviderOllama {
		t.Errorf("Provider = %q, want %q", got.Provider, ProviderOllama)
	}
	if got.NamingConvention != naming.SnakeCase {
		t.Errorf("NamingConvention = %q, want %q", got.NamingConvention, naming.SnakeCase)
	}
	if got.Template.Category != template.Document {
		t.Errorf("Template.Category = %q, want %q", got.Template.Category, template.Document)
	}
	if got.Template.PersonalName != "Alice" {
		t.Errorf("Template.PersonalName = %q, want Alice", got.Template.PersonalName)
	}
	if got.LocalLLM.Model != "llama3.1" {
		t.Errorf("LocalLLM.Model = %q, want llama3.1", got.LocalLLM.Model)
	}
}

func TestManager_Read_PartialFileKeepsDefaults(t *testing.T) {
	m := &Manager{}
	got, err := m.Read(strings.NewReader(`provider = "openai"`))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got.Provider != ProviderOpenAI {
		t.Errorf("Provider = %q, want openai", got.Provider)
	}
	if got.MaxFileSize != 10*1024*1024 {
		t.Errorf("MaxFileSize = %d, want default 10MB", got.MaxFileSize)
	}
	if got.NamingConvention != naming.KebabCase {
		t.Errorf("NamingConvention = %q, want default kebab-case", got.NamingConvention)
	}
}

func TestDryRunNeverPersisted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DryRun = true

	var buf bytes.Buffer
	if err := (&Manager{}).Write(&buf, cfg); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if strings.Contains(strings.ToLower(buf.String()), "dry") {
		t.Errorf("encoded config contains dry-run field:\n%s", buf.String())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"unknown provider", func(c *Config) { c.Provider = "skynet" }, "unsupported AI provider"},
		{"zero max size", func(c *Config) { c.MaxFileSize = 0 }, "max file size"},
		{"no extensions", func(c *Config) { c.SupportedExtensions = nil }, "no supported extensions"},
		{"extension without dot", func(c *Config) { c.SupportedExtensions = []string{"pdf"} }, "must start with a dot"},
		{"bad convention", func(c *Config) { c.NamingConvention = "loud" }, "unknown naming convention"},
		{"bad category", func(c *Config) { c.Template.Category = "podcast" }, "unknown category"},
		{"bad date format", func(c *Config) { c.Template.DateFormat = "DD/MM" }, "unknown date format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestRequiresAPIKey(t *testing.T) {
	tests := []struct {
		provider string
		want     bool
	}{
		{ProviderClaude, true},
		{ProviderOpenAI, true},
		{ProviderOllama, false},
		{ProviderLMStudio, false},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Provider = tt.provider
		if got := cfg.RequiresAPIKey(); got != tt.want {
			t.Errorf("RequiresAPIKey(%s) = %v, want %v", tt.provider, got, tt.want)
		}
	}
}

func TestReadFromFile_MissingFileReturnsDefaults(t *testing.T) {
	got, err := ReadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("ReadFromFile() error = %v", err)
	}
	if got.Provider != ProviderClaude {
		t.Errorf("Provider = %q, want default claude", got.Provider)
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "airename.toml")

	if err := Init(path, DefaultConfig()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// A second init must refuse to overwrite.
	if err := Init(path, DefaultConfig()); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Init() on existing file = %v, want already-exists error", err)
	}
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("AIRENAME_CONFIG_PATH", "/tmp/custom.toml")
	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if got != "/tmp/custom.toml" {
		t.Errorf("DefaultPath() = %q, want env override", got)
	}
}

func TestTemplateOptions_EmptyDateFormatDefaultsToNone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Template.DateFormat = ""
	opts := cfg.TemplateOptions()
	if opts.DateFormat != template.DateNone {
		t.Errorf("DateFormat = %q, want none", opts.DateFormat)
	}
}
