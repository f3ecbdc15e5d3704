package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"airename/internal/app"
	"airename/internal/config"
	"airename/internal/naming"
	"airename/internal/provider"
	"airename/internal/renamer"
	"airename/internal/template"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.ReadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("provider") {
		cfg.Provider, _ = flags.GetString("provider")
	}
	if flags.Changed("api-key") {
		cfg.APIKey, _ = flags.GetString("api-key")
	}
	if flags.Changed("case") {
		v, _ := flags.GetString("case")
		cfg.NamingConvention = naming.Convention(v)
	}
	if flags.Changed("category") {
		v, _ := flags.GetString("category")
		cfg.Template.Category = template.Category(v)
	}
	if flags.Changed("personal-name") {
		cfg.Template.PersonalName, _ = flags.GetString("personal-name")
	}
	if flags.Changed("date-format") {
		v, _ := flags.GetString("date-format")
		cfg.Template.DateFormat = template.DateFormat(v)
	}
	if flags.Changed("max-size") {
		mb, _ := flags.GetInt64("max-size")
		cfg.MaxFileSize = mb * 1024 * 1024
	}
	if flags.Changed("base-url") {
		cfg.LocalLLM.BaseURL, _ = flags.GetString("base-url")
	}
	if flags.Changed("model") {
		cfg.LocalLLM.Model, _ = flags.GetString("model")
	}
	cfg.DryRun, _ = flags.GetBool("dry-run")

	return cfg, nil
}

// ensureAPIKey prompts for a key when the provider needs one and neither the
// config file nor --api-key supplied it.
func ensureAPIKey(cfg *config.Config) error {
	if !cfg.RequiresAPIKey() || cfg.APIKey != "" {
		return nil
	}
	key, err := promptAPIKey(cfg.Provider)
	if err != nil {
		return err
	}
	cfg.APIKey = key
	return nil
}

// promptAPIKey reads an API key from the terminal without echoing it.
func promptAPIKey(providerName string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("provider %q requires an API key: set api_key in the config file or pass --api-key", providerName)
	}

	fmt.Fprintf(os.Stderr, "Enter API key for %s: ", providerName)
	key, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading API key: %w", err)
	}
	if len(key) == 0 {
		return "", fmt.Errorf("no API key entered")
	}
	return string(key), nil
}

// confirm asks a y/N question on stdin.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

var rootCmd = &cobra.Command{
	Use:   "airename",
	Short: "AI-powered file renaming tool",
	Long:  "airename scans a directory, reads each document's content, and uses an AI provider to suggest and apply descriptive filenames.",
}

// rename command
var renameCmd = &cobra.Command{
	Use:   "rename DIRECTORY",
	Short: "Rename files in a directory based on their content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := ensureAPIKey(cfg); err != nil {
			return err
		}

		a, err := app.NewApp(cfg)
		if err != nil {
			return fmt.Errorf("initializing app: %w", err)
		}
		defer a.Close()

		files, err := a.ScanDirectory(args[0])
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println("No supported files found.")
			return nil
		}

		fmt.Printf("Found %d file(s):\n", len(files))
		for _, f := range files {
			fmt.Printf("  %s (%s)\n", f.Name, formatSize(f.Size))
		}
		fmt.Println()

		if cfg.DryRun {
			fmt.Println("Dry run: no files will be renamed.")
		} else if !confirm(fmt.Sprintf("Rename %d file(s) using %s?", len(files), a.ProviderName())) {
			fmt.Println("Aborted.")
			return nil
		}

		results := a.RenameFiles(cmd.Context(), files)
		printResults(results, cfg.DryRun)

		summary := renamer.Summarize(results)
		fmt.Printf("\n%d processed, %d succeeded, %d failed\n", summary.Total, summary.Succeeded, summary.Failed)
		if summary.Failed > 0 {
			return fmt.Errorf("%d file(s) failed", summary.Failed)
		}
		return nil
	},
}

func printResults(results []renamer.RenameResult, dryRun bool) {
	for _, r := range results {
		switch {
		case !r.Success:
			fmt.Printf("FAIL  %s: %s\n", baseName(r.OriginalPath), r.Error)
		case r.NewPath == r.OriginalPath:
			fmt.Printf("KEEP  %s (name already matches)\n", baseName(r.OriginalPath))
		case dryRun:
			fmt.Printf("PLAN  %s -> %s\n", baseName(r.OriginalPath), r.SuggestedName)
		default:
			fmt.Printf("OK    %s -> %s\n", baseName(r.OriginalPath), r.SuggestedName)
		}
	}
}

func baseName(path string) string {
	if i := strings.LastIndexByte(path, os.PathSeparator); i >= 0 {
		return path[i+1:]
	}
	return path
}

func formatSize(size int64) string {
	switch {
	case size >= 1024*1024:
		return fmt.Sprintf("%.1fMB", float64(size)/(1024*1024))
	case size >= 1024:
		return fmt.Sprintf("%.1fKB", float64(size)/1024)
	default:
		return fmt.Sprintf("%dB", size)
	}
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}

		cfg := config.DefaultConfig()
		if err := config.Init(path, cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", path)
		fmt.Printf("Provider: %s\n", cfg.Provider)
		fmt.Printf("Naming convention: %s\n", cfg.NamingConvention)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}

		cfg, err := config.ReadFromFile(path)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", path)
		fmt.Printf("Provider:           %s\n", cfg.Provider)
		fmt.Printf("Naming convention:  %s\n", cfg.NamingConvention)
		fmt.Printf("Category:           %s\n", cfg.Template.Category)
		fmt.Printf("Date format:        %s\n", cfg.Template.DateFormat)
		fmt.Printf("Max file size:      %dMB\n", cfg.MaxFileSize/(1024*1024))
		fmt.Printf("Extensions:         %s\n", strings.Join(cfg.SupportedExtensions, " "))
		fmt.Printf("Log dir:            %s\n", cfg.LogDir)
		if cfg.LocalLLM.BaseURL != "" || cfg.LocalLLM.Model != "" {
			fmt.Printf("Local LLM:          %s (%s)\n", cfg.LocalLLM.BaseURL, cfg.LocalLLM.Model)
		}
		return nil
	},
}

// models command
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available on a local provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		models, err := provider.ListModels(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		if len(models) == 0 {
			fmt.Println("No models available.")
			return nil
		}
		for _, m := range models {
			fmt.Println(m)
		}
		return nil
	},
}

// conventions command
var conventionsCmd = &cobra.Command{
	Use:   "conventions",
	Short: "List naming conventions and categories",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Naming conventions:")
		for _, c := range naming.Conventions() {
			fmt.Printf("  %s\n", c)
		}
		fmt.Println("\nCategories:")
		for _, c := range template.Categories() {
			tpl, _ := template.Lookup(c)
			fmt.Printf("  %-10s %s\n", c, tpl.Pattern)
		}
		fmt.Printf("  %-10s detect the category from file type and folder\n", template.Auto)
	},
}

func addProviderFlags(cmd *cobra.Command) {
	cmd.Flags().String("provider", "", "AI provider (claude, openai, ollama, lmstudio)")
	cmd.Flags().String("api-key", "", "API key for cloud providers")
	cmd.Flags().String("base-url", "", "Base URL for local providers")
	cmd.Flags().String("model", "", "Model name for local providers")
	cmd.Flags().Bool("dry-run", false, "Show what would be renamed without renaming")
}

func init() {
	addProviderFlags(renameCmd)
	renameCmd.Flags().String("case", "", "Naming convention (kebab-case, snake_case, camelCase, PascalCase, lowercase, UPPERCASE)")
	renameCmd.Flags().String("category", "", "File category template (document, movie, music, series, photo, book, general, auto)")
	renameCmd.Flags().String("personal-name", "", "Name substituted for {personalName} in templates")
	renameCmd.Flags().String("date-format", "", "Date format for {date} (YYYY-MM-DD, YYYY, YYYYMMDD, none)")
	renameCmd.Flags().Int64("max-size", 0, "Maximum file size in MB")

	addProviderFlags(modelsCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(conventionsCmd)
}
