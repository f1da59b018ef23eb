package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/drishti-labs/drishti-cli/internal/adapters/driven/ai"
	"github.com/drishti-labs/drishti-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the AI providers, corpus location and other
options.

Use subcommands to configure specific settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsEmbeddingCmd = &cobra.Command{
	Use:   "embedding",
	Short: "Configure the embedding provider",
	Long:  `Configure the provider used to embed verses and queries.`,
	RunE:  runSettingsEmbedding,
}

var settingsLLMCmd = &cobra.Command{
	Use:   "llm",
	Short: "Configure the generation provider",
	Long:  `Configure the provider used to generate guidance text.`,
	RunE:  runSettingsLLM,
}

var settingsCorpusCmd = &cobra.Command{
	Use:   "corpus [path]",
	Short: "Set the corpus CSV location",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsCorpus,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsEmbeddingCmd)
	settingsCmd.AddCommand(settingsLLMCmd)
	settingsCmd.AddCommand(settingsCorpusCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Corpus]")
	cmd.Printf("  Path: %s\n", appSettings.CorpusPath)
	cmd.Println()

	cmd.Println("[Embedding]")
	printProviderSettings(cmd, appSettings.Embedding.Provider, appSettings.Embedding.Model,
		appSettings.Embedding.BaseURL, appSettings.Embedding.APIKey, appSettings.Embedding.IsConfigured())
	cmd.Println()

	cmd.Println("[LLM]")
	printProviderSettings(cmd, appSettings.LLM.Provider, appSettings.LLM.Model,
		appSettings.LLM.BaseURL, appSettings.LLM.APIKey, appSettings.LLM.IsConfigured())
	cmd.Printf("  Temperature: %.1f\n", appSettings.LLM.Temperature)
	cmd.Println()

	if !appSettings.Embedding.IsConfigured() || !appSettings.LLM.IsConfigured() {
		cmd.Println("Run 'drishti settings embedding' or 'drishti settings llm' to finish setup.")
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func printProviderSettings(cmd *cobra.Command, provider domain.AIProvider, model, baseURL, apiKey string, configured bool) {
	cmd.Printf("  Provider: %s\n", provider.Description())
	cmd.Printf("  Model: %s\n", model)
	if provider.IsLocal() && baseURL != "" {
		cmd.Printf("  Base URL: %s\n", baseURL)
	}
	if provider.RequiresAPIKey() {
		if apiKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(apiKey))
		} else {
			cmd.Printf("  API Key: (not set, export GEMINI_API_KEY or configure here)\n")
		}
	}
	status := "configured"
	if !configured {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
}

//nolint:dupl // Similar to runSettingsLLM but for embeddings - intentional for CLI flow clarity
func runSettingsEmbedding(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	reader := bufio.NewReader(os.Stdin)
	provider, model, apiKey, err := promptProvider(cmd, reader, appSettings.Embedding.Model)
	if err != nil {
		return err
	}

	settings := domain.EmbeddingSettings{
		Provider: provider,
		Model:    model,
		BaseURL:  appSettings.Embedding.BaseURL,
		APIKey:   apiKey,
	}

	cmd.Print("Validating configuration... ")
	svc, err := ai.CreateAndValidateEmbeddingService(&settings)
	if err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("embedding configuration validation failed: %w", err)
	}
	if svc != nil {
		_ = svc.Close()
	}
	cmd.Println("OK")

	if err := persistProvider(keyEmbeddingProvider, keyEmbeddingModel, provider, model, apiKey); err != nil {
		return err
	}
	appSettings.Embedding = settings

	cmd.Printf("Embedding provider configured: %s (%s)\n", provider.Description(), model)
	return nil
}

//nolint:dupl // Similar to runSettingsEmbedding but for LLM - intentional for CLI flow clarity
func runSettingsLLM(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	reader := bufio.NewReader(os.Stdin)
	provider, model, apiKey, err := promptProvider(cmd, reader, appSettings.LLM.Model)
	if err != nil {
		return err
	}

	settings := domain.LLMSettings{
		Provider:    provider,
		Model:       model,
		BaseURL:     appSettings.LLM.BaseURL,
		APIKey:      apiKey,
		Temperature: appSettings.LLM.Temperature,
	}

	cmd.Print("Validating configuration... ")
	svc, err := ai.CreateAndValidateLLMService(&settings)
	if err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("LLM configuration validation failed: %w", err)
	}
	if svc != nil {
		_ = svc.Close()
	}
	cmd.Println("OK")

	if err := persistProvider(keyLLMProvider, keyLLMModel, provider, model, apiKey); err != nil {
		return err
	}
	appSettings.LLM = settings

	cmd.Printf("LLM provider configured: %s (%s)\n", provider.Description(), model)
	return nil
}

func runSettingsCorpus(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("corpus file not accessible: %w", err)
	}

	if err := configStore.Set(keyCorpusPath, path); err != nil {
		return fmt.Errorf("saving corpus path: %w", err)
	}
	appSettings.CorpusPath = path

	cmd.Printf("Corpus path set to %s\n", path)
	return nil
}

// promptProvider walks the user through provider, model and API key
// selection.
func promptProvider(cmd *cobra.Command, reader *bufio.Reader, defaultModel string) (domain.AIProvider, string, string, error) {
	providers := []domain.AIProvider{domain.AIProviderGemini, domain.AIProviderOllama}

	cmd.Println("Select Provider")
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	idx := parseChoice(readLine(reader), len(providers), 1)
	provider := providers[idx-1]

	cmd.Printf("Enter model name [%s]: ", defaultModel)
	model := readLine(reader)
	if model == "" {
		model = defaultModel
	}

	var apiKey string
	if provider.RequiresAPIKey() {
		cmd.Print("Enter API key (blank keeps GEMINI_API_KEY): ")
		apiKey = readPassword()
		cmd.Println()
		if apiKey == "" {
			apiKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
		}
		if apiKey == "" {
			return "", "", "", errors.New("API key is required for this provider")
		}
	}

	return provider, model, apiKey, nil
}

// persistProvider writes the chosen provider configuration to the config
// store. The API key is only persisted when it was entered explicitly,
// never when it came from the environment.
func persistProvider(providerKey, modelKey string, provider domain.AIProvider, model, apiKey string) error {
	if err := configStore.Set(providerKey, provider.String()); err != nil {
		return fmt.Errorf("saving provider: %w", err)
	}
	if err := configStore.Set(modelKey, model); err != nil {
		return fmt.Errorf("saving model: %w", err)
	}
	if apiKey != "" && apiKey != strings.TrimSpace(os.Getenv("GEMINI_API_KEY")) {
		if err := configStore.Set(keyAPIKey, apiKey); err != nil {
			return fmt.Errorf("saving API key: %w", err)
		}
	}
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
