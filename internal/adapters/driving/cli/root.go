package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/drishti-labs/drishti-cli/internal/adapters/driven/ai"
	configfile "github.com/drishti-labs/drishti-cli/internal/adapters/driven/config/file"
	"github.com/drishti-labs/drishti-cli/internal/adapters/driven/corpus/csv"
	journeyfile "github.com/drishti-labs/drishti-cli/internal/adapters/driven/journey/file"
	"github.com/drishti-labs/drishti-cli/internal/adapters/driven/storage/memory"
	"github.com/drishti-labs/drishti-cli/internal/adapters/driven/storage/sqlite"
	"github.com/drishti-labs/drishti-cli/internal/core/domain"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driven"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driving"
	"github.com/drishti-labs/drishti-cli/internal/core/services"
	"github.com/drishti-labs/drishti-cli/internal/logger"
)

// version is set by Execute from the build entry point.
var version = "dev"

// Wired services, populated by initServices before any command runs.
// Tests replace these with mocks.
var (
	askService       driving.AskService
	ingestService    driving.IngestService
	browseService    driving.BrowseService
	verseStore       driven.VerseStore
	journeyStore     driven.JourneyStore
	embeddingService driven.EmbeddingService
	llmService       driven.LLMService
	configStore      *configfile.ConfigStore
	appSettings      domain.AppSettings
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "drishti",
	Short: "Bhagavad Gita guidance from your terminal",
	Long: `Drishti is a retrieval-augmented guide to the Bhagavad Gita.

Ask questions about life, duty and purpose and receive guidance grounded
in the actual verses, cited by chapter and verse. Responses can take a
spiritual, scholarly, modern or devotional tone, in English, Hindi or
Sanskrit.

Start with 'drishti ingest' to build the verse index, then 'drishti ask'.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
}

// Execute wires the application and runs the root command.
func Execute(v string) error {
	version = v

	if err := initServices(); err != nil {
		reportInitError(err)
		return err
	}
	defer closeServices()

	return rootCmd.Execute()
}

// reportInitError prints a wiring failure in cobra's error format.
// Cobra only reports errors from the command run itself, so failures
// before Execute reaches the command would otherwise exit silently.
func reportInitError(err error) {
	fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
}

// initServices builds the adapter stack and core services.
// AI providers that are not configured wire as nil; the core degrades
// gracefully and the settings command explains how to fix them.
func initServices() error {
	// Best effort: a missing .env file is the normal case.
	_ = godotenv.Load()

	var err error
	configStore, err = configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	appSettings = loadSettings(configStore)

	embeddingService, err = ai.CreateEmbeddingService(&appSettings.Embedding)
	if err != nil {
		logger.Warn("Embedding service unavailable: %v", err)
		embeddingService = nil
	}
	llmService, err = ai.CreateLLMService(&appSettings.LLM)
	if err != nil {
		logger.Warn("LLM service unavailable: %v", err)
		llmService = nil
	}

	verseStore = openVerseStore(appSettings.DataDir, embeddingService)

	journeyStore, err = journeyfile.NewStore("")
	if err != nil {
		logger.Warn("Journey store unavailable: %v", err)
		journeyStore = nil
	}

	promptStore, err := configfile.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("opening prompt store: %w", err)
	}

	corpus := services.NewCorpusService(csv.NewSource(appSettings.CorpusPath))
	classifier := services.NewClassifier()
	guidance := services.NewGuidanceService(classifier, verseStore, llmService, promptStore, driven.GenerateOptions{
		Temperature: appSettings.LLM.Temperature,
	})

	askService = services.NewAskService(guidance)
	ingestService = services.NewIngestService(corpus, verseStore)
	browseService = services.NewBrowseService(corpus)

	return nil
}

// openVerseStore prefers the persistent SQLite store and falls back to
// the in-memory store when local storage cannot be opened. Both satisfy
// the same contract, so the rest of the stack does not care which one
// is active.
func openVerseStore(dataDir string, embedder driven.EmbeddingService) driven.VerseStore {
	store, err := sqlite.NewStore(dataDir, embedder)
	if err != nil {
		logger.Warn("Persistent store unavailable, using in-memory store: %v", err)
		return memory.NewVerseStore(embedder)
	}

	if err := store.Initialize(context.Background()); err != nil {
		logger.Warn("Persistent store init failed, using in-memory store: %v", err)
		_ = store.Close()
		return memory.NewVerseStore(embedder)
	}

	return store
}

func closeServices() {
	if verseStore != nil {
		_ = verseStore.Close()
	}
	if embeddingService != nil {
		_ = embeddingService.Close()
	}
	if llmService != nil {
		_ = llmService.Close()
	}
}

// Config store keys.
const (
	keyCorpusPath        = "corpus.path"
	keyDataDir           = "data.dir"
	keyEmbeddingProvider = "embedding.provider"
	keyEmbeddingModel    = "embedding.model"
	keyEmbeddingBaseURL  = "embedding.base_url"
	keyLLMProvider       = "llm.provider"
	keyLLMModel          = "llm.model"
	keyLLMBaseURL        = "llm.base_url"
	keyLLMTemperature    = "llm.temperature"
	keyAPIKey            = "ai.api_key"
)

// loadSettings overlays persisted configuration on the defaults.
// The GEMINI_API_KEY environment variable takes precedence over the
// stored key so shell exports and .env files keep working.
func loadSettings(cfg *configfile.ConfigStore) domain.AppSettings {
	s := domain.DefaultAppSettings()

	if v := cfg.GetString(keyCorpusPath); v != "" {
		s.CorpusPath = v
	}
	if v := cfg.GetString(keyDataDir); v != "" {
		s.DataDir = v
	}
	if v := cfg.GetString(keyEmbeddingProvider); v != "" {
		s.Embedding.Provider = domain.AIProvider(v)
	}
	if v := cfg.GetString(keyEmbeddingModel); v != "" {
		s.Embedding.Model = v
	}
	if v := cfg.GetString(keyEmbeddingBaseURL); v != "" {
		s.Embedding.BaseURL = v
	}
	if v := cfg.GetString(keyLLMProvider); v != "" {
		s.LLM.Provider = domain.AIProvider(v)
	}
	if v := cfg.GetString(keyLLMModel); v != "" {
		s.LLM.Model = v
	}
	if v := cfg.GetString(keyLLMBaseURL); v != "" {
		s.LLM.BaseURL = v
	}
	if v := cfg.GetFloat(keyLLMTemperature); v != 0 {
		s.LLM.Temperature = v
	}

	apiKey := cfg.GetString(keyAPIKey)
	if env := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); env != "" {
		apiKey = env
	}
	s.Embedding.APIKey = apiKey
	s.LLM.APIKey = apiKey

	return s
}
