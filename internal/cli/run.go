package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"suggestbox/internal/cache"
	"suggestbox/internal/category"
	"suggestbox/internal/enrich"
	"suggestbox/internal/lang"
	"suggestbox/internal/llm"
	"suggestbox/internal/sentiment"
	"suggestbox/internal/store"
)

var (
	storageDir  string
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive suggestion box",
	Long: `Run starts the menu-driven suggestion box:
- Submit anonymous suggestions (translated, scored, categorized)
- Submit anonymous questions and answer existing ones
- Browse suggestions by category with per-entry sentiment
- Admin mode (password protected) for summaries and data deletion

Example:
  suggestbox run
  suggestbox run --storage-dir /tmp/feedback
  suggestbox run --llm --llm-provider openai --llm-model gpt-4o-mini`,
	Args: cobra.NoArgs,
	RunE: runBox,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&storageDir, "storage-dir", "", "override storage directory for the durable logs")

	// LLM flags
	runCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM translation and sentiment scoring")
	runCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	runCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runBox(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if storageDir != "" {
		cfg.Storage.Dir = storageDir
	}

	// Configure LLM if enabled
	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		if llmModel != "" {
			cfg.LLM.Model = llmModel
		}
	}
	switch cfg.LLM.Provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return fmt.Errorf("init LLM provider: %w", err)
	}

	var memo cache.Cache
	if cfg.Cache.Enabled {
		memo = cache.NewMemory(cfg.Cache.TTL, 10*time.Minute)
	}

	// The LLM scorer is only worth its latency when a provider is up;
	// the lexicon scorer is the local default.
	var scorer sentiment.Scorer = sentiment.NewLexiconScorer()
	if provider != nil {
		scorer = sentiment.NewProviderScorer(provider)
	}

	classifier := category.NewClassifier(category.DefaultRules())
	pipeline := enrich.NewPipeline(
		lang.New(cfg.Language, provider, memo, cfg.Cache.TTL, logger),
		sentiment.NewClassifier(scorer, logger),
		classifier,
	)

	s := store.New(cfg.Storage.Dir, pipeline, classifier, logger)
	if err := s.Restore(); err != nil {
		return fmt.Errorf("restore feedback store: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Storage: %s\n", cfg.Storage.Dir)
		if provider != nil {
			fmt.Fprintf(os.Stderr, "LLM provider: %s\n", provider.Name())
		}
		fmt.Fprintln(os.Stderr)
	}

	m := newMenu(s, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	m.run(cmd.Context())

	return nil
}

// newLogger builds the CLI logger: warnings only by default, debug
// detail with --verbose, always to stderr so menu output stays clean.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}
