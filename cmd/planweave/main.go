package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"planweave/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	modelFlag  string
	outputDir  string
	timeout    time.Duration

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "planweave",
	Short: "planweave - multi-agent planning workflows",
	Long: `planweave runs fixed multi-agent planning workflows against a
chat-completion API. Each workflow is a sequence of persona phases;
every phase sees the full output of all previous phases, and the
complete transcript is written to a uniquely named result file.

Scenarios:
  conference    Plan a 3-day conference agenda
  marketing     Design a marketing strategy for a product
  research      Create a research paper outline
  architecture  Plan a software architecture

Run 'planweave run' without arguments for an interactive menu.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// loadConfig resolves and validates the configuration, applying flag
// overrides. Validation happens here, before any phase can run.
func loadConfig() (*config.Config, string, error) {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, err
	}

	if modelFlag != "" {
		cfg.LLM.Model = modelFlag
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if timeout > 0 {
		cfg.LLM.Timeout = timeout.String()
	}

	return cfg, path, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./planweave.yaml)")
	rootCmd.PersistentFlags().StringVar(&modelFlag, "model", "", "Override the configured model")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "Override the transcript output directory")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Per-request completion timeout (default: config value)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
