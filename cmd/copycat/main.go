package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"copycat/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	seed       int64

	// Logger
	logger *zap.Logger

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "copycat",
	Short: "copycat - letter-string analogy engine",
	Long: `copycat solves letter-string analogy puzzles of the form
abc : abd :: ijk : ?

It builds structures (bonds, groups, correspondences, a rule) over the
puzzle strings while a network of concepts decides which relations are
currently worth noticing. Runs are stochastic: the same puzzle yields a
distribution of answers, not a single one.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("seed") {
			cfg.Run.Seed = seed
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "copycat.yaml", "path to config file")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "random seed (trials use seed, seed+1, ...)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(ticksCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(mappingsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
