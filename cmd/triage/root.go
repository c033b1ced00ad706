package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/estateops/triage/internal/bootstrap"
	"github.com/estateops/triage/internal/config"
	"github.com/estateops/triage/internal/core/usecase"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "triage",
	Short: "Classify and validate estate documents from the command line",
	Long: `triage runs the estate document pipeline locally: it assigns each
document a taxonomy category and validates it against the category's
compliance rules, without needing the api server or a database.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func newPipeline() (*usecase.TriageUseCase, error) {
	return bootstrap.NewTriageCore(config.Load())
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
