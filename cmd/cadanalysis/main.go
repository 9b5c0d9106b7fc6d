package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rehmanul/CAD-Analysis/internal/server"
	"github.com/rehmanul/CAD-Analysis/pkg/pipeline"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "cadanalysis",
		Short: "Floor-plan space analysis and placement optimization engine",
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cadanalysis",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func analyzeCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "analyze [project-path]",
		Short: "Run the full analysis pipeline and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts := pipeline.DefaultOptions()
			opts.Placement.Seed = seed
			return runAnalyze(args[0], opts)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for the placement search")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a floor plan without running the full pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract [project-path]",
		Short: "Extract usable areas and print them as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExtract(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port, pipeline.DefaultOptions(), newLogger())
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
