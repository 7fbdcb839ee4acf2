package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/config"
)

var (
	configPath string
	jsonOutput bool
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "ada <command>",
	Short:         "Analysis pipelines for institutional program and LMS exports",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelInfo
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML file overriding the built-in lookup tables")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print the artifact list as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log per-file ingestion detail")

	rootCmd.AddGroup(
		&cobra.Group{ID: "pathways", Title: "Program pathways:"},
		&cobra.Group{ID: "curriculum", Title: "Curriculum analysis:"},
	)
	cobra.EnableCommandSorting = false

	rootCmd.AddCommand(pathwaysCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(correlateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
