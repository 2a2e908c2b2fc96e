// Package cmd wires the validate-rules CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fastify-skills/validate-rules/internal/config"
	"github.com/fastify-skills/validate-rules/internal/lint"
	"github.com/fastify-skills/validate-rules/internal/output"
	"github.com/fastify-skills/validate-rules/internal/registry"
)

var (
	rootPath     string
	quiet        bool
	verbose      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "validate-rules",
	Short: "Validate skill rule files against the structural convention",
	Long: `validate-rules checks every rule file in the configured skill directories
against the structural convention: frontmatter fields, a title heading, an
explanation paragraph, and at least one labeled incorrect/correct code example.

The process exits 0 when every rule file is valid and 1 otherwise.`,
	Run: func(cmd *cobra.Command, args []string) {
		passed, err := runValidate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !passed {
			os.Exit(1)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Repository root containing the skills/ directories")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output; the exit code carries the result")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Also print a line for every valid file")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json)")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
}

// runValidate runs the full validation and reports whether it passed.
func runValidate() (bool, error) {
	cfg, err := config.Load(rootPath)
	if err != nil {
		return false, fmt.Errorf("error loading configuration: %w", err)
	}

	runner, err := lint.NewRunner(cfg.Root)
	if err != nil {
		return false, err
	}

	summary, err := runner.Run(registry.DefaultSkills())
	if err != nil {
		return false, err
	}

	switch cfg.Format {
	case "json":
		if err := output.NewJSONFormatter(os.Stdout).Format(summary); err != nil {
			return false, fmt.Errorf("error formatting output: %w", err)
		}
	default:
		if err := output.NewConsoleFormatter(os.Stdout, cfg.Quiet, cfg.Verbose).Format(summary); err != nil {
			return false, fmt.Errorf("error formatting output: %w", err)
		}
	}

	return !summary.HasErrors(), nil
}
