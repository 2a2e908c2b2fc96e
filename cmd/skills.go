package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fastify-skills/validate-rules/internal/config"
	"github.com/fastify-skills/validate-rules/internal/discovery"
	"github.com/fastify-skills/validate-rules/internal/registry"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the configured skills and their rule counts",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSkillsList(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}

func runSkillsList(out io.Writer) error {
	cfg, err := config.Load(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	for _, skill := range registry.DefaultSkills() {
		files, err := discovery.ListRuleFiles(filepath.Join(cfg.Root, skill.RulesDir))
		if err != nil {
			return fmt.Errorf("skill %q: %w", skill.Name, err)
		}
		fmt.Fprintf(out, "%s: %s (%d rules)\n", skill.Name, skill.Title, len(files))
		fmt.Fprintf(out, "    %s\n", skill.Description)
	}
	return nil
}
