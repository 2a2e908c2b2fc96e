// Package output renders validation summaries for the console and as JSON.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/fastify-skills/validate-rules/internal/lint"
)

// ConsoleFormatter formats a validation summary for terminal display.
type ConsoleFormatter struct {
	out     io.Writer
	quiet   bool
	verbose bool
}

// NewConsoleFormatter creates a new ConsoleFormatter writing to out.
func NewConsoleFormatter(out io.Writer, quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{out: out, quiet: quiet, verbose: verbose}
}

// Format prints a per-skill heading, one line per failure (and per valid file
// in verbose mode), then the run summary. Quiet mode prints nothing; the exit
// code carries the outcome.
func (f *ConsoleFormatter) Format(summary *lint.Summary) error {
	if f.quiet {
		return nil
	}

	headingStyle := lipgloss.NewStyle().Bold(true)
	greenStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	redStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	for _, sr := range summary.Skills {
		heading := fmt.Sprintf("Validating %s (%d files)...", sr.Config.Name, len(sr.Results))
		fmt.Fprintln(f.out, headingStyle.Render(heading))

		for _, res := range sr.Results {
			if res.Valid() {
				if f.verbose {
					fmt.Fprintf(f.out, "  %s %s\n", greenStyle.Render("✓"), res.File)
				}
				continue
			}
			for _, e := range res.Errors {
				fmt.Fprintf(f.out, "  %s %s: %s\n", redStyle.Render("✗"), e.Location(), e.Message)
			}
		}
	}

	fmt.Fprintln(f.out)
	if summary.HasErrors() {
		line := fmt.Sprintf("✗ %d validation error(s) across %d rule file(s)",
			len(summary.Errors()), summary.TotalFiles())
		fmt.Fprintln(f.out, redStyle.Render(line))
	} else {
		line := fmt.Sprintf("✓ All %d rule files valid", summary.TotalFiles())
		fmt.Fprintln(f.out, greenStyle.Render(line))
	}
	return nil
}
