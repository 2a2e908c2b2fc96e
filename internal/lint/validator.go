// Package lint decides whether parsed rules satisfy the mandatory shape and
// aggregates results across all configured skills into a single pass/fail
// outcome.
package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fastify-skills/validate-rules/internal/cue"
	"github.com/fastify-skills/validate-rules/internal/discovery"
	"github.com/fastify-skills/validate-rules/internal/frontend"
	"github.com/fastify-skills/validate-rules/internal/registry"
	"github.com/fastify-skills/validate-rules/internal/rule"
	"github.com/fastify-skills/validate-rules/internal/types"
)

// Label keyword lists for recognizing example sections. The matching is a
// loose case-insensitive substring check on purpose: documentation labels
// vary in wording ("Incorrect", "Bad (common mistake)", "Correct usage").
var (
	incorrectKeywords = []string{"incorrect", "wrong", "bad"}
	correctKeywords   = []string{"correct", "good", "usage", "implementation", "example"}
)

// FileResult holds the outcome of validating a single rule file.
type FileResult struct {
	Skill  string
	File   string
	Errors []types.ValidationError
}

// Valid reports whether the file passed every check.
func (r FileResult) Valid() bool {
	return len(r.Errors) == 0
}

// SkillResult groups file results under their configured skill.
type SkillResult struct {
	Config  registry.SkillConfig
	Results []FileResult
}

// Summary aggregates one validation run.
type Summary struct {
	Skills []SkillResult
}

// TotalFiles counts the rule files examined.
func (s *Summary) TotalFiles() int {
	n := 0
	for _, sr := range s.Skills {
		n += len(sr.Results)
	}
	return n
}

// ValidFiles counts the files that passed every check.
func (s *Summary) ValidFiles() int {
	n := 0
	for _, sr := range s.Skills {
		for _, r := range sr.Results {
			if r.Valid() {
				n++
			}
		}
	}
	return n
}

// Errors returns every collected error in validation order.
func (s *Summary) Errors() []types.ValidationError {
	var errs []types.ValidationError
	for _, sr := range s.Skills {
		for _, r := range sr.Results {
			errs = append(errs, r.Errors...)
		}
	}
	return errs
}

// HasErrors reports whether any file failed.
func (s *Summary) HasErrors() bool {
	for _, sr := range s.Skills {
		for _, r := range sr.Results {
			if !r.Valid() {
				return true
			}
		}
	}
	return false
}

// Runner validates every configured skill under a repository root.
type Runner struct {
	root   string
	schema *cue.Validator
}

// NewRunner creates a Runner rooted at the given directory.
func NewRunner(root string) (*Runner, error) {
	schema, err := cue.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("initializing frontmatter schema: %w", err)
	}
	return &Runner{root: root, schema: schema}, nil
}

// Run validates the given skills in configured order. Files are independent
// units of work: a file that cannot be read or parsed contributes one
// ValidationError and the scan continues. A rules directory that cannot be
// listed is fatal since that skill's file set is entirely unknown.
func (r *Runner) Run(skills []registry.SkillConfig) (*Summary, error) {
	summary := &Summary{}
	for _, skill := range skills {
		dir := filepath.Join(r.root, skill.RulesDir)
		files, err := discovery.ListRuleFiles(dir)
		if err != nil {
			return nil, fmt.Errorf("skill %q: %w", skill.Name, err)
		}

		sr := SkillResult{Config: skill}
		for _, name := range files {
			sr.Results = append(sr.Results, r.validateFile(skill, dir, name))
		}
		summary.Skills = append(summary.Skills, sr)
	}
	return summary, nil
}

// validateFile reads, parses, and checks one rule file. Failures become
// ValidationErrors rather than terminating the run.
func (r *Runner) validateFile(skill registry.SkillConfig, dir, name string) FileResult {
	result := FileResult{Skill: skill.Name, File: name}

	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		result.Errors = append(result.Errors, types.ValidationError{
			Skill:   skill.Name,
			File:    name,
			Message: fmt.Sprintf("Failed to read rule file: %v", err),
		})
		return result
	}

	parsed := rule.Parse(string(content))
	result.Errors = append(result.Errors, CheckRule(skill.Name, name, parsed)...)

	fm := frontend.Parse(string(content))
	result.Errors = append(result.Errors, r.schema.ValidateFrontmatter(skill.Name, name, fm.Fields)...)

	return result
}

// CheckRule applies the structural checks to a parsed rule. Checks accumulate
// rather than short-circuit so one file can report several distinct problems.
func CheckRule(skill, file string, r *rule.Rule) []types.ValidationError {
	var errs []types.ValidationError
	add := func(msg string) {
		errs = append(errs, types.ValidationError{Skill: skill, File: file, Message: msg})
	}

	if strings.TrimSpace(r.Title) == "" {
		add("Missing or empty title")
	}
	if strings.TrimSpace(r.Explanation) == "" {
		add("Missing or empty explanation")
	}

	switch {
	case len(r.Examples) == 0:
		add("Missing examples: expected at least one labeled code example")
	case !anyExampleHasCode(r.Examples):
		add("Missing code examples: labeled sections carry no fenced code")
	case !hasLabeledCode(r.Examples, incorrectKeywords) && !hasLabeledCode(r.Examples, correctKeywords):
		add("Code examples exist but none is labeled as an incorrect or correct example")
	}

	if _, ok := rule.ParseImpactLevel(r.Impact); !ok {
		add(fmt.Sprintf("Invalid impact %q. Valid levels: %s", r.Impact, impactLevelList()))
	}

	return errs
}

func anyExampleHasCode(examples []rule.CodeExample) bool {
	for _, ex := range examples {
		if ex.HasCode() {
			return true
		}
	}
	return false
}

// hasLabeledCode reports whether any example with code carries a label
// containing one of the keywords, case-insensitively.
func hasLabeledCode(examples []rule.CodeExample, keywords []string) bool {
	for _, ex := range examples {
		if !ex.HasCode() {
			continue
		}
		label := strings.ToLower(ex.Label)
		for _, kw := range keywords {
			if strings.Contains(label, kw) {
				return true
			}
		}
	}
	return false
}

func impactLevelList() string {
	levels := rule.AllImpactLevels()
	parts := make([]string, len(levels))
	for i, lvl := range levels {
		parts[i] = lvl.String()
	}
	return strings.Join(parts, ", ")
}
