// Package discovery lists candidate rule files inside a skill's rules
// directory.
package discovery

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// rulePattern matches markdown rule files while excluding names carrying the
// "_" ignore prefix (drafts, templates, shared snippets).
const rulePattern = "[!_]*.md"

// ListRuleFiles returns the rule filenames in dir, in directory-listing
// order. A directory that cannot be listed is an error for the caller to
// treat as fatal; there is no file set to fall back on.
func ListRuleFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing rules directory %q: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := doublestar.Match(rulePattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", entry.Name(), err)
		}
		if matched {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}
