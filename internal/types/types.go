// Package types provides shared types used across the validate-rules codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

import "fmt"

// ValidationError pairs a rule file with a human-readable message describing
// why the file failed validation. Errors are accumulated and reported, never
// retried.
type ValidationError struct {
	Skill   string // configured skill name, e.g. "fastify-core"
	File    string // rule filename relative to the skill's rules directory
	Message string
}

// Location returns the skill-qualified file identifier used in reports.
func (e ValidationError) Location() string {
	return fmt.Sprintf("%s/%s", e.Skill, e.File)
}
