// Package cue validates rule frontmatter against an embedded CUE schema.
// The schema catches unknown keys and non-string values before the
// structural checks run.
package cue

import (
	"embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/fastify-skills/validate-rules/internal/types"
)

//go:embed schemas/rule.cue
var schemaFS embed.FS

// Validator holds the compiled #Rule schema definition.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator compiles the embedded rule schema.
func NewValidator() (*Validator, error) {
	content, err := schemaFS.ReadFile("schemas/rule.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded rule schema: %w", err)
	}

	ctx := cuecontext.New()
	inst := ctx.CompileBytes(content, cue.Filename("rule.cue"))
	if err := inst.Err(); err != nil {
		return nil, fmt.Errorf("compiling rule schema: %w", err)
	}

	def := inst.LookupPath(cue.ParsePath("#Rule"))
	if !def.Exists() {
		return nil, fmt.Errorf("rule schema is missing the #Rule definition")
	}

	return &Validator{ctx: ctx, schema: def}, nil
}

// ValidateFrontmatter checks a parsed frontmatter mapping against the rule
// schema. #Rule is a closed definition, so unknown keys fail unification.
func (v *Validator) ValidateFrontmatter(skill, file string, fields map[string]string) []types.ValidationError {
	if len(fields) == 0 {
		return nil
	}

	data := make(map[string]any, len(fields))
	for key, value := range fields {
		data[key] = value
	}

	value := v.ctx.Encode(data)
	if err := value.Err(); err != nil {
		return []types.ValidationError{{
			Skill:   skill,
			File:    file,
			Message: fmt.Sprintf("Frontmatter could not be encoded for schema checking: %v", err),
		}}
	}

	unified := v.schema.Unify(value)
	if err := unified.Err(); err != nil {
		return schemaErrors(skill, file, err)
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return schemaErrors(skill, file, err)
	}
	return nil
}

func schemaErrors(skill, file string, err error) []types.ValidationError {
	return []types.ValidationError{{
		Skill:   skill,
		File:    file,
		Message: fmt.Sprintf("Frontmatter does not match the rule schema: %v", err),
	}}
}
