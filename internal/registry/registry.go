// Package registry defines the static set of skills shipped in this
// repository. The registry is constructed once at startup and passed
// explicitly into the validator; it is not externally configurable.
package registry

// SkillConfig maps a skill name to the directory holding its rule files.
type SkillConfig struct {
	Name        string
	Title       string
	Description string
	RulesDir    string // relative to the repository root
}

// DefaultSkills returns the configured skills in validation order.
func DefaultSkills() []SkillConfig {
	return []SkillConfig{
		{
			Name:        "fastify-core",
			Title:       "Fastify Best Practices",
			Description: "Core Fastify patterns: routing, validation, serialization, hooks, and error handling",
			RulesDir:    "skills/fastify-core/rules",
		},
		{
			Name:        "fastify-plugins",
			Title:       "Fastify Plugin Development",
			Description: "Writing and registering Fastify plugins: encapsulation, decorators, and plugin metadata",
			RulesDir:    "skills/fastify-plugins/rules",
		},
	}
}
