package cue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFrontmatter(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	t.Run("known_fields_pass", func(t *testing.T) {
		errs := v.ValidateFrontmatter("fastify-core", "rule.md", map[string]string{
			"title":             "Sample",
			"impact":            "high",
			"impactDescription": "why it matters",
			"tags":              "hooks, plugins",
			"references":        "https://example.com",
		})
		assert.Empty(t, errs)
	})

	t.Run("empty_frontmatter_passes", func(t *testing.T) {
		assert.Empty(t, v.ValidateFrontmatter("fastify-core", "rule.md", nil))
		assert.Empty(t, v.ValidateFrontmatter("fastify-core", "rule.md", map[string]string{}))
	})

	t.Run("unknown_key_fails", func(t *testing.T) {
		errs := v.ValidateFrontmatter("fastify-core", "rule.md", map[string]string{
			"title":    "Sample",
			"priority": "high",
		})
		require.Len(t, errs, 1)
		assert.Equal(t, "fastify-core", errs[0].Skill)
		assert.Equal(t, "rule.md", errs[0].File)
		assert.Contains(t, errs[0].Message, "schema")
	})

	t.Run("subset_of_fields_passes", func(t *testing.T) {
		errs := v.ValidateFrontmatter("fastify-core", "rule.md", map[string]string{
			"title": "Only A Title",
		})
		assert.Empty(t, errs)
	})
}
