package rule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// md builds markdown content in tests; "~" stands in for the backtick so
// fenced blocks can live inside raw string literals.
func md(s string) string {
	return strings.ReplaceAll(s, "~", "`")
}

const minimalValid = `---
title: Sample Rule
impact: HIGH
---
## Sample Rule
This explains the rule.
**Incorrect:**
~~~ts
bad();
~~~
**Correct:**
~~~ts
good();
~~~
`

func TestParseMinimalValidFile(t *testing.T) {
	r := Parse(md(minimalValid))

	assert.Equal(t, "Sample Rule", r.Title)
	assert.Equal(t, "HIGH", r.Impact)
	assert.Equal(t, "This explains the rule.", r.Explanation)

	require.Len(t, r.Examples, 2)
	assert.Equal(t, "Incorrect", r.Examples[0].Label)
	assert.Equal(t, "bad();", r.Examples[0].Code)
	assert.Equal(t, "ts", r.Examples[0].Language)
	assert.Equal(t, "Correct", r.Examples[1].Label)
	assert.Equal(t, "good();", r.Examples[1].Code)
	assert.Equal(t, "ts", r.Examples[1].Language)
}

func TestParseIsIdempotent(t *testing.T) {
	content := md(minimalValid)
	first := Parse(content)
	second := Parse(content)
	assert.Equal(t, first, second)
}

func TestParseTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "from_first_h2",
			input: "## My Rule Title\n\nSome prose.\n",
			want:  "My Rule Title",
		},
		{
			name:  "preamble_before_h2_discarded",
			input: "This is preamble.\n\n## Actual Title\n\nExplanation.\n",
			want:  "Actual Title",
		},
		{
			name:  "h3_does_not_count",
			input: "### Not A Title\n\nProse only.\n",
			want:  "",
		},
		{
			name: "frontmatter_overrides_body",
			input: `---
title: Frontmatter Title
---
## Body Title

Prose.
`,
			want: "Frontmatter Title",
		},
		{
			name:  "missing_title_stays_empty",
			input: "Just prose, no heading.\n",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input).Title)
		})
	}
}

func TestParseExplanation(t *testing.T) {
	input := md(`## Rule

First paragraph of the explanation.
It continues on a second line.

Second paragraph.

**Incorrect:**
~~~
nope()
~~~
`)
	r := Parse(input)
	assert.Equal(t,
		"First paragraph of the explanation.\nIt continues on a second line.\n\nSecond paragraph.",
		r.Explanation)
}

func TestParsePreambleNotInExplanation(t *testing.T) {
	input := "Preamble text.\n\n## Title\n\nReal explanation.\n"
	r := Parse(input)
	assert.Equal(t, "Real explanation.", r.Explanation)
	assert.NotContains(t, r.Explanation, "Preamble")
}

func TestParseImpactFromBody(t *testing.T) {
	input := md(`## Rule

**Impact:** high (slow requests pile up)

Why it matters.

**Incorrect:**
~~~
x
~~~
`)
	r := Parse(input)
	assert.Equal(t, "high", r.Impact)
	assert.Equal(t, "slow requests pile up", r.ImpactDescription)
	assert.Equal(t, "Why it matters.", r.Explanation)
}

func TestParseImpactDefaultsToMedium(t *testing.T) {
	r := Parse("## Rule\n\nProse.\n")
	assert.Equal(t, "medium", r.Impact)
}

func TestParseFrontmatterImpactWinsOverBody(t *testing.T) {
	input := md(`---
impact: critical
---
## Rule

**Impact:** low

Prose.
`)
	assert.Equal(t, "critical", Parse(input).Impact)
}

func TestParseExamples(t *testing.T) {
	t.Run("no_fences_no_labels_yields_no_examples", func(t *testing.T) {
		r := Parse("## Rule\n\nOnly prose here.\n")
		assert.Empty(t, r.Examples)
	})

	t.Run("label_without_fence_yields_empty_code", func(t *testing.T) {
		r := Parse("## Rule\n\nProse.\n\n**Incorrect:**\n\nNo code followed.\n")
		require.Len(t, r.Examples, 1)
		assert.Equal(t, "Incorrect", r.Examples[0].Label)
		assert.Empty(t, r.Examples[0].Code)
	})

	t.Run("label_parenthetical_becomes_description", func(t *testing.T) {
		input := md(`## Rule

Prose.

**Correct (with containers):**
~~~js
ok()
~~~
`)
		r := Parse(input)
		require.Len(t, r.Examples, 1)
		assert.Equal(t, "Correct", r.Examples[0].Label)
		assert.Equal(t, "with containers", r.Examples[0].Description)
	})

	t.Run("fence_without_language_defaults", func(t *testing.T) {
		input := md(`## Rule

Prose.

**Incorrect:**
~~~
raw()
~~~
`)
		r := Parse(input)
		require.Len(t, r.Examples, 1)
		assert.Equal(t, DefaultLanguage, r.Examples[0].Language)
	})

	t.Run("prose_after_code_becomes_additional_text", func(t *testing.T) {
		input := md(`## Rule

Prose.

**Correct:**
~~~js
ok()
~~~

This trailing note explains the fix.
`)
		r := Parse(input)
		require.Len(t, r.Examples, 1)
		assert.Equal(t, "This trailing note explains the fix.", r.Examples[0].AdditionalText)
	})

	t.Run("code_content_is_verbatim", func(t *testing.T) {
		input := md(`## Rule

Prose.

**Incorrect:**
~~~js
// **Correct:** inside code is not a label
const x = 1
~~~
`)
		r := Parse(input)
		require.Len(t, r.Examples, 1)
		assert.Contains(t, r.Examples[0].Code, "**Correct:** inside code is not a label")
	})

	t.Run("order_is_preserved", func(t *testing.T) {
		input := md(`## Rule

Prose.

**Incorrect:**
~~~js
a()
~~~

**Correct (first):**
~~~js
b()
~~~

**Correct (second):**
~~~js
c()
~~~
`)
		r := Parse(input)
		require.Len(t, r.Examples, 3)
		assert.Equal(t, "Incorrect", r.Examples[0].Label)
		assert.Equal(t, "first", r.Examples[1].Description)
		assert.Equal(t, "second", r.Examples[2].Description)
	})
}

func TestParseReferences(t *testing.T) {
	t.Run("reference_line_does_not_create_stray_example", func(t *testing.T) {
		input := md(`## Rule

Prose.

**Correct:**
~~~js
ok()
~~~

Reference: [Docs](https://example.com/docs)
`)
		r := Parse(input)
		assert.Equal(t, []string{"https://example.com/docs"}, r.References)
		require.Len(t, r.Examples, 1)
		assert.Equal(t, "Correct", r.Examples[0].Label)
	})

	t.Run("bold_references_marker_with_multiple_links", func(t *testing.T) {
		input := md(`## Rule

Prose.

**References:**
- [One](https://example.com/one)
- [Two](https://example.com/two)
`)
		r := Parse(input)
		assert.Equal(t, []string{"https://example.com/one", "https://example.com/two"}, r.References)
	})

	t.Run("duplicate_links_are_deduplicated", func(t *testing.T) {
		input := "## Rule\n\nProse.\n\nReferences: [A](https://a.dev) [B](https://a.dev)\n"
		r := Parse(input)
		assert.Equal(t, []string{"https://a.dev"}, r.References)
	})

	t.Run("frontmatter_references_win", func(t *testing.T) {
		input := `---
references: https://fm.dev/one, https://fm.dev/two
---
## Rule

Prose.

Reference: [Body](https://body.dev)
`
		r := Parse(input)
		assert.Equal(t, []string{"https://fm.dev/one", "https://fm.dev/two"}, r.References)
	})
}

func TestParseTags(t *testing.T) {
	input := `---
tags: hooks, plugins , encapsulation
---
## Rule

Prose.
`
	r := Parse(input)
	assert.Equal(t, []string{"hooks", "plugins", "encapsulation"}, r.Tags)

	r = Parse("## Rule\n\nProse.\n")
	assert.Nil(t, r.Tags)
}

func TestParseCRLFInput(t *testing.T) {
	unix := md(minimalValid)
	windows := strings.ReplaceAll(unix, "\n", "\r\n")
	assert.Equal(t, Parse(unix), Parse(windows))
}

func TestSplitTrailingParen(t *testing.T) {
	tests := []struct {
		in    string
		label string
		desc  string
	}{
		{"Incorrect", "Incorrect", ""},
		{"Correct (with containers)", "Correct", "with containers"},
		{"High (drops p99)", "High", "drops p99"},
		{"(only parens)", "(only parens)", ""},
	}
	for _, tt := range tests {
		label, desc := splitTrailingParen(tt.in)
		assert.Equal(t, tt.label, label, tt.in)
		assert.Equal(t, tt.desc, desc, tt.in)
	}
}
