// Package rule models a single best-practice rule file and implements the
// parser that turns raw markdown into a structured Rule record.
package rule

import "strings"

// CodeExample is one labeled code block extracted from a rule body, e.g. the
// block following "**Incorrect:**". Examples keep document order.
type CodeExample struct {
	Label          string // e.g. "Incorrect", "Correct (with schema)"
	Description    string // trailing parenthetical of the label, if any
	Code           string // verbatim fenced block content
	Language       string // fence language tag, defaults to "js"
	AdditionalText string // prose between the code block and the next section
}

// HasCode returns true if the example carries a non-empty code block.
func (e CodeExample) HasCode() bool {
	return strings.TrimSpace(e.Code) != ""
}

// Rule is the structured result of parsing one rule file. Frontmatter values
// take precedence over values inferred from the body for the same field.
type Rule struct {
	Title             string
	Impact            string // raw impact text as written; DefaultImpact when unstated
	ImpactDescription string
	Explanation       string
	Examples          []CodeExample
	References        []string
	Tags              []string
}
