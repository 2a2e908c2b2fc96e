package rule

import (
	"regexp"
	"strings"

	"github.com/fastify-skills/validate-rules/internal/frontend"
)

// DefaultLanguage is assumed when a code fence carries no language tag.
// Rule content in this repository is JavaScript unless tagged otherwise.
const DefaultLanguage = "js"

var (
	// impactLinePattern matches the bold "Impact:" field line, tolerating the
	// colon either inside or after the emphasis markers.
	impactLinePattern = regexp.MustCompile(`^\*\*Impact(?::\*\*|\*\*:)\s*(.*)$`)

	// labelLinePattern matches a bold label line such as "**Incorrect:**" or
	// "**Correct (with schema)**:" that opens a new code example.
	labelLinePattern = regexp.MustCompile(`^\*\*([^*]+?)(?::\*\*|\*\*:)\s*$`)

	// referenceLinePattern matches the "Reference:"/"References:" marker,
	// with or without emphasis markers.
	referenceLinePattern = regexp.MustCompile(`^\*{0,2}References?:\*{0,2}\s*(.*)$`)

	// markdownLinkPattern captures the target of a [text](url) link.
	markdownLinkPattern = regexp.MustCompile(`\[[^\]]*\]\(([^)\s]+)\)`)

	// trailingParenPattern splits "Label (description)" into its two parts.
	trailingParenPattern = regexp.MustCompile(`^(.*?)\s*\(([^()]*)\)$`)
)

// parseState tracks where the sectioning pass is inside the body.
type parseState int

const (
	stateProse parseState = iota
	stateInCode
	stateAfterCode
)

// Parse converts the full text of a rule file into a Rule record. It never
// fails on textual input: structurally poor files come back with empty or
// default fields and it is the validator's job to flag them.
func Parse(content string) *Rule {
	content = normalizeLineEndings(content)
	fm := frontend.Parse(content)

	r := &Rule{}
	lines := strings.Split(fm.Body, "\n")

	// The first H2 line is the title; anything above it is preamble.
	// H3 and deeper do not count. A missing title is a validation concern.
	start := 0
	for i, line := range lines {
		if title, ok := titleLine(line); ok {
			r.Title = title
			start = i + 1
			break
		}
	}

	acc := newAccumulator()
	state := stateProse

	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)

		if state == stateInCode {
			if strings.HasPrefix(trimmed, "```") {
				// The first closing fence always ends the block; fences
				// never nest.
				acc.closeCode()
				state = stateAfterCode
				continue
			}
			acc.codeLines = append(acc.codeLines, line)
			continue
		}

		if acc.inRefs {
			// Once the reference section starts, remaining lines only
			// contribute link targets.
			acc.refs = append(acc.refs, extractLinks(line)...)
			continue
		}

		if m := referenceLinePattern.FindStringSubmatch(trimmed); m != nil {
			acc.closeExample()
			acc.refs = append(acc.refs, extractLinks(m[1])...)
			acc.inRefs = true
			continue
		}

		if m := impactLinePattern.FindStringSubmatch(trimmed); m != nil {
			acc.bodyImpact, acc.bodyImpactDesc = splitTrailingParen(strings.TrimSpace(m[1]))
			continue
		}

		if m := labelLinePattern.FindStringSubmatch(trimmed); m != nil {
			acc.closeExample()
			label, desc := splitTrailingParen(strings.TrimSpace(m[1]))
			acc.current = &CodeExample{Label: label, Description: desc}
			state = stateProse
			continue
		}

		if strings.HasPrefix(trimmed, "```") {
			lang := strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
			if lang == "" {
				lang = DefaultLanguage
			}
			acc.codeLang = lang
			acc.codeLines = nil
			state = stateInCode
			continue
		}

		if trimmed == "" {
			acc.breakParagraph()
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			// Headings below the title carry no structural meaning.
			continue
		}

		acc.addProse(trimmed)
	}

	acc.closeExample()

	r.Explanation = acc.explanation.String()
	r.Examples = acc.examples
	r.References = dedupe(acc.refs)

	// Frontmatter wins over anything inferred from the body.
	impact := acc.bodyImpact
	impactDesc := acc.bodyImpactDesc
	if v := strings.TrimSpace(fm.Fields["title"]); v != "" {
		r.Title = v
	}
	if v := strings.TrimSpace(fm.Fields["impact"]); v != "" {
		impact = v
	}
	if v := strings.TrimSpace(fm.Fields["impactDescription"]); v != "" {
		impactDesc = v
	}
	if impact == "" {
		impact = DefaultImpact.String()
	}
	r.Impact = impact
	r.ImpactDescription = impactDesc

	if fm.Has("tags") {
		r.Tags = splitList(fm.Fields["tags"])
	}
	if fm.Has("references") {
		r.References = splitList(fm.Fields["references"])
	}

	return r
}

// accumulator carries the state of the single forward pass over body lines.
type accumulator struct {
	explanation    proseBuffer
	examples       []CodeExample
	current        *CodeExample
	trailing       proseBuffer
	currentHasCode bool

	codeLines []string
	codeLang  string

	inRefs bool
	refs   []string

	bodyImpact     string
	bodyImpactDesc string
}

func newAccumulator() *accumulator {
	return &accumulator{}
}

// closeCode attaches the accumulated fenced block to the open example. Blocks
// outside any example, and second blocks under the same label, are dropped.
func (a *accumulator) closeCode() {
	if a.current != nil && !a.currentHasCode {
		a.current.Code = strings.Join(a.codeLines, "\n")
		a.current.Language = a.codeLang
		a.currentHasCode = true
	}
	a.codeLines = nil
	a.codeLang = ""
}

// closeExample pushes the open example, attaching its trailing prose.
// An example that never saw a code block is still pushed; flagging the empty
// code is the validator's concern.
func (a *accumulator) closeExample() {
	if a.current == nil {
		return
	}
	a.current.AdditionalText = a.trailing.String()
	a.examples = append(a.examples, *a.current)
	a.current = nil
	a.trailing = proseBuffer{}
	a.currentHasCode = false
}

func (a *accumulator) addProse(line string) {
	if a.current == nil {
		a.explanation.AddLine(line)
		return
	}
	a.trailing.AddLine(line)
}

func (a *accumulator) breakParagraph() {
	if a.current == nil {
		a.explanation.Break()
		return
	}
	a.trailing.Break()
}

// proseBuffer collects lines into blank-line-separated paragraphs.
type proseBuffer struct {
	paragraphs []string
	current    []string
}

func (b *proseBuffer) AddLine(line string) {
	b.current = append(b.current, line)
}

func (b *proseBuffer) Break() {
	if len(b.current) > 0 {
		b.paragraphs = append(b.paragraphs, strings.Join(b.current, "\n"))
		b.current = nil
	}
}

func (b *proseBuffer) String() string {
	paragraphs := b.paragraphs
	if len(b.current) > 0 {
		paragraphs = append(append([]string(nil), paragraphs...), strings.Join(b.current, "\n"))
	}
	return strings.Join(paragraphs, "\n\n")
}

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// titleLine reports whether line is a second-level heading (exactly two
// markers) and returns its text with markers and whitespace stripped.
func titleLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "##") || strings.HasPrefix(trimmed, "###") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(trimmed, "##")), true
}

func extractLinks(s string) []string {
	var links []string
	for _, m := range markdownLinkPattern.FindAllStringSubmatch(s, -1) {
		links = append(links, m[1])
	}
	return links
}

// splitTrailingParen splits "Label (description)" into label and description.
// Input without a trailing parenthetical comes back unchanged.
func splitTrailingParen(s string) (string, string) {
	if m := trailingParenPattern.FindStringSubmatch(s); m != nil && strings.TrimSpace(m[1]) != "" {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return s, ""
}

// splitList splits a comma-separated frontmatter value, dropping empties.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// dedupe removes duplicate references while preserving first-seen order.
func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
