// Package frontend extracts the optional frontmatter block from rule file
// content. Frontmatter is a flat key: value mapping delimited by "---" lines;
// nested structure is not part of the convention.
package frontend

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter holds the parsed key/value fields and the remaining body text.
type Frontmatter struct {
	Fields map[string]string
	Body   string
}

// Has reports whether a key is present in the frontmatter.
func (f Frontmatter) Has(key string) bool {
	_, ok := f.Fields[key]
	return ok
}

// Parse splits content into frontmatter fields and body. Content that does
// not open with a "---" delimiter, or never closes it, is returned whole as
// the body with an empty field map. Parse never fails: frontmatter the YAML
// decoder rejects falls back to a line-by-line flat scan.
func Parse(content string) Frontmatter {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	fm := Frontmatter{Fields: map[string]string{}, Body: content}

	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t") != "---" {
		return fm
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t") == "---" {
			closing = i
			break
		}
	}
	if closing < 0 {
		return fm
	}

	fm.Fields = parseBlock(lines[1:closing])
	fm.Body = strings.Join(lines[closing+1:], "\n")
	return fm
}

// parseBlock decodes the delimited block. Lines without a colon are dropped
// before decoding since they cannot carry a key/value pair.
func parseBlock(lines []string) map[string]string {
	keyed := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(line, ":") {
			keyed = append(keyed, line)
		}
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(strings.Join(keyed, "\n")), &data); err == nil {
		fields := make(map[string]string, len(data))
		for key, value := range data {
			switch v := value.(type) {
			case string:
				fields[key] = v
			case nil:
				fields[key] = ""
			default:
				fields[key] = fmt.Sprintf("%v", v)
			}
		}
		return fields
	}

	// The convention tolerates lines YAML rejects; scan them flat instead.
	fields := make(map[string]string, len(keyed))
	for _, line := range keyed {
		key, value, _ := strings.Cut(line, ":")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		fields[key] = unquote(strings.TrimSpace(value))
	}
	return fields
}

// unquote strips one matching pair of surrounding single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
