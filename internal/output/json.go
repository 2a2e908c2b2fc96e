package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fastify-skills/validate-rules/internal/lint"
)

// JSONFormatter emits the run summary as a single JSON document.
type JSONFormatter struct {
	out io.Writer
}

// NewJSONFormatter creates a new JSONFormatter writing to out.
func NewJSONFormatter(out io.Writer) *JSONFormatter {
	return &JSONFormatter{out: out}
}

type jsonReport struct {
	TotalFiles int         `json:"totalFiles"`
	ValidFiles int         `json:"validFiles"`
	Errors     []jsonError `json:"errors"`
}

type jsonError struct {
	Skill   string `json:"skill"`
	File    string `json:"file"`
	Message string `json:"message"`
}

// Format writes the summary as indented JSON.
func (f *JSONFormatter) Format(summary *lint.Summary) error {
	report := jsonReport{
		TotalFiles: summary.TotalFiles(),
		ValidFiles: summary.ValidFiles(),
		Errors:     []jsonError{},
	}
	for _, e := range summary.Errors() {
		report.Errors = append(report.Errors, jsonError{
			Skill:   e.Skill,
			File:    e.File,
			Message: e.Message,
		})
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = fmt.Fprintln(f.out, string(data))
	return err
}
