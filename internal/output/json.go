package output

import (
	"encoding/json"
	"io"

	"github.com/guykisel/robotframework-lint/internal/lint"
)

// JSONFormatter outputs violations as a JSON array.
type JSONFormatter struct{}

type jsonViolation struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Format writes violations as a pretty-printed JSON array.
// An empty slice of violations produces [].
func (f *JSONFormatter) Format(w io.Writer, violations []lint.Violation) error {
	items := make([]jsonViolation, 0, len(violations))
	for _, v := range violations {
		items = append(items, jsonViolation{
			File:     v.File,
			Line:     v.Line,
			Rule:     v.RuleName,
			Severity: string(v.Severity),
			Message:  v.Message,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
