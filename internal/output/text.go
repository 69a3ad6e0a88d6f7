package output

import (
	"fmt"
	"io"

	"github.com/guykisel/robotframework-lint/internal/lint"
)

// TextFormatter outputs violations in human-readable text format.
// When Color is true, the location is printed in cyan and the rule
// name in yellow. NoFilename drops the filename prefix from each
// line; it is purely presentational.
type TextFormatter struct {
	Color      bool
	NoFilename bool
}

// Format writes each violation as a single line in the pattern:
// file:line: severity RuleName: message
func (f *TextFormatter) Format(w io.Writer, violations []lint.Violation) error {
	for _, v := range violations {
		location := fmt.Sprintf("%s:%d", v.File, v.Line)
		if f.NoFilename {
			location = fmt.Sprintf("%d", v.Line)
		}

		var err error
		if f.Color {
			// location in cyan, rule name in yellow
			_, err = fmt.Fprintf(w, "\033[36m%s:\033[0m %s \033[33m%s\033[0m: %s\n",
				location, v.Severity, v.RuleName, v.Message)
		} else {
			_, err = fmt.Fprintf(w, "%s: %s %s: %s\n",
				location, v.Severity, v.RuleName, v.Message)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Summary writes the error/warning tally, e.g. "2 errors, 1 warning".
func Summary(w io.Writer, errorCount, warningCount int) error {
	_, err := fmt.Fprintf(w, "%s, %s\n",
		pluralize(errorCount, "error"), pluralize(warningCount, "warning"))
	return err
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
