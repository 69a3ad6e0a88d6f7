package output

import (
	"io"

	"github.com/guykisel/robotframework-lint/internal/lint"
)

// Formatter defines the interface for outputting violations.
type Formatter interface {
	Format(w io.Writer, violations []lint.Violation) error
}
