package periodintestname

import (
	"testing"

	"github.com/guykisel/robotframework-lint/internal/lint"
)

func TestCheckTestCase(t *testing.T) {
	r := &Rule{}

	clean := &lint.TestCase{Name: "Valid Login", Line: 4}
	if got := r.CheckTestCase(clean); len(got) != 0 {
		t.Errorf("expected no violation, got %v", got)
	}

	dotted := &lint.TestCase{Name: "Login v1.2", Line: 8}
	got := r.CheckTestCase(dotted)
	if len(got) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(got))
	}
	if got[0].Line != 8 {
		t.Errorf("line = %d, want 8", got[0].Line)
	}
}
