package invalidtable

import (
	"testing"

	"github.com/guykisel/robotframework-lint/internal/lint"
)

func suiteWithTables(names ...string) *lint.Suite {
	s := &lint.Suite{Name: "s", Line: 1}
	for i, n := range names {
		s.Tables = append(s.Tables, lint.Table{Name: n, Line: 1 + i*5})
	}
	return s
}

func TestCheckSuite_RecognizedTables(t *testing.T) {
	r := &Rule{}
	got := r.CheckSuite(suiteWithTables(
		"Settings", "Setting", "Metadata",
		"Test Cases", "Test Case", "Cases", "Tasks",
		"Keywords", "User Keywords",
		"Variables", "Variable",
	))
	if len(got) != 0 {
		t.Errorf("expected no violations, got %v", got)
	}
}

func TestCheckSuite_CaseInsensitive(t *testing.T) {
	r := &Rule{}
	if got := r.CheckSuite(suiteWithTables("test cases", "KEYWORDS")); len(got) != 0 {
		t.Errorf("expected no violations for mixed case, got %v", got)
	}
}

func TestCheckSuite_MisspelledTable(t *testing.T) {
	r := &Rule{}
	got := r.CheckSuite(suiteWithTables("Settings", "Tset Cases"))
	if len(got) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(got))
	}
	if got[0].Line != 6 {
		t.Errorf("line = %d, want 6", got[0].Line)
	}
	if want := "unknown table name 'Tset Cases'"; got[0].Message != want {
		t.Errorf("message = %q, want %q", got[0].Message, want)
	}
}

func TestCheckSuite_NoTables(t *testing.T) {
	r := &Rule{}
	if got := r.CheckSuite(&lint.Suite{Name: "s", Line: 1}); len(got) != 0 {
		t.Errorf("expected no violations for an empty suite, got %v", got)
	}
}
