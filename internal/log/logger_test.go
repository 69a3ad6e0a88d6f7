package log

import (
	"bytes"
	"testing"
)

func TestPrintf_Enabled(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)

	l.Printf("linting %s", "suite.robot")

	want := "rflint: linting suite.robot\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrintf_DisabledIsNoop(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Printf("should not appear")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestPrintf_NilLoggerIsNoop(t *testing.T) {
	var l *Logger
	l.Printf("must not panic")
}
