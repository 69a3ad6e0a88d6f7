package engine

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/guykisel/robotframework-lint/internal/lint"
	"github.com/guykisel/robotframework-lint/internal/log"
	"github.com/guykisel/robotframework-lint/internal/parser"
	"github.com/guykisel/robotframework-lint/internal/policy"
	"github.com/guykisel/robotframework-lint/internal/rule"
)

// Runner drives the linting pipeline: for each file it parses the
// suite tree and walks it once, dispatching every node to the rules
// registered for that node's structural level. Rules and Policy are
// read-only for the duration of a run.
type Runner struct {
	Rules  []rule.Rule // configured rule set, registry order
	Policy *policy.SeverityPolicy
	Ignore []string // glob patterns for files to skip
	Log    *log.Logger
}

// Result holds the output of a lint run.
type Result struct {
	Violations []lint.Violation
	Errors     []error
	Scanned    int // files (or sources) successfully parsed and linted
}

// ErrorCount returns the number of error-level violations.
func (r *Result) ErrorCount() int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == lint.Error {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warning-level violations.
func (r *Result) WarningCount() int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == lint.Warning {
			n++
		}
	}
	return n
}

// ExitCode maps the result onto the process exit contract: 1 when any
// error-level violation was found, 2 when nothing could be linted at
// all, 0 otherwise. Warnings never change the exit code.
func (r *Result) ExitCode() int {
	if r.ErrorCount() > 0 {
		return 1
	}
	if r.Scanned == 0 && len(r.Errors) > 0 {
		return 2
	}
	return 0
}

// RuleExecutionError reports a rule whose check function panicked.
// The failing rule/node pair is recorded and the run continues, so a
// buggy rule never costs the violations other rules produced.
type RuleExecutionError struct {
	Rule  string
	File  string
	Line  int
	Cause any
}

func (e *RuleExecutionError) Error() string {
	return fmt.Sprintf("rule %s failed on %s:%d: %v", e.Rule, e.File, e.Line, e.Cause)
}

// Run lints the files at the given paths in order. Files that fail to
// parse contribute zero violations and a recorded error; the run
// continues with the remaining files.
func (r *Runner) Run(paths []string) *Result {
	res := &Result{}

	for _, path := range paths {
		if r.isIgnored(path) {
			r.logf("skipping %s (ignored)", path)
			continue
		}

		suite, err := parser.ParseFile(path)
		if err != nil {
			res.Errors = append(res.Errors, err)
			continue
		}

		r.logf("linting %s", path)
		res.Scanned++
		r.lintSuite(suite, res)
	}

	return res
}

// RunSource lints in-memory source, as read from stdin.
func (r *Runner) RunSource(path string, source []byte) *Result {
	res := &Result{}

	suite, err := parser.Parse(path, source)
	if err != nil {
		res.Errors = append(res.Errors, err)
		return res
	}

	res.Scanned++
	r.lintSuite(suite, res)
	return res
}

// RunSuite lints an already-parsed suite tree.
func (r *Runner) RunSuite(suite *lint.Suite) *Result {
	res := &Result{Scanned: 1}
	r.lintSuite(suite, res)
	return res
}

// lintSuite walks one suite in document order: the suite node itself,
// then each testcase and its steps, then nested child suites. Within
// one node, rules apply in registry order, so output is reproducible
// across runs.
func (r *Runner) lintSuite(s *lint.Suite, res *Result) {
	for _, rl := range r.Rules {
		if rl.Level() != rule.SuiteLevel {
			continue
		}
		sr := rl.(rule.SuiteRule)
		r.invoke(rl, s.Path, s.Line, res, func() []lint.Violation {
			return sr.CheckSuite(s)
		})
	}

	for _, tc := range s.TestCases {
		for _, rl := range r.Rules {
			if rl.Level() != rule.TestCaseLevel {
				continue
			}
			tr := rl.(rule.TestCaseRule)
			r.invoke(rl, s.Path, tc.Line, res, func() []lint.Violation {
				return tr.CheckTestCase(tc)
			})
		}

		for _, st := range tc.Steps {
			for _, rl := range r.Rules {
				if rl.Level() != rule.StepLevel {
					continue
				}
				sr := rl.(rule.StepRule)
				r.invoke(rl, s.Path, st.Line, res, func() []lint.Violation {
					return sr.CheckStep(st)
				})
			}
		}
	}

	for _, child := range s.Suites {
		r.lintSuite(child, res)
	}
}

// invoke runs one rule against one node. Rules resolved to ignore are
// skipped outright: checks are side-effect free, so skipping is
// observably equivalent to invoking and discarding, and cheaper. The
// resolved severity and the node's file are stamped onto every
// violation the check returns. A panicking check is confined to this
// rule/node pair.
func (r *Runner) invoke(rl rule.Rule, file string, line int, res *Result, check func() []lint.Violation) {
	severity := r.resolve(rl)
	if severity == lint.Ignore {
		return
	}

	violations, err := safeCheck(rl, file, line, check)
	if err != nil {
		res.Errors = append(res.Errors, err)
		return
	}

	for _, v := range violations {
		v.File = file
		v.RuleName = rl.Name()
		v.Severity = severity
		res.Violations = append(res.Violations, v)
	}
}

// resolve returns the effective severity for a rule, falling back to
// the rule's default when no policy is set.
func (r *Runner) resolve(rl rule.Rule) lint.Severity {
	if r.Policy == nil {
		return rl.DefaultSeverity()
	}
	return r.Policy.Resolve(rl)
}

// safeCheck invokes a rule's check function, converting a panic into a
// RuleExecutionError.
func safeCheck(rl rule.Rule, file string, line int, check func() []lint.Violation) (violations []lint.Violation, err error) {
	defer func() {
		if cause := recover(); cause != nil {
			violations = nil
			err = &RuleExecutionError{Rule: rl.Name(), File: file, Line: line, Cause: cause}
		}
	}()
	return check(), nil
}

// isIgnored returns true if the file path matches any of the
// configured ignore patterns.
func (r *Runner) isIgnored(path string) bool {
	cleanPath := filepath.Clean(path)

	for _, pattern := range r.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(path) || g.Match(cleanPath) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}

func (r *Runner) logf(format string, args ...any) {
	if r.Log != nil {
		r.Log.Printf(format, args...)
	}
}
