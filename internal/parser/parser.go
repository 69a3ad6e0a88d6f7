// Package parser turns Robot Framework plain-text suite files into the
// suite/testcase/step tree the lint engine walks.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/guykisel/robotframework-lint/internal/lint"
)

// ParseError reports a file that could not be parsed into a suite.
// The engine treats it as "no violations producible for this file"
// and continues with the remaining inputs.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s: %s", e.Path, e.Reason)
}

// sectionRe matches a table header row such as "*** Test Cases ***".
var sectionRe = regexp.MustCompile(`^\*{1,3}\s*([^*]+?)\s*\**\s*$`)

// cellSepRe splits a row into cells on two or more spaces or a tab.
var cellSepRe = regexp.MustCompile(`\t| {2,}`)

type section int

const (
	sectionNone section = iota
	sectionSettings
	sectionTestCases
	sectionKeywords
	sectionVariables
	sectionUnknown
)

// classifySection maps a table header name to a section. Robot accepts
// singular and plural forms, case-insensitively.
func classifySection(name string) section {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "setting", "settings", "metadata":
		return sectionSettings
	case "test case", "test cases", "task", "tasks":
		return sectionTestCases
	case "keyword", "keywords", "user keyword", "user keywords":
		return sectionKeywords
	case "variable", "variables":
		return sectionVariables
	}
	return sectionUnknown
}

// ParseFile reads and parses a suite file.
func ParseFile(path string) (*lint.Suite, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return Parse(path, source)
}

// Parse parses source as a plain-text Robot Framework suite. The suite
// name is the file's base name without extension. A source with no
// recognizable table header fails with a ParseError.
func Parse(path string, source []byte) (*lint.Suite, error) {
	suite := &lint.Suite{
		Name: suiteName(path),
		Path: path,
		Line: 1,
	}

	p := &fileParser{suite: suite}

	sawSection := false
	lines := strings.Split(string(source), "\n")
	for i, raw := range lines {
		lineNum := i + 1
		line := strings.TrimRight(raw, " \t\r")

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if m := sectionRe.FindStringSubmatch(line); m != nil && !strings.HasPrefix(line, " ") {
			name := strings.TrimSpace(m[1])
			suite.Tables = append(suite.Tables, lint.Table{Name: name, Line: lineNum})
			p.startSection(classifySection(name))
			sawSection = true
			continue
		}

		if !sawSection {
			// Content before any table header is not valid robot syntax.
			return nil, &ParseError{Path: path, Reason: fmt.Sprintf("line %d appears before any table header", lineNum)}
		}

		p.row(line, lineNum)
	}

	if !sawSection {
		return nil, &ParseError{Path: path, Reason: "no table headers found"}
	}

	p.flush()
	return suite, nil
}

// suiteName derives the suite name from the file path: base name
// without extension.
func suiteName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// fileParser accumulates parse state for one file.
type fileParser struct {
	suite   *lint.Suite
	section section

	current  *lint.TestCase
	keyword  *lint.Keyword
	lastStep *lint.Step

	// continuable tracks where "..." continuation rows append:
	// the suite documentation or the current testcase documentation.
	continueDoc func(text string)
}

func (p *fileParser) startSection(s section) {
	p.flush()
	p.section = s
	p.continueDoc = nil
}

// flush finalizes the testcase or keyword being built, if any.
func (p *fileParser) flush() {
	if p.current != nil {
		p.suite.TestCases = append(p.suite.TestCases, p.current)
		p.current = nil
	}
	if p.keyword != nil {
		p.suite.Keywords = append(p.suite.Keywords, p.keyword)
		p.keyword = nil
	}
	p.lastStep = nil
}

// row handles one non-empty, non-header line within the current section.
func (p *fileParser) row(line string, lineNum int) {
	switch p.section {
	case sectionSettings:
		p.settingsRow(line)
	case sectionTestCases:
		p.testCaseRow(line, lineNum)
	case sectionKeywords:
		p.keywordRow(line, lineNum)
	default:
		// Variable and unknown tables carry nothing the data model
		// records beyond the header itself.
	}
}

// settingsRow handles a row of the settings table.
func (p *fileParser) settingsRow(line string) {
	cells := splitCells(strings.TrimSpace(line))
	if len(cells) == 0 {
		return
	}

	if cells[0] == "..." {
		if p.continueDoc != nil && len(cells) > 1 {
			p.continueDoc(strings.Join(cells[1:], " "))
		}
		return
	}

	p.continueDoc = nil
	if strings.EqualFold(cells[0], "Documentation") {
		p.suite.Documentation = strings.Join(cells[1:], " ")
		p.continueDoc = func(text string) {
			p.suite.Documentation += " " + text
		}
	}
}

// testCaseRow handles a row of the test cases table. Rows at column
// zero start a new testcase; indented rows are settings or steps of
// the current one.
func (p *fileParser) testCaseRow(line string, lineNum int) {
	if !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
		p.flush()
		cells := splitCells(line)
		p.current = &lint.TestCase{Name: cells[0], Line: lineNum}
		p.continueDoc = nil
		return
	}

	if p.current == nil {
		// An indented row with no testcase to own it; nothing to
		// attach it to.
		return
	}

	cells := splitCells(strings.TrimSpace(line))
	if len(cells) == 0 {
		return
	}

	name := cells[0]
	args := cells[1:]

	switch {
	case name == "...":
		// Continuation row: append to the last step's arguments or
		// to a continuable documentation setting.
		if p.lastStep != nil {
			p.lastStep.Args = append(p.lastStep.Args, args...)
		} else if p.continueDoc != nil {
			p.continueDoc(strings.Join(args, " "))
		}
	case strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]"):
		p.testCaseSetting(strings.Trim(name, "[]"), args)
	default:
		step := &lint.Step{Name: name, Args: args, Line: lineNum}
		p.current.Steps = append(p.current.Steps, step)
		p.lastStep = step
		p.continueDoc = nil
	}
}

// keywordRow handles a row of the keywords table. Rows at column zero
// start a new user keyword; indented rows are its steps. Bracketed
// settings ([Arguments], [Return], ...) are skipped.
func (p *fileParser) keywordRow(line string, lineNum int) {
	if !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
		p.flush()
		cells := splitCells(line)
		p.keyword = &lint.Keyword{Name: cells[0], Line: lineNum}
		return
	}

	if p.keyword == nil {
		return
	}

	cells := splitCells(strings.TrimSpace(line))
	if len(cells) == 0 {
		return
	}

	name := cells[0]
	args := cells[1:]

	switch {
	case name == "...":
		if p.lastStep != nil {
			p.lastStep.Args = append(p.lastStep.Args, args...)
		}
	case strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]"):
		p.lastStep = nil
	default:
		step := &lint.Step{Name: name, Args: args, Line: lineNum}
		p.keyword.Steps = append(p.keyword.Steps, step)
		p.lastStep = step
	}
}

// testCaseSetting handles a bracketed setting such as [Documentation].
func (p *fileParser) testCaseSetting(name string, args []string) {
	p.lastStep = nil
	p.continueDoc = nil

	tc := p.current
	switch strings.ToLower(name) {
	case "documentation":
		tc.Documentation = strings.Join(args, " ")
		p.continueDoc = func(text string) {
			tc.Documentation += " " + text
		}
	case "tags":
		tc.Tags = append(tc.Tags, args...)
	}
}

// splitCells splits a row into cells on runs of two or more spaces or
// a tab, dropping empty cells.
func splitCells(line string) []string {
	parts := cellSepRe.Split(line, -1)
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}
