package parser

import (
	"errors"
	"testing"
)

const sampleSuite = `*** Settings ***
Documentation    Login scenarios
...              covering both portals.
Library          OperatingSystem

*** Test Cases ***
Valid Login
    [Documentation]    Happy path.
    [Tags]    smoke    auth
    Open Browser    http://example.com    chrome
    Input Text    username    fred
    ...    extra
    Click Button    login

Empty Case

*** Keywords ***
Open Portal
    Log    opening
`

func TestParse_SuiteFields(t *testing.T) {
	suite, err := Parse("suites/login.robot", []byte(sampleSuite))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if suite.Name != "login" {
		t.Errorf("suite name = %q, want %q", suite.Name, "login")
	}
	if suite.Path != "suites/login.robot" {
		t.Errorf("suite path = %q, want %q", suite.Path, "suites/login.robot")
	}
	if suite.Documentation != "Login scenarios covering both portals." {
		t.Errorf("suite documentation = %q", suite.Documentation)
	}
}

func TestParse_TestCases(t *testing.T) {
	suite, err := Parse("login.robot", []byte(sampleSuite))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(suite.TestCases) != 2 {
		t.Fatalf("expected 2 testcases, got %d", len(suite.TestCases))
	}

	tc := suite.TestCases[0]
	if tc.Name != "Valid Login" {
		t.Errorf("testcase name = %q, want %q", tc.Name, "Valid Login")
	}
	if tc.Line != 7 {
		t.Errorf("testcase line = %d, want 7", tc.Line)
	}
	if tc.Documentation != "Happy path." {
		t.Errorf("testcase documentation = %q", tc.Documentation)
	}
	if len(tc.Tags) != 2 || tc.Tags[0] != "smoke" || tc.Tags[1] != "auth" {
		t.Errorf("testcase tags = %v, want [smoke auth]", tc.Tags)
	}

	empty := suite.TestCases[1]
	if empty.Name != "Empty Case" {
		t.Errorf("second testcase name = %q, want %q", empty.Name, "Empty Case")
	}
	if len(empty.Steps) != 0 {
		t.Errorf("expected no steps in Empty Case, got %d", len(empty.Steps))
	}
}

func TestParse_Steps(t *testing.T) {
	suite, err := Parse("login.robot", []byte(sampleSuite))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	steps := suite.TestCases[0].Steps
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}

	if steps[0].Name != "Open Browser" {
		t.Errorf("step 0 name = %q, want %q", steps[0].Name, "Open Browser")
	}
	if len(steps[0].Args) != 2 || steps[0].Args[0] != "http://example.com" {
		t.Errorf("step 0 args = %v", steps[0].Args)
	}
	if steps[0].Line != 10 {
		t.Errorf("step 0 line = %d, want 10", steps[0].Line)
	}

	// Continuation row folds into the previous step's arguments.
	if len(steps[1].Args) != 3 || steps[1].Args[2] != "extra" {
		t.Errorf("step 1 args = %v, want continuation folded in", steps[1].Args)
	}
}

func TestParse_Keywords(t *testing.T) {
	suite, err := Parse("login.robot", []byte(sampleSuite))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// "Open Portal" lives in the keywords table and must not show up
	// as a testcase.
	for _, tc := range suite.TestCases {
		if tc.Name == "Open Portal" {
			t.Error("keyword table row parsed as a testcase")
		}
	}

	if len(suite.Keywords) != 1 {
		t.Fatalf("expected 1 keyword, got %d", len(suite.Keywords))
	}
	kw := suite.Keywords[0]
	if kw.Name != "Open Portal" {
		t.Errorf("keyword name = %q, want %q", kw.Name, "Open Portal")
	}
	if kw.Line != 18 {
		t.Errorf("keyword line = %d, want 18", kw.Line)
	}
	if len(kw.Steps) != 1 || kw.Steps[0].Name != "Log" {
		t.Errorf("keyword steps = %v, want one Log step", kw.Steps)
	}
}

func TestParse_KeywordSettingsAndContinuations(t *testing.T) {
	src := `*** Keywords ***
Open Portal
    [Arguments]    ${url}
    Open Browser    ${url}
    ...    chrome
Close Portal
    Close Browser
`
	suite, err := Parse("k.robot", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(suite.Keywords) != 2 {
		t.Fatalf("expected 2 keywords, got %d", len(suite.Keywords))
	}

	open := suite.Keywords[0]
	if len(open.Steps) != 1 {
		t.Fatalf("expected [Arguments] to be skipped, got steps %v", open.Steps)
	}
	if got := open.Steps[0].Args; len(got) != 2 || got[1] != "chrome" {
		t.Errorf("continuation not folded into step args, got %v", got)
	}
}

func TestParse_TablesRecorded(t *testing.T) {
	src := `*** Settings ***
Documentation    short

*** Tset Cases ***
Lost Test
    Log    hi
`
	suite, err := Parse("t.robot", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(suite.Tables) != 2 {
		t.Fatalf("expected 2 table headers, got %v", suite.Tables)
	}
	if suite.Tables[0].Name != "Settings" || suite.Tables[0].Line != 1 {
		t.Errorf("first table = %+v, want Settings at line 1", suite.Tables[0])
	}
	// Misspelled headers are recorded too; their rows are discarded.
	if suite.Tables[1].Name != "Tset Cases" || suite.Tables[1].Line != 4 {
		t.Errorf("second table = %+v, want Tset Cases at line 4", suite.Tables[1])
	}
	if len(suite.TestCases) != 0 {
		t.Errorf("rows of an unknown table must be discarded, got %v", suite.TestCases)
	}
}

func TestParse_NoTables(t *testing.T) {
	_, err := Parse("notes.robot", []byte("just some prose\nwith no tables\n"))

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Path != "notes.robot" {
		t.Errorf("ParseError path = %q, want %q", perr.Path, "notes.robot")
	}
}

func TestParse_EmptyFile(t *testing.T) {
	_, err := Parse("empty.robot", []byte(""))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError for empty file, got %v", err)
	}
}

func TestParse_CommentsAndBlanksSkipped(t *testing.T) {
	src := `*** Test Cases ***
# a comment
My Test

    # indented comment
    No Operation
`
	suite, err := Parse("c.robot", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(suite.TestCases) != 1 {
		t.Fatalf("expected 1 testcase, got %d", len(suite.TestCases))
	}
	if len(suite.TestCases[0].Steps) != 1 {
		t.Errorf("expected 1 step, got %d", len(suite.TestCases[0].Steps))
	}
}

func TestParse_SingularSectionNames(t *testing.T) {
	src := `*** Setting ***
Documentation    short

*** Test Case ***
Only One
    Log    hi
`
	suite, err := Parse("s.robot", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if suite.Documentation != "short" {
		t.Errorf("documentation = %q, want %q", suite.Documentation, "short")
	}
	if len(suite.TestCases) != 1 {
		t.Errorf("expected 1 testcase, got %d", len(suite.TestCases))
	}
}
