package lint

// Suite is a parsed suite file (or directory suite). The tree is
// built once by the parser and is read-only afterwards: rules and
// the engine must never mutate it.
type Suite struct {
	Name          string
	Path          string
	Line          int
	Documentation string
	Tables        []Table
	TestCases     []*TestCase
	Keywords      []*Keyword
	Suites        []*Suite
}

// Table records a table header as written in the file, including
// headers that name no table robot recognizes. The parser keeps them
// all so rules can check the raw names.
type Table struct {
	Name string
	Line int
}

// TestCase is a named sequence of steps inside a Suite.
type TestCase struct {
	Name          string
	Line          int
	Documentation string
	Tags          []string
	Steps         []*Step
}

// Keyword is a user keyword defined in the suite file's keywords table.
type Keyword struct {
	Name  string
	Line  int
	Steps []*Step
}

// Step is a single keyword invocation inside a TestCase or Keyword.
type Step struct {
	Name string
	Args []string
	Line int
}
