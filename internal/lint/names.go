package lint

import "strings"

// NormalizeName lowercases a testcase or keyword name and strips
// spaces and underscores. Robot treats "Smoke Test", "Smoke_Test" and
// "SmokeTest" as the same name, so rules comparing names compare the
// normalized form.
func NormalizeName(name string) string {
	name = strings.ReplaceAll(name, " ", "")
	name = strings.ReplaceAll(name, "_", "")
	return strings.ToLower(name)
}
