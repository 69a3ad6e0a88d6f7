// Package rflint exposes the documented rule catalog of the linter.
// The authoritative rule implementations live under internal/rules;
// this package pairs each registered rule with its embedded
// documentation for the `rflint rules` and `rflint help rule`
// commands.
package rflint

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/guykisel/robotframework-lint/internal/rule"

	// Import all rule packages so their init() functions register rules.
	_ "github.com/guykisel/robotframework-lint/internal/rules/duplicatekeywordnames"
	_ "github.com/guykisel/robotframework-lint/internal/rules/duplicatetestnames"
	_ "github.com/guykisel/robotframework-lint/internal/rules/invalidtable"
	_ "github.com/guykisel/robotframework-lint/internal/rules/periodinsuitename"
	_ "github.com/guykisel/robotframework-lint/internal/rules/periodintestname"
	_ "github.com/guykisel/robotframework-lint/internal/rules/requiresuitedocumentation"
	_ "github.com/guykisel/robotframework-lint/internal/rules/requiretestdocumentation"
	_ "github.com/guykisel/robotframework-lint/internal/rules/toomanyarguments"
	_ "github.com/guykisel/robotframework-lint/internal/rules/toomanytestcases"
	_ "github.com/guykisel/robotframework-lint/internal/rules/toomanyteststeps"
)

//go:embed docs/rules/*.md
var ruleDocs embed.FS

// RuleInfo describes one documented rule.
type RuleInfo struct {
	Name        string
	Level       string
	Severity    string
	Description string
}

// ListRules returns every registered rule with its level, default
// severity and the first paragraph of its documentation, sorted by
// name.
func ListRules() ([]RuleInfo, error) {
	reg := rule.Default()

	var infos []RuleInfo
	for _, rl := range reg.All() {
		info := RuleInfo{
			Name:     rl.Name(),
			Level:    string(rl.Level()),
			Severity: string(rl.DefaultSeverity()),
		}

		content, err := ruleDocs.ReadFile("docs/rules/" + rl.Name() + ".md")
		if err != nil {
			return nil, fmt.Errorf("rule %s has no documentation file: %w", rl.Name(), err)
		}
		info.Description = firstParagraph(content)

		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// LookupRule returns the full documentation for the rule matching
// query (case-insensitive).
func LookupRule(query string) (string, error) {
	entries, err := fs.ReadDir(ruleDocs, "docs/rules")
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".md")
		if !strings.EqualFold(name, query) {
			continue
		}
		content, err := ruleDocs.ReadFile("docs/rules/" + entry.Name())
		if err != nil {
			return "", err
		}
		return string(content), nil
	}

	return "", fmt.Errorf("no rule matching %q", query)
}

// firstParagraph extracts the text of the first paragraph of a
// Markdown document.
func firstParagraph(source []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		p, ok := n.(*ast.Paragraph)
		if !ok {
			continue
		}

		var buf bytes.Buffer
		lines := p.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			if buf.Len() > 0 {
				buf.WriteByte(' ')
			}
			buf.Write(bytes.TrimSpace(seg.Value(source)))
		}
		return buf.String()
	}
	return ""
}
