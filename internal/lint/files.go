package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IsSuiteFile returns true if the file extension is one Robot Framework
// uses for plain-text suites.
func IsSuiteFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".robot", ".resource", ".txt":
		return true
	}
	return false
}

// hasGlobChars returns true if the string contains glob meta-characters.
func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// ResolveFiles takes positional arguments and returns deduplicated suite
// file paths in argument order. It supports individual files, directories
// (walked recursively for suite files), and doublestar glob patterns.
// Returns an error for nonexistent paths that are not glob patterns.
//
// Files within one directory or glob expansion are sorted so that runs
// over the same tree are reproducible; the relative order of the
// arguments themselves is preserved.
func ResolveFiles(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	addFile := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if !seen[abs] {
			seen[abs] = true
			result = append(result, path)
		}
	}

	for _, arg := range args {
		if err := resolveArg(arg, addFile); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// resolveArg resolves a single argument (glob, directory, or file) and
// calls addFile for each suite file found.
func resolveArg(arg string, addFile func(string)) error {
	if hasGlobChars(arg) {
		return resolveGlob(arg, addFile)
	}

	info, err := os.Stat(arg)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", arg, err)
	}

	if info.IsDir() {
		return addDirFiles(arg, addFile)
	}

	// Explicitly named files are accepted regardless of extension:
	// when the user names a file, they mean it.
	addFile(arg)
	return nil
}

// resolveGlob expands a doublestar pattern against the filesystem and
// adds every matching suite file.
func resolveGlob(pattern string, addFile func(string)) error {
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid glob pattern %q", pattern)
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("expanding glob %q: %w", pattern, err)
	}

	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if IsSuiteFile(m) {
			addFile(m)
		}
	}
	return nil
}

// addDirFiles walks a directory recursively and adds every suite file.
func addDirFiles(dir string, addFile func(string)) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if IsSuiteFile(path) {
			addFile(path)
		}
		return nil
	})
}
