package fsops

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SearchSpec describes a single file search.
//
// Two matching modes are supported. Glob mode matches Pattern against paths
// under Root (with ** recursion when Recursive is set). Keyword mode
// additionally filters matches to basenames containing Keyword; when only a
// keyword is given the pattern defaults to "*". Matching never mutates the
// filesystem.
type SearchSpec struct {
	Pattern       string
	Root          string
	Recursive     bool
	Keyword       string
	CaseSensitive bool
	MaxResults    int
}

// Search finds files matching the spec and returns their absolute paths.
// A missing root yields an empty result and a *PathNotFoundError; it never
// raises past this boundary. Duplicate paths across overlapping patterns
// are possible and left to callers to tolerate.
func Search(spec SearchSpec) ([]string, error) {
	root := ExpandHome(spec.Root)
	if root == "" {
		root = "."
	}

	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, &PathNotFoundError{Path: root}
		}
		return nil, err
	}

	pattern := spec.Pattern
	if pattern == "" {
		pattern = "*"
	}
	if spec.Recursive && !strings.Contains(pattern, "**") {
		pattern = filepath.Join("**", pattern)
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
	if err != nil {
		return nil, err
	}

	var files []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		if !matchKeyword(filepath.Base(match), spec.Keyword, spec.CaseSensitive) {
			continue
		}
		abs, err := filepath.Abs(match)
		if err != nil {
			abs = match
		}
		files = append(files, abs)
		if spec.MaxResults > 0 && len(files) >= spec.MaxResults {
			break
		}
	}

	return files, nil
}

// matchKeyword reports whether name passes the keyword containment filter.
func matchKeyword(name, keyword string, caseSensitive bool) bool {
	if keyword == "" {
		return true
	}
	if caseSensitive {
		return strings.Contains(name, keyword)
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(keyword))
}

// ExpandHome resolves a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
