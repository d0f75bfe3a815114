package scan

import (
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// IgnoreFileName is an optional gitignore-syntax file at the repo root that
// adds rules on top of the builtin substring patterns.
const IgnoreFileName = ".autogitignore"

var defaultIgnorePatterns = []string{
	".git",
	"__pycache__",
	"node_modules",
	".env",
	".venv",
	".vscode",
	".idea",
	".DS_Store",
	".autogit.yml",
}

// IgnoreList decides which paths are excluded from snapshots. Builtin
// patterns match as plain substrings of the relative path; the repo-local
// ignore file is matched with gitignore semantics.
type IgnoreList struct {
	patterns []string
	ignore   *gitignore.GitIgnore
}

// NewIgnoreList builds the ignore list for repoDir. The extra patterns are
// appended to the builtin substring set. A missing ignore file is fine.
func NewIgnoreList(repoDir string, extra ...string) *IgnoreList {
	patterns := make([]string, 0, len(defaultIgnorePatterns)+len(extra))
	patterns = append(patterns, defaultIgnorePatterns...)
	patterns = append(patterns, extra...)

	ign, err := gitignore.CompileIgnoreFile(filepath.Join(repoDir, IgnoreFileName))
	if err != nil {
		ign = nil
	}

	return &IgnoreList{patterns: patterns, ignore: ign}
}

func (l *IgnoreList) ShouldIgnore(relPath string) bool {
	for _, pattern := range l.patterns {
		if strings.Contains(relPath, pattern) {
			return true
		}
	}
	if l.ignore != nil && l.ignore.MatchesPath(relPath) {
		return true
	}
	return false
}
