// Package gitmeta inspects git metadata for a project using go-git
package gitmeta

import (
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"golang.org/x/mod/semver"
)

// FindProjectRoot walks up from start to the enclosing git work tree
// root. A directory outside any repository is its own project root.
func FindProjectRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return abs, nil
	}

	worktree, err := repo.Worktree()
	if err != nil {
		// Bare repository; fall back to the starting directory
		return abs, nil
	}
	return worktree.Filesystem.Root(), nil
}

// LatestTag returns the highest-precedence semver tag carrying the given
// prefix, or an empty string when the project has no matching tags or is
// not a repository. Pre-release tags participate with their usual semver
// ordering (v1.2.3-rc1 precedes v1.2.3).
func LatestTag(projectRoot, prefix string) string {
	repo, err := git.PlainOpenWithOptions(projectRoot, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}

	tags, err := repo.Tags()
	if err != nil {
		return ""
	}

	var best, bestCanonical string
	_ = tags.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if !strings.HasPrefix(name, prefix) {
			return nil
		}
		canon := canonical(strings.TrimPrefix(name, prefix))
		if canon == "" {
			return nil
		}
		if best == "" || semver.Compare(bestCanonical, canon) < 0 {
			best = name
			bestCanonical = canon
		}
		return nil
	})

	return best
}

// CompareVersions compares two bare version strings ("1.2.3", "1.3.0-rc1")
// by semver precedence: negative when a precedes b, zero when equal. The
// second return is false when either string is not valid semver.
func CompareVersions(a, b string) (int, bool) {
	ca, cb := canonical(a), canonical(b)
	if ca == "" || cb == "" {
		return 0, false
	}
	return semver.Compare(ca, cb), true
}

// canonical normalizes a bare version to the "v"-prefixed form x/mod
// expects, or returns "" when it is not valid semver
func canonical(version string) string {
	v := "v" + strings.TrimPrefix(version, "v")
	if !semver.IsValid(v) {
		return ""
	}
	return v
}
