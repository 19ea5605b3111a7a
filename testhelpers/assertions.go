// Package testhelpers provides testing utilities for scaffkit,
// including a scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected branches.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	output, err := repo.RunGitCommandAndGetOutput("for-each-ref", "refs/heads/", "--format=%(refname:short)")
	require.NoError(t, err, "Failed to list branches")

	branches := []string{}
	for _, b := range strings.Split(output, "\n") {
		if b = strings.TrimSpace(b); b != "" {
			branches = append(branches, b)
		}
	}

	sort.Strings(branches)
	want := append([]string(nil), expected...)
	sort.Strings(want)

	require.Equal(t, want, branches, "Branches do not match")
}

// ExpectCommitMessage asserts the subject of the commit at rev.
func ExpectCommitMessage(t *testing.T, repo *GitRepo, rev, subject string) {
	t.Helper()
	output, err := repo.RunGitCommandAndGetOutput("log", "-1", "--format=%s", rev)
	require.NoError(t, err)
	require.Equal(t, subject, output)
}
