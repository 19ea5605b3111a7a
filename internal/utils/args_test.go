package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"plain", []string{"a", "b"}, []string{"a", "b"}},
		{"comma separated", []string{"a,b", "c"}, []string{"a", "b", "c"}},
		{"whitespace and empties", []string{"  a , ,b ", "", " "}, []string{"a", "b"}},
		{"trailing comma", []string{"x,"}, []string{"x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CanonicalArgs(tt.in))
		})
	}
}

func TestUniqueStrings(t *testing.T) {
	require.Equal(t, []string{"b", "a"}, UniqueStrings([]string{"b", "a", "b", "a"}))
	require.Empty(t, UniqueStrings(nil))
}

func TestMissingStrings(t *testing.T) {
	require.Equal(t, []string{"c"}, MissingStrings([]string{"a", "b"}, []string{"b", "c"}))
	require.Nil(t, MissingStrings([]string{"a"}, []string{"a", "a"}))
}

func TestIsInteractiveCanBeDisabled(t *testing.T) {
	t.Setenv("SCAFFKIT_NON_INTERACTIVE", "1")
	require.False(t, IsInteractive())
}
