package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atinyakov/url-cutter/internal/app/service"
)

func TestCodeGenerator(t *testing.T) {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	for _, length := range []int{1, 6, 12} {
		gen, err := service.NewCodeGenerator(length)
		require.NoError(t, err)

		for i := 0; i < 100; i++ {
			code := gen.Generate()
			require.Len(t, code, length)
			for _, r := range code {
				require.True(t, strings.ContainsRune(alphabet, r), "unexpected symbol %q", r)
			}
		}
	}
}

func TestCodeGenerator_UsesWholeAlphabet(t *testing.T) {
	gen, err := service.NewCodeGenerator(1)
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for i := 0; i < 10000; i++ {
		seen[gen.Generate()] = struct{}{}
	}
	require.Len(t, seen, 62)
}

func TestNewCodeGenerator_InvalidLength(t *testing.T) {
	_, err := service.NewCodeGenerator(0)
	require.ErrorIs(t, err, service.ErrInvalidInput)
}
