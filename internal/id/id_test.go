package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugGenerator_Uniqueness(t *testing.T) {
	gen := NewSlugGenerator(DefaultSlugLength)
	slugs := make(map[string]bool)
	count := 1000

	for i := 0; i < count; i++ {
		slug, err := gen.Generate()
		require.NoError(t, err)
		assert.False(t, slugs[slug], "slug should be unique: %s", slug)
		slugs[slug] = true
	}

	assert.Len(t, slugs, count)
}

func TestSlugGenerator_Format(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   int
	}{
		{"default", DefaultSlugLength, 10},
		{"short", 6, 6},
		{"long", 32, 32},
		{"zero falls back", 0, DefaultSlugLength},
		{"negative falls back", -3, DefaultSlugLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewSlugGenerator(tt.length)

			slug, err := gen.Generate()
			require.NoError(t, err)
			assert.Len(t, slug, tt.want)

			for _, c := range slug {
				assert.True(t, strings.ContainsRune(SlugAlphabet, c), "character %c should be in alphabet", c)
			}
			assert.True(t, IsValidSlug(slug))
		})
	}
}

func TestSlugAlphabet_Has62Symbols(t *testing.T) {
	seen := make(map[rune]bool)
	for _, c := range SlugAlphabet {
		seen[c] = true
	}
	assert.Len(t, seen, 62)
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		slug string
		want bool
	}{
		{"aZ09bY18cX", true},
		{"aZ09bY", true},
		{strings.Repeat("a", MaxSlugLength), true},
		{"aZ09b", false},
		{strings.Repeat("a", MaxSlugLength+1), false},
		{"aZ09bY18c-", false},
		{"aZ09bY18c_", false},
		{"../etc/pwd", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidSlug(tt.slug), "slug %q", tt.slug)
	}
}

func BenchmarkSlugGenerator_Generate(b *testing.B) {
	gen := NewSlugGenerator(DefaultSlugLength)
	for i := 0; i < b.N; i++ {
		_, _ = gen.Generate()
	}
}
