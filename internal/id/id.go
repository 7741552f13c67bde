// Package id generates the random identifiers used in shareable invite links.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// SlugAlphabet is the 62-symbol URL-safe alphabet slugs are drawn from.
	SlugAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// DefaultSlugLength is the slug length used when none is configured.
	DefaultSlugLength = 10

	// Bounds on configurable slug length. Links minted under any length in
	// this range stay resolvable when the configured length changes.
	MinSlugLength = 6
	MaxSlugLength = 32
)

// SlugGenerator produces fixed-length slugs drawn uniformly from SlugAlphabet.
//
// Uniqueness is not checked here. Callers must treat a unique-constraint
// violation on insert as retryable and ask for a new slug.
type SlugGenerator struct {
	length int
}

// NewSlugGenerator creates a generator for slugs of the given length.
// A non-positive length falls back to DefaultSlugLength.
func NewSlugGenerator(length int) *SlugGenerator {
	if length <= 0 {
		length = DefaultSlugLength
	}
	return &SlugGenerator{length: length}
}

// Generate draws a new slug.
// Returns an error if the system has insufficient entropy for secure random generation.
func (g *SlugGenerator) Generate() (string, error) {
	slug, err := gonanoid.Generate(SlugAlphabet, g.length)
	if err != nil {
		return "", fmt.Errorf("generate slug: %w", err)
	}
	return slug, nil
}

// IsValidSlug reports whether s could have been produced by a SlugGenerator
// of any supported length. Path parameters failing this check cannot name a
// stored invite.
func IsValidSlug(s string) bool {
	if len(s) < MinSlugLength || len(s) > MaxSlugLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
