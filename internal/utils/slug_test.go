package utils

import (
	"strings"
	"testing"
)

func TestNewSlugLength(t *testing.T) {
	slug := NewSlug()
	if len(slug) != SlugLength {
		t.Fatalf("expected %d characters, got %d (%q)", SlugLength, len(slug), slug)
	}
}

func TestNewSlugURLSafe(t *testing.T) {
	const allowed = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"
	for i := 0; i < 100; i++ {
		slug := NewSlug()
		for _, c := range slug {
			if !strings.ContainsRune(allowed, c) {
				t.Fatalf("slug %q contains non URL-safe character %q", slug, c)
			}
		}
	}
}

func TestNewSlugDistinct(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		slug := NewSlug()
		if slug == "" {
			t.Fatalf("empty slug")
		}
		if _, dup := seen[slug]; dup {
			t.Fatalf("duplicate slug %q after %d generations", slug, i)
		}
		seen[slug] = struct{}{}
	}
}
