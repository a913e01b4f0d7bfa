package services

import (
	"regexp"
	"testing"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Heritage", "Heritage"},
		{"Red Fort", "Heritage"},
		{"old palace ruins", "Heritage"},
		{"historic site", "Heritage"},
		{"Nature", "Nature"},
		{"waterfall", "Nature"},
		{"hill station", "Nature"},
		{"national park", "Nature"},
		{"trekking trail", "Adventure"},
		{"river rafting", "Nature"}, // "river" is checked before "rafting"
		{"base camp", "Adventure"},
		{"Religious", "Religious"},
		{"golden temple", "Religious"},
		{"jama mosque", "Religious"},
		{"Hill Temple", "Nature"}, // Nature group wins over Religious
		{"", "Heritage"},
		{"   ", "Heritage"},
		{"beach", "Heritage"}, // unmatched input falls back to Heritage
		{"ADVENTURE", "Adventure"},
		{"  nature  ", "Nature"},
	}

	for _, tt := range tests {
		if got := NormalizeCategory(tt.input); got != tt.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeCategoryAlwaysValid(t *testing.T) {
	valid := map[string]bool{}
	for _, category := range ValidCategories {
		valid[category] = true
	}

	inputs := []string{"", "xyz", "123", "Heritage", "fortress lake", "!!", "temple run", "a very long unmatched description of a place"}
	for _, input := range inputs {
		got := NormalizeCategory(input)
		if !valid[got] {
			t.Errorf("NormalizeCategory(%q) = %q, not a valid category", input, got)
		}
	}
}

func TestCategoryFilterPattern(t *testing.T) {
	pattern := CategoryFilterPattern("fort")
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		t.Fatalf("pattern %q does not compile: %v", pattern, err)
	}

	// Legacy stored variants of the Heritage category must match.
	for _, value := range []string{"fort", "Palace", "HISTORIC", "heritage"} {
		if !re.MatchString(value) {
			t.Errorf("pattern %q should match %q", pattern, value)
		}
	}

	// Values from other categories and partial words must not.
	for _, value := range []string{"temple", "lake", "fortress", "heritage site"} {
		if re.MatchString(value) {
			t.Errorf("pattern %q should not match %q", pattern, value)
		}
	}
}

func TestCategoryFilterPatternNormalizesFirst(t *testing.T) {
	if CategoryFilterPattern("trekking") != CategoryFilterPattern("Adventure") {
		t.Error("pattern for a synonym should equal the pattern for its category")
	}
	if CategoryFilterPattern("unknown thing") != CategoryFilterPattern("Heritage") {
		t.Error("unmatched input should produce the Heritage pattern")
	}
}
