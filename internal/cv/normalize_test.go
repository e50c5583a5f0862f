// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package cv

import (
	"reflect"
	"testing"
	"time"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "Go, TypeScript, SQL", []string{"Go", "TypeScript", "SQL"}},
		{"extra whitespace", "  Go ,  TypeScript  ", []string{"Go", "TypeScript"}},
		{"empty items dropped", "Go,,TypeScript,", []string{"Go", "TypeScript"}},
		{"empty string", "", []string{}},
		{"only separators", ", ,,", []string{}},
		{"single item", "Kubernetes", []string{"Kubernetes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitListRoundTrip(t *testing.T) {
	// The raw field is stored verbatim; the split is derived on read and
	// must be stable across repeated derivation.
	raw := "TypeScript, GraphQL , PostgreSQL,Azure"
	first := SplitList(raw)
	second := SplitList(raw)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("SplitList is not deterministic: %v vs %v", first, second)
	}
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("2021-03")
	if err != nil {
		t.Fatalf("ParseMonth: %v", err)
	}
	want := time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseMonth(2021-03) = %v, want %v", got, want)
	}
}

func TestParseMonthInvalid(t *testing.T) {
	for _, input := range []string{"", "2021", "2021-3", "2021-13", "2021-03-01", "march 2021"} {
		if _, err := ParseMonth(input); err == nil {
			t.Errorf("ParseMonth(%q) should fail", input)
		}
	}
}

func TestMonthValueRoundTrip(t *testing.T) {
	for _, input := range []string{"1999-01", "2021-12", "2024-06"} {
		parsed, err := ParseMonth(input)
		if err != nil {
			t.Fatalf("ParseMonth(%q): %v", input, err)
		}
		if got := MonthValue(parsed); got != input {
			t.Errorf("MonthValue(ParseMonth(%q)) = %q", input, got)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"OpsCanvas", "opscanvas"},
		{"Telemetry Kit", "telemetry-kit"},
		{"Zażółć gęślą jaźń", "zazolc-gesla-jazn"},
		{"  spaces  everywhere  ", "spaces-everywhere"},
		{"C++ & Go!", "c-go"},
		{"already-a-slug", "already-a-slug"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"ops-canvas", "a", "x1-y2"}
	invalid := []string{"", "Ops-Canvas", "with space", "under_score", "émigré"}

	for _, s := range valid {
		if !IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = true, want false", s)
		}
	}
}
