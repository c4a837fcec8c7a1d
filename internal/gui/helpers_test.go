//go:build cgo
// +build cgo

package gui

import (
	"strings"
	"testing"
	"time"

	"github.com/appengine-ltd/pondside/internal/store"
)

func TestTruncateForUI(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"carp", 10, "carp"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a long species name", 10, "a long ..."},
		{"abcdef", 3, "abc"},
		{"", 5, ""},
	}
	for _, c := range cases {
		if got := truncateForUI(c.in, c.max); got != c.want {
			t.Fatalf("truncateForUI(%q, %d) = %q, want %q", c.in, c.max, got, c.want)
		}
	}
}

func TestRecordLineTruncatesLongNames(t *testing.T) {
	c := store.Catch{
		SpeciesID: strings.Repeat("x", 30),
		SizeCm:    42,
		CaughtAt:  time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC),
	}
	line := recordLine(c)
	if !strings.Contains(line, strings.Repeat("x", 19)+"...") {
		t.Fatalf("long name not truncated: %q", line)
	}
	if strings.Contains(line, strings.Repeat("x", 20)) {
		t.Fatalf("name exceeds the column: %q", line)
	}
	if !strings.Contains(line, "42 cm") {
		t.Fatalf("size missing from %q", line)
	}
}

func TestWrapIndex(t *testing.T) {
	cases := []struct {
		i, size, want int
	}{
		{0, 5, 0},
		{5, 5, 0},
		{-1, 5, 4},
		{7, 5, 2},
		{3, 0, 0},
	}
	for _, c := range cases {
		if got := wrapIndex(c.i, c.size); got != c.want {
			t.Fatalf("wrapIndex(%d, %d) = %d, want %d", c.i, c.size, got, c.want)
		}
	}
}
