// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package document

import "testing"

func TestSplitAtColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		line   string
		column int
		before string
		after  string
	}{
		{"start", "hello", 0, "", "hello"},
		{"middle", "hello", 2, "he", "llo"},
		{"end", "hello", 5, "hello", ""},
		{"past end clamps", "hello", 99, "hello", ""},
		{"negative clamps", "hello", -3, "", "hello"},
		{"empty line", "", 4, "", ""},
		// é is one UTF-16 unit but two UTF-8 bytes.
		{"multibyte rune", "café!", 4, "café", "!"},
		// 𝟘 (U+1D7D8) is a surrogate pair: two UTF-16 units.
		{"after surrogate pair", "a𝟘b", 3, "a𝟘", "b"},
		// Column 2 lands inside the pair and rounds down.
		{"inside surrogate pair", "a𝟘b", 2, "a", "𝟘b"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			before, after := SplitAtColumn(test.line, test.column)
			if before != test.before || after != test.after {
				t.Errorf("SplitAtColumn(%q, %d) = %q, %q, want %q, %q",
					test.line, test.column, before, after, test.before, test.after)
			}
		})
	}
}

func TestUTF16Length(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"café", 4},
		{"a𝟘b", 4},
	}

	for _, test := range tests {
		test := test
		if got := UTF16Length(test.line); got != test.want {
			t.Errorf("UTF16Length(%q) = %d, want %d", test.line, got, test.want)
		}
	}
}

func TestClampLine(t *testing.T) {
	t.Parallel()

	snapshot := NewMemory("f.txt", "", 1, []string{"a", "b", "c"})

	tests := []struct {
		line int
		want int
	}{
		{-5, 0},
		{0, 0},
		{2, 2},
		{3, 2},
		{100, 2},
	}

	for _, test := range tests {
		test := test
		if got := ClampLine(snapshot, test.line); got != test.want {
			t.Errorf("ClampLine(%d) = %d, want %d", test.line, got, test.want)
		}
	}
}

func TestRangeNormalized(t *testing.T) {
	t.Parallel()

	forward := Range{
		Start: Position{Line: 1, Column: 4},
		End:   Position{Line: 3, Column: 0},
	}
	if got := forward.Normalized(); got != forward {
		t.Errorf("forward range changed: got %+v", got)
	}

	reversed := Range{Start: forward.End, End: forward.Start}
	if got := reversed.Normalized(); got != forward {
		t.Errorf("reversed range = %+v, want %+v", got, forward)
	}

	// Same line, columns out of order.
	sameLine := Range{
		Start: Position{Line: 2, Column: 9},
		End:   Position{Line: 2, Column: 1},
	}
	want := Range{
		Start: Position{Line: 2, Column: 1},
		End:   Position{Line: 2, Column: 9},
	}
	if got := sameLine.Normalized(); got != want {
		t.Errorf("same-line range = %+v, want %+v", got, want)
	}
}

func TestPositionBefore(t *testing.T) {
	t.Parallel()

	a := Position{Line: 1, Column: 5}
	b := Position{Line: 2, Column: 0}
	c := Position{Line: 1, Column: 6}

	if !a.Before(b) {
		t.Error("earlier line should order before later line")
	}
	if !a.Before(c) {
		t.Error("same line, smaller column should order before")
	}
	if a.Before(a) {
		t.Error("a position does not order before itself")
	}
	if b.Before(a) {
		t.Error("later line should not order before earlier line")
	}
}
