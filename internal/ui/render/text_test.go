package render

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean string untouched", "hello", "hello"},
		{"control chars dropped", "a\x07b\x1bc", "abc"},
		{"tab kept", "a\tb", "a\tb"},
		{"nbsp becomes space", "a\u00a0b", "a b"},
		{"invalid utf8 dropped", "a\xffb", "ab"},
		{"wide chars kept", "日本", "日本"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{
			name:     "no truncation needed",
			input:    "hello",
			maxWidth: 10,
			want:     "hello",
		},
		{
			name:     "exact fit",
			input:    "hello",
			maxWidth: 5,
			want:     "hello",
		},
		{
			name:     "truncation with ellipsis",
			input:    "hello world",
			maxWidth: 8,
			want:     "hello w…",
		},
		{
			name:     "empty string",
			input:    "",
			maxWidth: 10,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	if got := TruncateAndPad("hi", 5); got != "hi   " {
		t.Errorf("TruncateAndPad(hi, 5) = %q", got)
	}
	if got := TruncateAndPad("hello world", 6); got != "hello…" {
		t.Errorf("TruncateAndPad(hello world, 6) = %q", got)
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"ab", 5, " ab  "},
		{"abcdef", 4, "abcdef"},
	}

	for _, tt := range tests {
		if got := Center(tt.input, tt.width); got != tt.want {
			t.Errorf("Center(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	if len(got) != 20 {
		t.Errorf("Row length = %d, want 20", len(got))
	}
	if !strings.HasPrefix(got, "left") || !strings.HasSuffix(got, "right") {
		t.Errorf("Row = %q", got)
	}

	tight := Row("left", "right", 5)
	if tight != "left right" {
		t.Errorf("tight Row = %q, want a single-space gap", tight)
	}
}

func TestCanvas(t *testing.T) {
	lines := Canvas(3, 2)
	if len(lines) != 2 || lines[0] != "   " || lines[1] != "   " {
		t.Errorf("Canvas(3, 2) = %q", lines)
	}
	if got := Canvas(3, -1); len(got) != 0 {
		t.Errorf("Canvas with negative height = %q", got)
	}
}

func TestWrapLines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int
		maxLines int
		want     []string
	}{
		{
			name:     "fits",
			text:     "one\ntwo",
			maxWidth: 10,
			maxLines: 3,
			want:     []string{"one", "two"},
		},
		{
			name:     "long line truncated",
			text:     "abcdefghij",
			maxWidth: 5,
			maxLines: 3,
			want:     []string{"abcd…"},
		},
		{
			name:     "extra lines marked",
			text:     "a\nb\nc",
			maxWidth: 10,
			maxLines: 2,
			want:     []string{"a", "b …"},
		},
		{
			name:     "trailing newline ignored",
			text:     "a\n",
			maxWidth: 10,
			maxLines: 2,
			want:     []string{"a"},
		},
		{
			name:     "empty",
			text:     "",
			maxWidth: 10,
			maxLines: 2,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapLines(tt.text, tt.maxWidth, tt.maxLines)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("WrapLines(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		input    string
		maxWidth int
		want     string
	}{
		{"option height 12", 8, "…ight 12"},
		{"short", 8, "short"},
		{"anything", 0, ""},
	}

	for _, tt := range tests {
		if got := TruncateLeft(tt.input, tt.maxWidth); got != tt.want {
			t.Errorf("TruncateLeft(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
		}
	}
}

func TestPadStyled(t *testing.T) {
	styled := "\x1b[1mab\x1b[0m"
	got := PadStyled(styled, 5)
	if got != styled+"   " {
		t.Errorf("PadStyled = %q", got)
	}
	if PadStyled("abcdef", 3) != "abcdef" {
		t.Error("PadStyled should not cut")
	}
	if Width("日本") != 4 {
		t.Errorf("Width(日本) = %d, want 4", Width("日本"))
	}
}
