package reportpdf

import "testing"

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"blank kept as is", "   ", "   "},
		{"plain", "Revenue grew.", "Revenue grew."},
		{"emphasis", "**Revenue** grew *fast*.", "Revenue grew fast."},
		{"code span", "call `Generate` once", "call Generate once"},
		{"link", "see [the report](https://example.com/r)", "see the report"},
		{"autolink", "visit https://example.com now", "visit https://example.com now"},
		{"soft break", "line one\nline two", "line one line two"},
		{"heading and paragraph", "# Title\n\nBody text.", "Title\nBody text."},
		{"bullet list", "- first\n- second", "first\nsecond"},
		{"ordered list", "1. first\n2. second", "first\nsecond"},
		{"strikethrough", "~~old~~ new", "old new"},
		{"raw html dropped", "a <b>b</b> c", "a b c"},
		{"fenced code", "```\nx := 1\n```", "x := 1"},
		{"cjk", "**重點**：營收成長", "重點：營收成長"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := PlainText(tt.in); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
