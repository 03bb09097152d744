package md2site

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter(serviceConfig{})

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:  "basic heading",
			input: "# Hello World",
			wantContains: []string{
				"<h1",
				"Hello World",
				"</h1>",
			},
			wantNot: []string{
				"<!DOCTYPE html>", // fragment only; the template supplies the shell
				"<body>",
			},
		},
		{
			name:  "headings carry IDs",
			input: "# First\n\n## Second",
			wantContains: []string{
				"<h1",
				"<h2",
				`id="`,
			},
		},
		{
			name:  "GFM table",
			input: "| A | B |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{
				"<table>",
				"<thead>",
				"<tbody>",
				"<th>",
				"<td>",
			},
		},
		{
			name:  "GFM strikethrough",
			input: "~~deleted~~",
			wantContains: []string{
				"<del>",
				"deleted",
				"</del>",
			},
		},
		{
			name:  "GFM autolink",
			input: "Visit https://example.com for more",
			wantContains: []string{
				"<a href=\"https://example.com\"",
			},
		},
		{
			name:  "GFM task list",
			input: "- [x] Done\n- [ ] Todo",
			wantContains: []string{
				"<input",
				"checked",
				"type=\"checkbox\"",
			},
		},
		{
			name:  "footnote",
			input: "Text[^1]\n\n[^1]: Footnote content",
			wantContains: []string{
				"<sup",
				"footnote",
			},
		},
		{
			name:  "code block with syntax highlighting classes",
			input: "```go\nfunc main() {}\n```",
			wantContains: []string{
				"<pre",
				"chroma",
				"func",
			},
		},
		{
			name:  "inline code",
			input: "Use `fmt.Println` function",
			wantContains: []string{
				"<code>",
				"fmt.Println",
				"</code>",
			},
		},
		{
			name:  "bold and italic",
			input: "**bold** and *italic*",
			wantContains: []string{
				"<strong>",
				"bold",
				"<em>",
				"italic",
			},
		},
		{
			name:  "raw HTML is escaped by default",
			input: "before\n\n<div>raw</div>\n\nafter",
			wantNot: []string{
				"<div>raw</div>",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}

			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML(%q) missing %q in output:\n%s", tt.input, want, got)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("ToHTML(%q) unexpectedly contains %q in output:\n%s", tt.input, not, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_RawHTML(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter(serviceConfig{rawHTML: true})

	got, err := conv.ToHTML(context.Background(), "before\n\n<div class=\"note\">raw</div>\n\nafter")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if !strings.Contains(got, `<div class="note">raw</div>`) {
		t.Errorf("raw HTML not passed through:\n%s", got)
	}
}

func TestGoldmarkConverter_HardWraps(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter(serviceConfig{hardWraps: true})

	got, err := conv.ToHTML(context.Background(), "Line one\nLine two")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if !strings.Contains(got, "<br") {
		t.Errorf("hard wraps not rendered as <br>:\n%s", got)
	}
}

func TestGoldmarkConverter_CombinedRendererOptions(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter(serviceConfig{hardWraps: true, rawHTML: true})

	got, err := conv.ToHTML(context.Background(), "Line one\nLine two\n\n<span>raw</span>")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if !strings.Contains(got, "<br") {
		t.Errorf("hard wraps not applied alongside raw HTML:\n%s", got)
	}
	if !strings.Contains(got, "<span>raw</span>") {
		t.Errorf("raw HTML not applied alongside hard wraps:\n%s", got)
	}
}

func TestGoldmarkConverter_CanceledContext(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter(serviceConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := conv.ToHTML(ctx, "# Hello"); err == nil {
		t.Error("ToHTML() with canceled context should fail")
	}
}

func TestGoldmarkConverter_Deterministic(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter(serviceConfig{})
	input := "# Title\n\nSome *text* with `code`.\n\n```go\nvar x int\n```"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	first, err := conv.ToHTML(ctx, input)
	if err != nil {
		t.Fatalf("first ToHTML() error = %v", err)
	}
	second, err := conv.ToHTML(ctx, input)
	if err != nil {
		t.Fatalf("second ToHTML() error = %v", err)
	}
	if first != second {
		t.Error("ToHTML() output differs between identical runs")
	}
}
