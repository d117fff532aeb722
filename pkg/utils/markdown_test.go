package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdownHeadingAndList(t *testing.T) {
	html, err := RenderMarkdown("# Day 1\n\n- Eiffel Tower\n- Louvre")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "Day 1") {
		t.Errorf("expected rendered heading, got %q", html)
	}
	if !strings.Contains(html, "<li>Eiffel Tower</li>") {
		t.Errorf("expected rendered list item, got %q", html)
	}
}

func TestRenderMarkdownHardLineBreaks(t *testing.T) {
	html, err := RenderMarkdown("line one\nline two")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "<br") {
		t.Errorf("expected single newline to render as <br>, got %q", html)
	}
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	html, err := RenderMarkdown("hello <script>alert('x')</script> world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script") || strings.Contains(html, "alert(") {
		t.Errorf("expected script content to be sanitized away, got %q", html)
	}
}

func TestRenderMarkdownGFMTable(t *testing.T) {
	html, err := RenderMarkdown("| Day | Cost |\n| --- | --- |\n| 1 | $40 |")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "<table") {
		t.Errorf("expected GFM table rendering, got %q", html)
	}
}
