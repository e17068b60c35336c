package tui

import (
	"strings"
	"sync"

	"charm.land/glamour/v2"
)

// Summary markdown is re-rendered on every frame of the review step, so the
// renderer for the last width is kept.
var markdownCache struct {
	sync.Mutex
	width    int
	renderer *glamour.TermRenderer
}

func markdownRenderer(width int) (*glamour.TermRenderer, error) {
	markdownCache.Lock()
	defer markdownCache.Unlock()

	if markdownCache.renderer != nil && markdownCache.width == width {
		return markdownCache.renderer, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	markdownCache.width = width
	markdownCache.renderer = r
	return r, nil
}

// renderMarkdown renders markdown with glamour, wrapped to width clamped
// to [20, 100]. Falls back to the raw content if rendering fails.
func renderMarkdown(content string, width int) string {
	width = min(max(width, 20), 100)

	r, err := markdownRenderer(width)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSuffix(rendered, "\n")
}
