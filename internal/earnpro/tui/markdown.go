package tui

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownCache memoizes glamour renders keyed by content hash and
// width. Task descriptions are static, so re-rendering on every frame
// would be wasted work.
type MarkdownCache struct {
	entries map[string]string
}

func NewMarkdownCache() *MarkdownCache {
	return &MarkdownCache{entries: map[string]string{}}
}

func (c *MarkdownCache) Render(input string, width int) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	key := cacheKey(input, width)
	if out, ok := c.entries[key]; ok {
		return out
	}
	out, err := renderMarkdown(input, width)
	if err != nil {
		// Fall back to the raw text rather than losing the description.
		out = input
	}
	c.entries[key] = out
	return out
}

func cacheKey(input string, width int) string {
	h := fnv.New64a()
	h.Write([]byte(input))
	return fmt.Sprintf("%d:%x", width, h.Sum64())
}

func renderMarkdown(input string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithWordWrap(width),
		glamour.WithStandardStyle("dark"),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(input)
}
