package htmlmd

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// looksLikeHTML is a cheap sniff test: tool output and file payloads are
// HTML only some of the time, and running every plain-text payload through
// the converter would be wasted work.
func looksLikeHTML(s string) bool {
	trimmed := strings.TrimSpace(s)
	return strings.HasPrefix(trimmed, "<") && strings.Contains(trimmed, ">")
}

// Convert renders s as Markdown if it looks like HTML, and returns it
// unchanged otherwise.
func Convert(s string) (string, error) {
	if !looksLikeHTML(s) {
		return s, nil
	}
	markdown, err := htmltomarkdown.ConvertString(s)
	if err != nil {
		return "", fmt.Errorf("htmlmd: convert: %w", err)
	}
	return markdown, nil
}
