// Package typstify converts Markdown documents into Typst source.
//
// The input may carry a YAML frontmatter block delimited by --- lines; its
// title, when present, becomes a centered title block ahead of the body.
//
// Main API:
//   - Convert(): transcode a Markdown body to Typst markup
//   - RenderDocument(): full pipeline — frontmatter split, metadata decode,
//     page setup, body transcode — streamed to a writer
//
// Example:
//
//	var buf bytes.Buffer
//	if err := typstify.RenderDocument(&buf, input); err != nil {
//	    // malformed frontmatter or a write failure
//	}
package typstify

import (
	"strings"

	"github.com/prestodocs/typstify/internal/parser"
)

// Convert transcodes a Markdown body (no frontmatter handling, no page
// setup) into Typst markup.
func Convert(markdown string) (string, error) {
	var sb strings.Builder
	if err := parser.Parse([]byte(markdown), &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
