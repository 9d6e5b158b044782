package typstify

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SplitFrontmatter separates a leading frontmatter block (between ---
// delimiter lines) from the document body.
//
// The opening --- must be the literal first line. When it is absent, or when
// no closing delimiter follows, the frontmatter is empty and the body is the
// whole input; an unterminated block is tolerated, never an error. The line
// break after the closing delimiter is stripped so the body does not start
// with a blank line.
func SplitFrontmatter(input string) (frontmatter, body string) {
	var rest string
	switch {
	case strings.HasPrefix(input, "---\n"):
		rest = input[4:]
	case strings.HasPrefix(input, "---\r\n"):
		rest = input[5:]
	default:
		return "", input
	}

	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return "", input
	}

	after := rest[idx+4:]
	switch {
	case strings.HasPrefix(after, "\r\n"):
		after = after[2:]
	case strings.HasPrefix(after, "\n"):
		after = after[1:]
	}
	return rest[:idx], after
}

// DecodeMetadata decodes a frontmatter block into Metadata. Empty input
// yields the zero Metadata without touching the YAML decoder. Unknown keys
// are dropped; the title value is taken verbatim.
func DecodeMetadata(frontmatter string) (Metadata, error) {
	var meta Metadata
	if frontmatter == "" {
		return meta, nil
	}
	if err := yaml.Unmarshal([]byte(frontmatter), &meta); err != nil {
		return Metadata{}, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, nil
}
