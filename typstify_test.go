package typstify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireInOrder asserts that each part occurs in output, in order, each
// after the previous one.
func requireInOrder(t *testing.T, output string, parts ...string) {
	t.Helper()
	pos := 0
	for _, part := range parts {
		idx := strings.Index(output[pos:], part)
		require.GreaterOrEqual(t, idx, 0, "missing %q after offset %d in output:\n%s", part, pos, output)
		pos += idx + len(part)
	}
}

func convert(t *testing.T, markdown string) string {
	t.Helper()
	out, err := Convert(markdown)
	require.NoError(t, err)
	return out
}

func TestConvert_Heading(t *testing.T) {
	assert.Equal(t, "#heading(level: 1)[Heading]\n\n", convert(t, "# Heading\n"))
	assert.Equal(t, "#heading(level: 3)[Third]\n\n", convert(t, "### Third\n"))
}

func TestConvert_Paragraph(t *testing.T) {
	assert.Equal(t, "just text.\n\n", convert(t, "just text.\n"))
}

func TestConvert_SoftBreak(t *testing.T) {
	assert.Equal(t, "line one\nline two\n\n", convert(t, "line one\nline two\n"))
}

func TestConvert_Emphasis(t *testing.T) {
	out := convert(t, "Some *italic* and **bold** text.\n")
	assert.Equal(t, "Some #emph[italic] and #strong[bold] text.\n\n", out)
}

func TestConvert_List(t *testing.T) {
	assert.Equal(t, "- a\n- b\n\n", convert(t, "- a\n- b\n"))
}

func TestConvert_LooseList(t *testing.T) {
	// Loose list items wrap their content in paragraphs.
	out := convert(t, "- a\n\n- b\n")
	requireInOrder(t, out, "- a\n\n", "- b\n\n")
}

func TestConvert_Rule(t *testing.T) {
	assert.Equal(t, "#line(length: 100%)\n\n", convert(t, "***\n"))
}

func TestConvert_InlineCode(t *testing.T) {
	// Content is wrapped in quotes verbatim, with no escaping.
	assert.Equal(t, `#raw("x < y")`+"\n\n", convert(t, "`x < y`\n"))
}

func TestConvert_CodeBlock(t *testing.T) {
	out := convert(t, "```\nx = 1\n```\n")
	assert.Equal(t, "```\nx = 1\n```\n\n", out)
}

func TestConvert_CodeBlock_LanguageDropped(t *testing.T) {
	out := convert(t, "```python\nprint(1)\n```\n")
	assert.Equal(t, "```\nprint(1)\n```\n\n", out)
}

func TestConvert_IndentedCodeBlock(t *testing.T) {
	out := convert(t, "    x = 1\n")
	assert.Equal(t, "```\nx = 1\n```\n\n", out)
}

func TestConvert_UnhandledNodes_NoOutput(t *testing.T) {
	// HTML blocks are the one core-CommonMark construct that produces no
	// recognized node at all.
	assert.Empty(t, convert(t, "<div>\nignored\n</div>\n"))
	assert.Empty(t, convert(t, ""))
}

func TestConvert_Autolink(t *testing.T) {
	// The address renders as plain text, with no link markup around it.
	assert.Equal(t, "https://example.com\n\n", convert(t, "<https://example.com>\n"))
	assert.Equal(t, "user@example.com\n\n", convert(t, "<user@example.com>\n"))
}

func TestConvert_InlineHTMLIgnored(t *testing.T) {
	// Raw HTML tags vanish, their surrounding text survives.
	assert.Equal(t, "a x c\n\n", convert(t, "a <b>x</b> c\n"))
}

func TestConvert_TextPassthrough(t *testing.T) {
	// Typst-significant characters are not escaped.
	out := convert(t, `quotes " and brackets [ ] pass through`+"\n")
	assert.Equal(t, `quotes " and brackets [ ] pass through`+"\n\n", out)
}
