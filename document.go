package typstify

import (
	"io"

	"github.com/prestodocs/typstify/internal/converter"
	"github.com/prestodocs/typstify/internal/parser"
	"github.com/prestodocs/typstify/internal/sink"
)

// RenderDocument converts a complete input document — optional YAML
// frontmatter followed by a Markdown body — into Typst source on w.
//
// A non-empty frontmatter block that is not valid YAML is an error; a
// missing closing delimiter is not, the whole input is then treated as body.
// Write failures on w abort the render and whatever was already written
// stays written.
func RenderDocument(w io.Writer, input string, opts ...Option) error {
	options := applyOptions(opts...)

	fm, body := SplitFrontmatter(input)
	meta, err := DecodeMetadata(fm)
	if err != nil {
		return err
	}

	out := sink.New(w)
	converter.WritePageSetup(out, meta, options.Config)
	if err := out.Err(); err != nil {
		return err
	}

	return parser.Parse([]byte(body), w)
}
