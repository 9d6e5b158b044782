package converter

import (
	"github.com/prestodocs/typstify/internal/sink"
	"github.com/prestodocs/typstify/internal/types"
)

// WritePageSetup emits the document-wide Typst setup directives, then the
// title block when the metadata carries a non-empty title. The title is
// written verbatim, including any quote characters (see the escaping note on
// EventWalker).
func WritePageSetup(out *sink.Sink, meta types.Metadata, cfg *types.RenderConfig) {
	out.Printf("#set page(paper: \"%s\")\n", cfg.Paper)
	out.Printf("#set text(font: \"%s\", size: %s, lang: \"%s\")\n", cfg.Font, cfg.FontSize, cfg.Lang)
	out.Printf("#set par(leading: %s, first-line-indent: %s)\n", cfg.Leading, cfg.FirstLineIndent)
	out.Newline()

	if meta.Title == "" {
		return
	}

	out.Printf("#let title = \"%s\"\n", meta.Title)
	out.Newline()
	out.Printf("#align(center, text(size: %s, weight: \"bold\")[%s])\n", cfg.TitleSize, meta.Title)
	out.WriteString("#v(1em)\n")
	out.Newline()
}
