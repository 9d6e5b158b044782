// Package parser owns the goldmark engine and drives the AST walk.
package parser

import (
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/prestodocs/typstify/internal/converter"
	"github.com/prestodocs/typstify/internal/sink"
)

// Parse parses markdown with a bare CommonMark engine and transcodes the
// resulting AST to Typst on out. No extensions are enabled, so tables,
// footnotes and strikethrough never reach the walker. The first write error
// on out aborts the walk and is returned.
func Parse(markdown []byte, out io.Writer) error {
	md := goldmark.New()

	reader := text.NewReader(markdown)
	node := md.Parser().Parse(reader)

	dst := sink.New(out)
	walker := converter.NewEventWalker(markdown, dst)

	if err := ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return walker.Walk(n, entering)
	}); err != nil {
		return err
	}
	return dst.Err()
}

// ParseAST parses markdown to an AST without transcoding it.
func ParseAST(markdown []byte) ast.Node {
	md := goldmark.New()
	return md.Parser().Parse(text.NewReader(markdown))
}
