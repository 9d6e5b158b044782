// Package converter turns goldmark AST traversal events into Typst markup.
package converter

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/prestodocs/typstify/internal/sink"
)

// EventWalker walks the goldmark AST in a single forward pass and writes the
// Typst rendition of each node to the sink. It keeps no state between events:
// nesting is carried entirely by the markup already written, trusting the
// parser's guarantee that every start node is matched by its end visit.
//
// Text runs, inline code and code block content are emitted verbatim. Typst
// treats `"`, `#`, `[` and `]` as significant, so documents containing them
// can produce broken markup. Escaping would change the output of every
// existing document, so this stays a known limitation for now.
type EventWalker struct {
	out    *sink.Sink
	source []byte
}

// NewEventWalker creates a walker emitting to out.
func NewEventWalker(source []byte, out *sink.Sink) *EventWalker {
	return &EventWalker{
		out:    out,
		source: source,
	}
}

// Walk handles one AST node visit. Node types outside the mapping fall
// through and emit nothing.
func (w *EventWalker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	// --- Inline elements ---
	case *ast.Text:
		if entering {
			w.onText(n.Segment, n.SoftLineBreak())
		}

	case *ast.String:
		if entering {
			w.out.WriteString(string(n.Value))
		}

	case *ast.CodeSpan:
		if entering {
			w.onInlineCode(n)
			// Children carry the same text; visiting them would double it.
			return w.status(ast.WalkSkipChildren)
		}

	case *ast.AutoLink:
		// The parser surfaces an autolink's address as text inside the
		// link, so it renders as plain text like any other run.
		if entering {
			w.out.WriteString(string(n.Label(w.source)))
			return w.status(ast.WalkSkipChildren)
		}

	case *ast.Emphasis:
		// Level 1 = emphasis, level 2 = strong.
		if entering {
			if n.Level == 2 {
				w.out.WriteString("#strong[")
			} else {
				w.out.WriteString("#emph[")
			}
		} else {
			w.out.WriteString("]")
		}

	// --- Block elements ---
	case *ast.Heading:
		if entering {
			w.out.Printf("#heading(level: %d)[", n.Level)
		} else {
			w.out.WriteString("]")
			w.out.BlankLine()
		}

	case *ast.Paragraph:
		if !entering {
			w.out.BlankLine()
		}

	case *ast.List:
		if !entering {
			w.out.Newline()
		}

	case *ast.ListItem:
		if entering {
			w.out.WriteString("- ")
		} else {
			w.out.Newline()
		}

	case *ast.ThematicBreak:
		if entering {
			w.out.WriteString("#line(length: 100%)")
			w.out.BlankLine()
		}

	case *ast.FencedCodeBlock:
		if entering {
			w.onCodeBlock(n)
			return w.status(ast.WalkSkipChildren)
		}

	case *ast.CodeBlock:
		if entering {
			w.onCodeBlock(n)
			return w.status(ast.WalkSkipChildren)
		}
	}

	return w.status(ast.WalkContinue)
}

// --- Text handling ---

func (w *EventWalker) onText(seg text.Segment, softBreak bool) {
	w.out.WriteString(string(seg.Value(w.source)))
	if softBreak {
		w.out.Newline()
	}
	// Hard breaks intentionally emit nothing.
}

func (w *EventWalker) onInlineCode(n *ast.CodeSpan) {
	w.out.WriteString(`#raw("`)
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if textNode, ok := c.(*ast.Text); ok {
			w.out.WriteString(string(textNode.Segment.Value(w.source)))
		}
	}
	w.out.WriteString(`")`)
}

// --- Code blocks ---

// onCodeBlock writes the whole block on entry: opening fence, the raw lines,
// closing fence. Both fenced and indented code blocks render the same way;
// the fence language is dropped.
func (w *EventWalker) onCodeBlock(n ast.Node) {
	w.out.WriteString("```\n")
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		w.out.WriteString(string(line.Value(w.source)))
	}
	w.out.WriteString("```")
	w.out.BlankLine()
}

// status folds the sink's sticky error into the walk result so a failed
// write aborts the traversal at the next visit.
func (w *EventWalker) status(st ast.WalkStatus) (ast.WalkStatus, error) {
	if err := w.out.Err(); err != nil {
		return ast.WalkStop, err
	}
	return st, nil
}
