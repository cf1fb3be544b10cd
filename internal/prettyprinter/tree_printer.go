package prettyprinter

import (
	"bytes"
	"fmt"

	"github.com/forlang/forc/internal/term"
)

// --- Tree Printer (Output shows the combinator-tree structure) ---

// TreePrinter renders the structural shape of a desugared expression, one
// node per line, children indented. Used by snapshot tests and `forc -tree`.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) line(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteString("\n")
}

func (p *TreePrinter) child(label string, n term.Node) {
	p.line("%s:", label)
	p.indent++
	n.Accept(p)
	p.indent--
}

func (p *TreePrinter) VisitIdentifier(n *term.Identifier) {
	p.line("Identifier %q", n.Value)
}

func (p *TreePrinter) VisitRawExpr(n *term.RawExpr) {
	p.line("Raw %q", n.Text)
}

func (p *TreePrinter) VisitTupleLiteral(n *term.TupleLiteral) {
	p.line("Tuple")
	p.indent++
	for _, el := range n.Elements {
		el.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitIdentifierPattern(n *term.IdentifierPattern) {
	p.line("Pattern %q", n.Value)
}

func (p *TreePrinter) VisitWildcardPattern(n *term.WildcardPattern) {
	p.line("Pattern _")
}

func (p *TreePrinter) VisitTuplePattern(n *term.TuplePattern) {
	p.line("TuplePattern")
	p.indent++
	for _, el := range n.Elements {
		el.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitMapCall(n *term.MapCall) {
	p.line("Map")
	p.indent++
	p.child("source", n.Source)
	p.child("pattern", n.Pattern)
	p.child("body", n.Body)
	p.indent--
}

func (p *TreePrinter) VisitFlatMapCall(n *term.FlatMapCall) {
	p.line("FlatMap")
	p.indent++
	p.child("source", n.Source)
	p.child("pattern", n.Pattern)
	p.child("body", n.Body)
	p.indent--
}

func (p *TreePrinter) VisitWithFilterCall(n *term.WithFilterCall) {
	p.line("WithFilter")
	p.indent++
	p.child("source", n.Source)
	p.child("pattern", n.Pattern)
	p.child("cond", n.Cond)
	p.indent--
}

func (p *TreePrinter) VisitBindingBlock(n *term.BindingBlock) {
	p.line("Block")
	p.indent++
	for _, b := range n.Bindings {
		p.line("binding:")
		p.indent++
		b.Pattern.Accept(p)
		b.Value.Accept(p)
		p.indent--
	}
	p.child("body", n.Body)
	p.indent--
}
