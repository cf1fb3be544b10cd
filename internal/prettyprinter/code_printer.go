package prettyprinter

import (
	"bytes"

	"github.com/forlang/forc/internal/config"
	"github.com/forlang/forc/internal/term"
)

// --- Code Printer (Output looks like combinator-call source code) ---

// CodePrinter renders a desugared expression as combinator-call source:
//
//	xs.withFilter(x => x > 1).flatMap(x => ys.map(y => (x, y)))
//
// Binding blocks render single-line: { val a = 1; body }. The output is
// deterministic, so it doubles as the snapshot format for golden tests.
type CodePrinter struct {
	buf bytes.Buffer
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) VisitIdentifier(n *term.Identifier) {
	p.write(n.Value)
}

func (p *CodePrinter) VisitRawExpr(n *term.RawExpr) {
	p.write(n.Text)
}

func (p *CodePrinter) VisitTupleLiteral(n *term.TupleLiteral) {
	p.write("(")
	for i, el := range n.Elements {
		if i > 0 {
			p.write(", ")
		}
		el.Accept(p)
	}
	p.write(")")
}

func (p *CodePrinter) VisitIdentifierPattern(n *term.IdentifierPattern) {
	p.write(n.Value)
}

func (p *CodePrinter) VisitWildcardPattern(n *term.WildcardPattern) {
	p.write("_")
}

func (p *CodePrinter) VisitTuplePattern(n *term.TuplePattern) {
	p.write("(")
	for i, el := range n.Elements {
		if i > 0 {
			p.write(", ")
		}
		el.Accept(p)
	}
	p.write(")")
}

// printCall renders source.method(pattern => body). A binding-block source
// is parenthesized so the method call reads unambiguously.
func (p *CodePrinter) printCall(source term.Expression, method string, pattern term.Pattern, body term.Expression) {
	if _, isBlock := source.(*term.BindingBlock); isBlock {
		p.write("(")
		source.Accept(p)
		p.write(")")
	} else {
		source.Accept(p)
	}
	p.write(".")
	p.write(method)
	p.write("(")
	pattern.Accept(p)
	p.write(" => ")
	body.Accept(p)
	p.write(")")
}

func (p *CodePrinter) VisitMapCall(n *term.MapCall) {
	p.printCall(n.Source, config.MapMethodName, n.Pattern, n.Body)
}

func (p *CodePrinter) VisitFlatMapCall(n *term.FlatMapCall) {
	p.printCall(n.Source, config.FlatMapMethodName, n.Pattern, n.Body)
}

func (p *CodePrinter) VisitWithFilterCall(n *term.WithFilterCall) {
	p.printCall(n.Source, config.WithFilterMethodName, n.Pattern, n.Cond)
}

func (p *CodePrinter) VisitBindingBlock(n *term.BindingBlock) {
	p.write("{ ")
	for _, b := range n.Bindings {
		p.write("val ")
		b.Pattern.Accept(p)
		p.write(" = ")
		b.Value.Accept(p)
		p.write("; ")
	}
	n.Body.Accept(p)
	p.write(" }")
}
