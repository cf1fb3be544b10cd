package term

// Visitor visits every concrete node kind of the term model. Printers and
// other consumers implement it; new node kinds extend it so all consumers
// are checked at compile time.
type Visitor interface {
	VisitIdentifier(n *Identifier)
	VisitTupleLiteral(n *TupleLiteral)
	VisitRawExpr(n *RawExpr)

	VisitIdentifierPattern(n *IdentifierPattern)
	VisitTuplePattern(n *TuplePattern)
	VisitWildcardPattern(n *WildcardPattern)

	VisitMapCall(n *MapCall)
	VisitFlatMapCall(n *FlatMapCall)
	VisitWithFilterCall(n *WithFilterCall)
	VisitBindingBlock(n *BindingBlock)
}
