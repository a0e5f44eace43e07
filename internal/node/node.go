// Package node defines the small syntax-node capability trait the
// indentation and brace walkers are polymorphic over. The one adapter
// implementation wraps github.com/smacker/go-tree-sitter's *sitter.Node;
// the textual fallback works on raw source lines and does not use this
// trait.
package node

// SyntaxNode is the capability set every walker needs from a parse-tree
// node: its kind, named and raw children, field-keyed child lookup,
// source text, and 0-based start row.
type SyntaxNode interface {
	// Kind is the grammar's node-type name, e.g. "for_statement".
	Kind() string
	// IsValid reports whether this represents an actual node (as opposed
	// to a missing optional child).
	IsValid() bool
	// IsNamed reports whether this is a named grammar production, as
	// opposed to an anonymous token such as an operator or punctuation.
	IsNamed() bool
	// NamedChildCount is the number of named (non-anonymous-token) children.
	NamedChildCount() int
	// NamedChild returns the i'th named child.
	NamedChild(i int) SyntaxNode
	// ChildCount is the number of all children, including anonymous
	// tokens such as operators.
	ChildCount() int
	// Child returns the i'th child, named or not.
	Child(i int) SyntaxNode
	// ChildByFieldName returns the child bound to the given grammar
	// field name, or an invalid node if there is none.
	ChildByFieldName(name string) SyntaxNode
	// Text is the node's source span.
	Text() string
	// StartRow is the 0-based row the node starts on.
	StartRow() int
}
