package node

import "strings"

// NamedChildren returns every named child of n, in order.
func NamedChildren(n SyntaxNode) []SyntaxNode {
	if n == nil || !n.IsValid() {
		return nil
	}
	count := n.NamedChildCount()
	out := make([]SyntaxNode, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, n.NamedChild(i))
	}
	return out
}

// AnonymousTokens returns the source text of every non-named (anonymous
// token) child of n, in order. For a binary/comparison node this is the
// operator or operators standing between its operands, since tree-sitter
// grammars uniformly leave operands named and operators anonymous.
func AnonymousTokens(n SyntaxNode) []string {
	if n == nil || !n.IsValid() {
		return nil
	}
	count := n.ChildCount()
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		c := n.Child(i)
		if c.IsValid() && !c.IsNamed() {
			out = append(out, c.Text())
		}
	}
	return out
}

// FieldOrFirstNamed returns the first present field among names, falling
// back to the node's first named child when none of the fields are
// bound. This covers grammars that spell a construct's operand
// differently ("value" vs "right", "argument" vs "operand").
func FieldOrFirstNamed(n SyntaxNode, names ...string) SyntaxNode {
	for _, name := range names {
		if f := n.ChildByFieldName(name); f.IsValid() {
			return f
		}
	}
	return n.NamedChild(0)
}

// LastSegment returns the identifier following the last '.', "::" or
// "->" separator in a dotted or scoped callee expression, e.g.
// "obj.method" -> "method", "std::vector::push_back" -> "push_back".
func LastSegment(text string) string {
	if i := strings.LastIndexAny(text, ".>"); i >= 0 && i+1 < len(text) {
		return text[i+1:]
	}
	if i := strings.LastIndex(text, "::"); i >= 0 {
		return text[i+2:]
	}
	return text
}
