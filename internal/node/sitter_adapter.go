package node

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// SitterNode adapts a *sitter.Node to the SyntaxNode capability trait
// used by every language-specific walker.
type SitterNode struct {
	n   *sitter.Node
	src []byte
}

// Wrap adapts a *sitter.Node (which may be nil) into a SyntaxNode.
func Wrap(n *sitter.Node, src []byte) SyntaxNode {
	return SitterNode{n: n, src: src}
}

func (s SitterNode) IsValid() bool { return s.n != nil }

func (s SitterNode) IsNamed() bool {
	if s.n == nil {
		return false
	}
	return s.n.IsNamed()
}

func (s SitterNode) Kind() string {
	if s.n == nil {
		return ""
	}
	return s.n.Type()
}

func (s SitterNode) NamedChildCount() int {
	if s.n == nil {
		return 0
	}
	return int(s.n.NamedChildCount())
}

func (s SitterNode) NamedChild(i int) SyntaxNode {
	if s.n == nil || i < 0 || i >= int(s.n.NamedChildCount()) {
		return SitterNode{}
	}
	return SitterNode{n: s.n.NamedChild(i), src: s.src}
}

func (s SitterNode) ChildCount() int {
	if s.n == nil {
		return 0
	}
	return int(s.n.ChildCount())
}

func (s SitterNode) Child(i int) SyntaxNode {
	if s.n == nil || i < 0 || i >= int(s.n.ChildCount()) {
		return SitterNode{}
	}
	return SitterNode{n: s.n.Child(i), src: s.src}
}

func (s SitterNode) ChildByFieldName(name string) SyntaxNode {
	if s.n == nil {
		return SitterNode{}
	}
	c := s.n.ChildByFieldName(name)
	if c == nil {
		return SitterNode{}
	}
	return SitterNode{n: c, src: s.src}
}

func (s SitterNode) Text() string {
	if s.n == nil {
		return ""
	}
	return s.n.Content(s.src)
}

func (s SitterNode) StartRow() int {
	if s.n == nil {
		return 0
	}
	return int(s.n.StartPoint().Row)
}
