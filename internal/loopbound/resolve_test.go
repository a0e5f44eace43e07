package loopbound_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wattrace/analyzer-core/internal/constant"
	"github.com/wattrace/analyzer-core/internal/loopbound"
	"github.com/wattrace/analyzer-core/internal/node"
)

// fakeNode is a minimal synthetic node.SyntaxNode, standing in for a
// real tree-sitter node in these tests. A nil *fakeNode is the invalid
// node.
type fakeNode struct {
	kind     string
	text     string
	named    bool
	children []*fakeNode
	fields   map[string]*fakeNode
}

func (f *fakeNode) Kind() string { return f.kind }
func (f *fakeNode) IsValid() bool { return f != nil }
func (f *fakeNode) IsNamed() bool { return f != nil && f.named }
func (f *fakeNode) NamedChildCount() int {
	n := 0
	for _, c := range f.children {
		if c.named {
			n++
		}
	}
	return n
}
func (f *fakeNode) NamedChild(i int) node.SyntaxNode {
	idx := 0
	for _, c := range f.children {
		if c.named {
			if idx == i {
				return c
			}
			idx++
		}
	}
	return (*fakeNode)(nil)
}
func (f *fakeNode) ChildCount() int { return len(f.children) }
func (f *fakeNode) Child(i int) node.SyntaxNode {
	if i < 0 || i >= len(f.children) {
		return (*fakeNode)(nil)
	}
	return f.children[i]
}
func (f *fakeNode) ChildByFieldName(name string) node.SyntaxNode {
	if f.fields == nil {
		return (*fakeNode)(nil)
	}
	if c, ok := f.fields[name]; ok {
		return c
	}
	return (*fakeNode)(nil)
}
func (f *fakeNode) Text() string  { return f.text }
func (f *fakeNode) StartRow() int { return 0 }

func namedLeaf(kind, text string) *fakeNode {
	return &fakeNode{kind: kind, text: text, named: true}
}

func anonToken(text string) *fakeNode {
	return &fakeNode{kind: text, text: text, named: false}
}

func binaryOf(left *fakeNode, op string, right *fakeNode) *fakeNode {
	return &fakeNode{
		kind:     "binary",
		named:    true,
		children: []*fakeNode{left, anonToken(op), right},
	}
}

func TestResolveInt_LiteralsAndIdentifiers(t *testing.T) {
	table := constant.New()
	table.Set("n", 7)

	v, ok := loopbound.ResolveInt(namedLeaf("integer", "42"), table)
	assert.True(t, ok)
	assert.Equal(t, int64(42), v)

	v, ok = loopbound.ResolveInt(namedLeaf("identifier", "n"), table)
	assert.True(t, ok)
	assert.Equal(t, int64(7), v)

	_, ok = loopbound.ResolveInt(namedLeaf("identifier", "unbound"), table)
	assert.False(t, ok)
}

func TestResolveInt_BinaryArithmetic(t *testing.T) {
	table := constant.New()
	table.Set("n", 10)
	expr := binaryOf(namedLeaf("identifier", "n"), "+", namedLeaf("integer", "5"))

	v, ok := loopbound.ResolveInt(expr, table)
	assert.True(t, ok)
	assert.Equal(t, int64(15), v)
}

func TestResolveInt_UnresolvedOnCall(t *testing.T) {
	table := constant.New()
	call := &fakeNode{kind: "call", named: true, children: []*fakeNode{namedLeaf("identifier", "f")}}
	_, ok := loopbound.ResolveInt(call, table)
	assert.False(t, ok)
}

func TestIsBoundedSearchCondition(t *testing.T) {
	cond := binaryOf(namedLeaf("identifier", "low"), "<=", namedLeaf("identifier", "high"))
	assert.True(t, loopbound.IsBoundedSearchCondition(cond))

	sameVar := binaryOf(namedLeaf("identifier", "low"), "<=", namedLeaf("identifier", "low"))
	assert.False(t, loopbound.IsBoundedSearchCondition(sameVar))

	numericBound := binaryOf(namedLeaf("identifier", "i"), "<", namedLeaf("integer", "10"))
	assert.False(t, loopbound.IsBoundedSearchCondition(numericBound))
}
