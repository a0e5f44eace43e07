package loopbound_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wattrace/analyzer-core/internal/constant"
	"github.com/wattrace/analyzer-core/internal/loopbound"
	"github.com/wattrace/analyzer-core/internal/model"
	"github.com/wattrace/analyzer-core/internal/node"
)

func block(stmts ...*fakeNode) *fakeNode {
	return &fakeNode{kind: "block", named: true, children: stmts}
}

func whileNode(cond, body *fakeNode, condField string) *fakeNode {
	return &fakeNode{
		kind:  "while_statement",
		named: true,
		fields: map[string]*fakeNode{
			condField: cond,
			"body":    body,
		},
	}
}

func augAssign(target *fakeNode, op string, value *fakeNode) *fakeNode {
	return &fakeNode{
		kind:  "augmented_assignment",
		named: true,
		fields: map[string]*fakeNode{
			"left":  target,
			"right": value,
		},
		children: []*fakeNode{target, anonToken(op), value},
	}
}

func TestIndentWhileBound_ResolvableUpperNoStep(t *testing.T) {
	e := loopbound.NewIndent(model.DefaultConstants())
	table := constant.New()
	cond := binaryOf(namedLeaf("identifier", "i"), "<", namedLeaf("integer", "50"))
	w := whileNode(cond, block(), "condition")

	iterations, resolved := e.WhileBound(w, table)
	assert.True(t, resolved)
	assert.Equal(t, int64(50), iterations)
}

func TestIndentWhileBound_ResolvableUpperWithStep(t *testing.T) {
	e := loopbound.NewIndent(model.DefaultConstants())
	table := constant.New()
	cond := binaryOf(namedLeaf("identifier", "i"), "<=", namedLeaf("integer", "100"))
	body := block(augAssign(namedLeaf("identifier", "i"), "+=", namedLeaf("integer", "10")))
	w := whileNode(cond, body, "condition")

	iterations, resolved := e.WhileBound(w, table)
	assert.True(t, resolved)
	assert.Equal(t, int64(10), iterations)
}

func TestIndentWhileBound_UnresolvableUpperFallsBackToBinarySearch(t *testing.T) {
	e := loopbound.NewIndent(model.DefaultConstants())
	table := constant.New()
	cond := binaryOf(namedLeaf("identifier", "low"), "<=", namedLeaf("identifier", "high"))
	w := whileNode(cond, block(), "condition")

	iterations, resolved := e.WhileBound(w, table)
	assert.True(t, resolved)
	assert.Equal(t, int64(20), iterations)
}

func TestIndentWhileBound_DecreasingCounterAgainstKnownStart(t *testing.T) {
	e := loopbound.NewIndent(model.DefaultConstants())
	table := constant.New()
	table.Set("i", 30)
	cond := binaryOf(namedLeaf("identifier", "i"), ">", namedLeaf("integer", "0"))
	w := whileNode(cond, block(), "condition")

	iterations, resolved := e.WhileBound(w, table)
	assert.True(t, resolved)
	assert.Equal(t, int64(30), iterations)
}

func TestIndentWhileBound_DefaultsWhenNothingResolves(t *testing.T) {
	consts := model.DefaultConstants()
	e := loopbound.NewIndent(consts)
	table := constant.New()
	cond := namedLeaf("identifier", "running")
	w := whileNode(cond, block(), "condition")

	iterations, resolved := e.WhileBound(w, table)
	assert.False(t, resolved)
	assert.Equal(t, consts.DefaultLoopIterations, iterations)
}

func updateExpr(target *fakeNode, op string) *fakeNode {
	return &fakeNode{
		kind:  "update_expression",
		named: true,
		fields: map[string]*fakeNode{
			"argument": target,
		},
		children: []*fakeNode{target, anonToken(op)},
	}
}

func exprStatement(inner *fakeNode) *fakeNode {
	return &fakeNode{kind: "expression_statement", named: true, children: []*fakeNode{inner}}
}

func TestBraceWhileBound_ResolvableUpperWithIncrement(t *testing.T) {
	e := loopbound.NewBrace(model.DefaultConstants())
	table := constant.New()
	cond := binaryOf(namedLeaf("identifier", "i"), "<", namedLeaf("integer", "20"))
	body := block(exprStatement(updateExpr(namedLeaf("identifier", "i"), "++")))
	w := whileNode(cond, body, "condition")

	iterations, resolved := e.WhileBound(w, table)
	assert.True(t, resolved)
	assert.Equal(t, int64(20), iterations)
}

func TestBraceWhileBound_AugmentedAssignmentStep(t *testing.T) {
	e := loopbound.NewBrace(model.DefaultConstants())
	table := constant.New()
	cond := binaryOf(namedLeaf("identifier", "i"), "<", namedLeaf("integer", "100"))
	augAssignExpr := &fakeNode{
		kind:  "augmented_assignment_expression",
		named: true,
		fields: map[string]*fakeNode{
			"left":  namedLeaf("identifier", "i"),
			"right": namedLeaf("integer", "5"),
		},
		children: []*fakeNode{namedLeaf("identifier", "i"), anonToken("+="), namedLeaf("integer", "5")},
	}
	body := block(exprStatement(augAssignExpr))
	w := whileNode(cond, body, "condition")

	iterations, resolved := e.WhileBound(w, table)
	assert.True(t, resolved)
	assert.Equal(t, int64(20), iterations)
}

var _ node.SyntaxNode = (*fakeNode)(nil)
