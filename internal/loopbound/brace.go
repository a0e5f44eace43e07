package loopbound

import (
	"github.com/wattrace/analyzer-core/internal/constant"
	"github.com/wattrace/analyzer-core/internal/model"
	"github.com/wattrace/analyzer-core/internal/node"
)

// BraceEstimator resolves the brace family's `for(init;condition;update)`,
// while, do-while, and for-each/for-in/for-of loop shapes,
// grounded on the classic C-style counted-loop pattern: a declared
// induction variable, a bound comparison against it, and a
// constant-step update. for-each/do-while are always the model default,
// since there is no syntactic bound to resolve without knowing the
// collection's runtime size.
type BraceEstimator struct {
	Constants model.Constants
}

// NewBrace constructs a brace-family loop-bound estimator.
func NewBrace(c model.Constants) *BraceEstimator {
	return &BraceEstimator{Constants: c}
}

func (e *BraceEstimator) ForBound(n node.SyntaxNode, table *constant.Table) (int64, bool) {
	init := node.FieldOrFirstNamed(n, "initializer", "init")
	cond := node.FieldOrFirstNamed(n, "condition")
	if cond != nil && cond.IsValid() && cond.Kind() == "expression_statement" && cond.NamedChildCount() > 0 {
		cond = cond.NamedChild(0)
	}
	update := node.FieldOrFirstNamed(n, "update", "increment")

	decl := unwrapDeclaration(init)
	name, start, startResolved := inductionVar(decl, table)
	if name == "" {
		return e.Constants.DefaultLoopIterations, false
	}
	if !startResolved {
		start = 0
	}

	boundVal, op, ok := e.boundFromCondition(cond, name, table)
	if !ok {
		return e.Constants.DefaultLoopIterations, false
	}

	step := stepFromUpdate(update, name, table)
	return boundedRangeIterations(start, boundVal, step, op)
}

func (e *BraceEstimator) boundFromCondition(cond node.SyntaxNode, name string, table *constant.Table) (int64, string, bool) {
	if cond == nil || !cond.IsValid() {
		return 0, "", false
	}
	toks := node.AnonymousTokens(cond)
	if len(toks) != 1 {
		return 0, "", false
	}
	op := toks[0]
	if !comparisonOps[op] && op != "!=" {
		return 0, "", false
	}
	left := cond.ChildByFieldName("left")
	right := cond.ChildByFieldName("right")
	if !left.IsValid() || !right.IsValid() {
		children := node.NamedChildren(cond)
		if len(children) != 2 {
			return 0, "", false
		}
		left, right = children[0], children[1]
	}

	var boundNode node.SyntaxNode
	switch {
	case left.Text() == name:
		boundNode = right
	case right.Text() == name:
		boundNode = left
		op = flipComparator(op)
	default:
		return 0, "", false
	}
	v, ok := ResolveInt(boundNode, table)
	if !ok {
		return 0, "", false
	}
	return v, op, true
}

func (e *BraceEstimator) WhileBound(n node.SyntaxNode, table *constant.Table) (int64, bool) {
	cond := node.FieldOrFirstNamed(n, "condition")
	body := n.ChildByFieldName("body")
	if v, ok := whileCounterBound(cond, body, table, braceIncrementStep); ok {
		return v, true
	}
	return e.Constants.DefaultLoopIterations, false
}

// braceIncrementStep scans a while-block's direct statements (unwrapping
// expression_statement) for an update_expression or augmented_assignment
// on name, reusing stepFromUpdate's per-shape step math.
func braceIncrementStep(body node.SyntaxNode, name string, table *constant.Table) (int64, bool) {
	for _, stmt := range node.NamedChildren(body) {
		expr := stmt
		if stmt.Kind() == "expression_statement" && stmt.NamedChildCount() > 0 {
			expr = stmt.NamedChild(0)
		}
		var target node.SyntaxNode
		switch expr.Kind() {
		case "update_expression":
			target = node.FieldOrFirstNamed(expr, "argument", "operand")
		case "augmented_assignment_expression":
			target = expr.ChildByFieldName("left")
		default:
			continue
		}
		if !target.IsValid() || target.Text() != name {
			continue
		}
		return stepFromUpdate(expr, name, table), true
	}
	return 0, false
}

// ForEachBound covers for-in/for-of/enhanced-for; do_statement (do-while)
// is routed here too by the walker since neither has a statically
// countable bound without knowing a collection's runtime size.
func (e *BraceEstimator) ForEachBound(n node.SyntaxNode, table *constant.Table) (int64, bool) {
	return e.Constants.DefaultLoopIterations, false
}

// ComprehensionBound is never invoked for the brace dialect; none of
// Java/C/C++/JavaScript/TypeScript's grammars have a comprehension
// production in the classifier's supported subset.
func (e *BraceEstimator) ComprehensionBound(forClause node.SyntaxNode, table *constant.Table) (int64, bool) {
	return e.Constants.DefaultLoopIterations, false
}

var declarationKinds = map[string]bool{
	"variable_declaration": true, "lexical_declaration": true,
	"local_variable_declaration": true,
}

func unwrapDeclaration(init node.SyntaxNode) node.SyntaxNode {
	if init == nil || !init.IsValid() {
		return init
	}
	if declarationKinds[init.Kind()] {
		// Java's local_variable_declaration leads with its type node, so
		// the declarator field is preferred over the first named child.
		if d := init.ChildByFieldName("declarator"); d != nil && d.IsValid() {
			return d
		}
		if init.NamedChildCount() > 0 {
			return init.NamedChild(0)
		}
	}
	return init
}

// inductionVar extracts the loop variable's name and, when its
// initializer is a resolvable constant, its starting value from a
// variable_declarator/init_declarator ("int i = 0") or a plain
// assignment_expression ("i = 0").
func inductionVar(decl node.SyntaxNode, table *constant.Table) (name string, start int64, resolved bool) {
	if decl == nil || !decl.IsValid() {
		return "", 0, false
	}
	nameNode := node.FieldOrFirstNamed(decl, "name", "left", "declarator")
	if !nameNode.IsValid() {
		return "", 0, false
	}
	name = nameNode.Text()

	valNode := decl.ChildByFieldName("value")
	if !valNode.IsValid() {
		valNode = decl.ChildByFieldName("right")
	}
	if !valNode.IsValid() {
		return name, 0, false
	}
	v, ok := ResolveInt(valNode, table)
	return name, v, ok
}

// stepFromUpdate reads the loop's per-iteration step from an
// update_expression (i++/i--), an augmented assignment (i += k), or a
// plain reassignment shaped like "i = i + k". Anything else defaults to
// a step of 1, the overwhelmingly common case, without flagging an
// unresolved assumption.
func stepFromUpdate(update node.SyntaxNode, name string, table *constant.Table) int64 {
	if update == nil || !update.IsValid() {
		return 1
	}
	toks := node.AnonymousTokens(update)

	switch update.Kind() {
	case "update_expression":
		for _, t := range toks {
			if t == "--" {
				return -1
			}
		}
		return 1
	case "augmented_assignment_expression":
		right := update.ChildByFieldName("right")
		v, ok := ResolveInt(right, table)
		if !ok {
			return 1
		}
		if len(toks) > 0 && toks[0][:1] == "-" {
			return -v
		}
		return v
	case "assignment_expression":
		right := update.ChildByFieldName("right")
		children := node.NamedChildren(right)
		rtoks := node.AnonymousTokens(right)
		if len(children) != 2 || len(rtoks) == 0 {
			return 1
		}
		var stepVal int64
		var ok bool
		switch {
		case children[0].Text() == name:
			stepVal, ok = ResolveInt(children[1], table)
		case children[1].Text() == name:
			stepVal, ok = ResolveInt(children[0], table)
		}
		if !ok {
			return 1
		}
		if rtoks[0] == "-" {
			return -stepVal
		}
		return stepVal
	default:
		return 1
	}
}
