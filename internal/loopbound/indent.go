package loopbound

import (
	"unicode/utf8"

	"github.com/wattrace/analyzer-core/internal/constant"
	"github.com/wattrace/analyzer-core/internal/model"
	"github.com/wattrace/analyzer-core/internal/node"
)

// IndentEstimator resolves python for/while/comprehension bounds,
// grounded on the range()/len()/literal-container reasoning of
// original_source's loop analysis; go-tree-sitter's python for_statement
// exposes "left"/"right"/"body" fields, distinct from the brace family's
// init/condition/update shape.
type IndentEstimator struct {
	Constants model.Constants
}

// NewIndent constructs a python loop-bound estimator.
func NewIndent(c model.Constants) *IndentEstimator {
	return &IndentEstimator{Constants: c}
}

func (e *IndentEstimator) ForBound(n node.SyntaxNode, table *constant.Table) (int64, bool) {
	iterable := n.ChildByFieldName("right")
	return e.estimateIterable(iterable, table)
}

func (e *IndentEstimator) WhileBound(n node.SyntaxNode, table *constant.Table) (int64, bool) {
	cond := node.FieldOrFirstNamed(n, "condition", "test")
	body := n.ChildByFieldName("body")
	if v, ok := whileCounterBound(cond, body, table, pythonIncrementStep); ok {
		return v, true
	}
	return e.Constants.DefaultLoopIterations, false
}

// pythonIncrementStep scans a while-block's direct statements (unwrapping
// expression_statement) for an `x += step` augmented assignment to name,
// python's only counter-loop increment shape (there is no separate
// update_expression production).
func pythonIncrementStep(body node.SyntaxNode, name string, table *constant.Table) (int64, bool) {
	for _, stmt := range node.NamedChildren(body) {
		if stmt.Kind() == "expression_statement" && stmt.NamedChildCount() > 0 {
			stmt = stmt.NamedChild(0)
		}
		if stmt.Kind() != "augmented_assignment" {
			continue
		}
		left := node.FieldOrFirstNamed(stmt, "left", "target")
		if !left.IsValid() || left.Text() != name {
			continue
		}
		toks := node.AnonymousTokens(stmt)
		if len(toks) == 0 || toks[0] != "+=" {
			continue
		}
		if v, ok := ResolveInt(stmt.ChildByFieldName("right"), table); ok {
			return v, true
		}
	}
	return 0, false
}

// ForEachBound is never invoked for the indentation dialect; python has
// no distinct for-each grammar production (all iteration goes through
// for_statement).
func (e *IndentEstimator) ForEachBound(n node.SyntaxNode, table *constant.Table) (int64, bool) {
	return e.Constants.DefaultLoopIterations, false
}

func (e *IndentEstimator) ComprehensionBound(forClause node.SyntaxNode, table *constant.Table) (int64, bool) {
	right := forClause.ChildByFieldName("right")
	return e.estimateIterable(right, table)
}

// estimateIterable resolves the iterable expression of a for-statement
// or comprehension for-clause: range() calls compute an exact count,
// literal list/tuple/set/dict display counts its own elements, a
// literal string counts its characters, a bare identifier resolves
// against the constant table, and enumerate/reversed/sorted/list/tuple/
// set/iter calls delegate to their first argument's own iterable
// estimate. Anything else — a call to a user function, a generator —
// falls back to the model default.
func (e *IndentEstimator) estimateIterable(it node.SyntaxNode, table *constant.Table) (int64, bool) {
	if it == nil || !it.IsValid() {
		return e.Constants.DefaultLoopIterations, false
	}
	switch it.Kind() {
	case "call":
		fn := it.ChildByFieldName("function")
		args := node.NamedChildren(it.ChildByFieldName("arguments"))
		switch fn.Text() {
		case "range":
			return e.rangeBound(args, table)
		case "enumerate", "reversed", "sorted", "iter", "list", "tuple", "set", "frozenset":
			if len(args) > 0 {
				return e.estimateIterable(args[0], table)
			}
		}
	case "list", "tuple", "set", "dictionary":
		return int64(it.NamedChildCount()), true
	case "string":
		return int64(pythonStringLength(it.Text())), true
	case "parenthesized_expression":
		return e.estimateIterable(it.NamedChild(0), table)
	default:
		if identifierKinds[it.Kind()] {
			if v, ok := table.Lookup(it.Text()); ok {
				return v, true
			}
		}
	}
	return e.Constants.DefaultLoopIterations, false
}

// pythonStringLength counts the characters inside a string literal's
// quotes (single, double, or triple, any prefix letters like f/r/b),
// matching Python's len() over the literal's decoded value closely
// enough for a static character count — escape sequences are counted
// by their source characters rather than collapsed.
func pythonStringLength(text string) int {
	i := 0
	for i < len(text) && text[i] != '\'' && text[i] != '"' {
		i++
	}
	if i >= len(text) {
		return 0
	}
	quote := text[i]
	quoteLen := 1
	if i+2 < len(text) && text[i+1] == quote && text[i+2] == quote {
		quoteLen = 3
	}
	start := i + quoteLen
	end := len(text) - quoteLen
	if end < start {
		return 0
	}
	return utf8.RuneCountInString(text[start:end])
}

func (e *IndentEstimator) rangeBound(args []node.SyntaxNode, table *constant.Table) (int64, bool) {
	vals := make([]int64, len(args))
	for i, a := range args {
		v, ok := ResolveInt(a, table)
		if !ok {
			return e.Constants.DefaultLoopIterations, false
		}
		vals[i] = v
	}
	switch len(vals) {
	case 1:
		n := vals[0]
		if n < 0 {
			n = 0
		}
		return n, true
	case 2:
		n := vals[1] - vals[0]
		if n < 0 {
			n = 0
		}
		return n, true
	case 3:
		start, stop, step := vals[0], vals[1], vals[2]
		if step > 0 {
			return boundedRangeIterations(start, stop, step, "<")
		}
		if step < 0 {
			return boundedRangeIterations(start, stop, step, ">")
		}
		return e.Constants.DefaultLoopIterations, false
	default:
		return e.Constants.DefaultLoopIterations, false
	}
}
