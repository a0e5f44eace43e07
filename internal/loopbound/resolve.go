// Package loopbound implements the Loop-Bound Estimator: resolving
// a loop header to a concrete iteration count from the constant table
// where possible, and falling back to the model's default loop
// iteration count otherwise. IndentEstimator covers python's
// `for x in...` shape; BraceEstimator covers the brace family's
// `for(init;cond;update)`, for-each, and do-while shapes.
package loopbound

import (
	"github.com/wattrace/analyzer-core/internal/constant"
	"github.com/wattrace/analyzer-core/internal/node"
)

var numberKinds = map[string]bool{
	"integer": true, "float": true, "number": true,
	"decimal_integer_literal": true, "decimal_floating_point_literal": true,
	"number_literal": true, "hex_literal": true, "octal_literal": true,
	"binary_literal": true,
}

var identifierKinds = map[string]bool{"identifier": true, "field_identifier": true}

var parenKinds = map[string]bool{"parenthesized_expression": true, "parenthesized_expr": true}

var comparisonOps = map[string]bool{
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true, "<>": true,
}

// ResolveInt attempts to evaluate n to a concrete integer using table for
// identifier lookups, recursing through literals, parentheses, and
// simple unary/binary arithmetic. It gives up (ok=false) the moment it
// hits anything it cannot statically evaluate, such as a call or an
// unbound identifier — matching the constant table's "no dataflow
// beyond simple literal propagation" scope.
func ResolveInt(n node.SyntaxNode, table *constant.Table) (int64, bool) {
	if n == nil || !n.IsValid() {
		return 0, false
	}
	kind := n.Kind()
	switch {
	case identifierKinds[kind]:
		return table.Lookup(n.Text())
	case numberKinds[kind]:
		return constant.ResolveLiteral(n.Text())
	case parenKinds[kind]:
		return ResolveInt(n.NamedChild(0), table)
	}

	toks := node.AnonymousTokens(n)
	children := node.NamedChildren(n)
	switch len(children) {
	case 1:
		if len(toks) == 0 {
			return ResolveInt(children[0], table)
		}
		v, ok := ResolveInt(children[0], table)
		if !ok {
			return 0, false
		}
		return constant.UnaryOp(toks[0], v)
	case 2:
		if len(toks) == 0 {
			return 0, false
		}
		l, ok1 := ResolveInt(children[0], table)
		r, ok2 := ResolveInt(children[1], table)
		if !ok1 || !ok2 {
			return 0, false
		}
		return constant.BinaryOp(toks[0], l, r)
	default:
		return 0, false
	}
}

// IsBoundedSearchCondition recognizes the classic binary-search loop
// shape `while (low <= high)` / `while (lo < hi)`: a single comparison
// between two distinct, otherwise-unresolvable identifiers. Model
// counting decided, as an Open Question resolution, to treat this shape
// as resolved to a fixed 20-iteration (roughly log2 of a large search
// space) estimate rather than the generic default, since it is common
// enough in practice to deserve a dedicated heuristic (see DESIGN.md).
func IsBoundedSearchCondition(cond node.SyntaxNode) bool {
	if cond == nil || !cond.IsValid() {
		return false
	}
	toks := node.AnonymousTokens(cond)
	if len(toks) != 1 || !comparisonOps[toks[0]] {
		return false
	}
	children := node.NamedChildren(cond)
	if len(children) != 2 {
		return false
	}
	a, b := children[0], children[1]
	if !identifierKinds[a.Kind()] || !identifierKinds[b.Kind()] {
		return false
	}
	return a.Text() != b.Text()
}

// conditionParts decomposes a single comparison condition into its
// operator and two operands, whether or not the grammar exposes
// left/right as named fields.
func conditionParts(cond node.SyntaxNode) (left, right node.SyntaxNode, op string, ok bool) {
	if cond == nil || !cond.IsValid() {
		return nil, nil, "", false
	}
	toks := node.AnonymousTokens(cond)
	if len(toks) != 1 || !comparisonOps[toks[0]] {
		return nil, nil, "", false
	}
	op = toks[0]
	left = cond.ChildByFieldName("left")
	right = cond.ChildByFieldName("right")
	if !left.IsValid() || !right.IsValid() {
		children := node.NamedChildren(cond)
		if len(children) != 2 {
			return nil, nil, "", false
		}
		left, right = children[0], children[1]
	}
	return left, right, op, true
}

// whileCounterBound implements the `while var < N` / `while var <= N`
// counter pattern (with an optional constant-step increment in the
// body dividing the bound down), the `while var > L` / `while var >= L`
// countdown pattern against a known starting value, and falls back to
// the bounded-search heuristic for an otherwise unresolved comparison
// between two distinct identifiers. incrementStep is dialect-specific: it looks for the
// loop variable's per-iteration step inside body, however that
// grammar spells an increment.
func whileCounterBound(cond, body node.SyntaxNode, table *constant.Table, incrementStep func(node.SyntaxNode, string, *constant.Table) (int64, bool)) (int64, bool) {
	left, right, op, ok := conditionParts(cond)
	if ok && identifierKinds[left.Kind()] {
		name := left.Text()
		switch op {
		case "<", "<=":
			if upper, resolved := ResolveInt(right, table); resolved {
				if step, hasStep := incrementStep(body, name, table); hasStep && step > 0 {
					if n := upper / step; n > 1 {
						return n, true
					}
					return 1, true
				}
				return upper, true
			}
		case ">", ">=":
			if lower, resolved := ResolveInt(right, table); resolved {
				if start, hasStart := table.Lookup(name); hasStart {
					n := start - lower
					if n < 1 {
						n = 1
					}
					return n, true
				}
			}
		}
	}
	if IsBoundedSearchCondition(cond) {
		return 20, true
	}
	return 0, false
}

func flipComparator(op string) string {
	switch op {
	case "<":
		return ">"
	case "<=":
		return ">="
	case ">":
		return "<"
	case ">=":
		return "<="
	default:
		return op
	}
}

// boundedRangeIterations replicates range()-style bound math for a
// [start, bound) or [start, bound] span walked in steps of step,
// covering both ascending and descending loops. It never returns a
// negative count.
func boundedRangeIterations(start, bound, step int64, op string) (int64, bool) {
	if step == 0 {
		return 0, false
	}
	var n int64
	switch op {
	case "<":
		if step > 0 {
			if bound > start {
				n = (bound - start + step - 1) / step
			}
		} else {
			return 0, false
		}
	case "<=":
		if step > 0 {
			if bound >= start {
				n = (bound-start)/step + 1
			}
		} else {
			return 0, false
		}
	case ">":
		if step < 0 {
			if bound < start {
				n = (start - bound - step - 1) / (-step)
			}
		} else {
			return 0, false
		}
	case ">=":
		if step < 0 {
			if bound <= start {
				n = (start-bound)/(-step) + 1
			}
		} else {
			return 0, false
		}
	case "!=":
		if step > 0 && bound > start {
			n = (bound - start) / step
		} else if step < 0 && bound < start {
			n = (start - bound) / (-step)
		} else {
			return 0, false
		}
	default:
		return 0, false
	}
	if n < 0 {
		n = 0
	}
	return n, true
}
