package core

import (
	"github.com/wattrace/analyzer-core/internal/constant"
	"github.com/wattrace/analyzer-core/internal/node"
)

// LoopEstimator resolves the iteration count of a loop or comprehension
// header. Each dialect supplies its own implementation because the
// field layout of a for-loop header differs fundamentally between
// python's `for x in range(...)` and brace-family `for(init;cond;step)`;
// the walker only ever needs the resulting count and whether it was
// resolved from a concrete bound or fell back to the default, for
// assumption logging.
type LoopEstimator interface {
	// ForBound estimates a `for` statement's iteration count.
	ForBound(n node.SyntaxNode, table *constant.Table) (iterations int64, resolved bool)
	// WhileBound estimates a `while` statement's iteration count.
	WhileBound(n node.SyntaxNode, table *constant.Table) (iterations int64, resolved bool)
	// ForEachBound estimates a for-each/for-in/for-of/do-while style
	// loop; these always fall back to the default.
	ForEachBound(n node.SyntaxNode, table *constant.Table) (iterations int64, resolved bool)
	// ComprehensionBound estimates a comprehension's implicit iteration
	// count from its for-clause; python dialect only.
	ComprehensionBound(forClause node.SyntaxNode, table *constant.Table) (iterations int64, resolved bool)
}
