// Package indent implements the indentation-dialect walker: function
// and class discovery over a python tree-sitter parse tree, driving the
// shared counting engine in internal/walker/core. The traversal walks
// named children and dispatches on node.Type(), reproducing the
// original ast.walk-based Python function discovery over a real parse
// tree instead of Python's own ast module.
package indent

import (
	"github.com/wattrace/analyzer-core/internal/classify"
	"github.com/wattrace/analyzer-core/internal/constant"
	"github.com/wattrace/analyzer-core/internal/loopbound"
	"github.com/wattrace/analyzer-core/internal/model"
	"github.com/wattrace/analyzer-core/internal/node"
	"github.com/wattrace/analyzer-core/internal/walker/core"
)

// Analyze walks a parsed python module and returns its complete
// analysis: one FunctionAnalysis per top-level function and per method
// of a top-level class, plus the accumulated operations of every
// module-level statement outside a def.
func Analyze(root node.SyntaxNode, filePath string, consts model.Constants, cls classify.Sets) *model.AnalysisResult {
	result := &model.AnalysisResult{Language: "python", FilePath: filePath}
	g := core.PythonGrammar()
	table := constant.New()
	est := loopbound.NewIndent(consts)
	w := core.NewWalker(g, cls, consts, table, est, result, true)
	w.Prepass(root)

	var globalStmts []node.SyntaxNode
	for _, child := range node.NamedChildren(root) {
		switch {
		case g.FunctionDef.Has(child.Kind()):
			analyzeFunctionDef(w, table, result, consts, child, "")
		case g.ClassDef.Has(child.Kind()):
			analyzeClassDef(w, table, result, consts, child, g)
		default:
			globalStmts = append(globalStmts, child)
		}
	}

	w.Reset("")
	result.GlobalOperations = w.WalkAll(globalStmts, 1)
	return result
}

func analyzeClassDef(w *core.Walker, table *constant.Table, result *model.AnalysisResult, consts model.Constants, classNode node.SyntaxNode, g core.Grammar) {
	className := classNode.ChildByFieldName("name").Text()
	body := classNode.ChildByFieldName("body")
	for _, child := range node.NamedChildren(body) {
		if g.FunctionDef.Has(child.Kind()) {
			analyzeFunctionDef(w, table, result, consts, child, className)
		}
	}
}

func analyzeFunctionDef(w *core.Walker, table *constant.Table, result *model.AnalysisResult, consts model.Constants, defNode node.SyntaxNode, className string) {
	shortName := defNode.ChildByFieldName("name").Text()
	qualified := shortName
	if className != "" {
		qualified = className + "." + shortName
	}

	restore := table.EnterScope()
	defer restore()

	w.Reset(shortName)
	body := defNode.ChildByFieldName("body")
	ops := w.Walk(body, 1)
	if w.Recursive() {
		ops = ops.Scale(consts.DefaultRecursionDepth)
	}

	result.Functions = append(result.Functions, model.FunctionAnalysis{
		Name:           qualified,
		Line:           defNode.StartRow() + 1,
		Operations:     ops,
		MaxLoopNesting: w.MaxNesting(),
		IsRecursive:    w.Recursive(),
		Calls:          w.Calls(),
	})
}
