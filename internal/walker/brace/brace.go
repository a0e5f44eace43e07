// Package brace implements the brace-dialect walker: function,
// method, and class discovery over Java/C/C++/JavaScript/TypeScript
// tree-sitter parse trees, driving the shared counting engine in
// internal/walker/core. Collects nodes by kind, then dispatches on
// field-based descent through the syntax tree.
package brace

import (
	"github.com/wattrace/analyzer-core/internal/classify"
	"github.com/wattrace/analyzer-core/internal/constant"
	"github.com/wattrace/analyzer-core/internal/loopbound"
	"github.com/wattrace/analyzer-core/internal/model"
	"github.com/wattrace/analyzer-core/internal/node"
	"github.com/wattrace/analyzer-core/internal/walker/core"
)

var grammarByLang = map[model.Language]func() core.Grammar{
	model.Java:       core.JavaGrammar,
	model.C:          core.CGrammar,
	model.Cpp:        core.CppGrammar,
	model.JavaScript: core.JavaScriptGrammar,
	model.TypeScript: core.TypeScriptGrammar,
}

var declarationKinds = map[string]bool{
	"variable_declaration": true, "lexical_declaration": true,
}

// Analyze walks a parsed Java/C/C++/JavaScript/TypeScript module and
// returns its complete analysis, mirroring indent.Analyze's shape for
// the brace family's class/method/free-function layout.
func Analyze(root node.SyntaxNode, lang model.Language, filePath string, consts model.Constants, cls classify.Sets) *model.AnalysisResult {
	result := &model.AnalysisResult{Language: string(lang), FilePath: filePath}
	newGrammar, ok := grammarByLang[lang]
	if !ok {
		newGrammar = core.JavaScriptGrammar
	}
	g := newGrammar()
	table := constant.New()
	est := loopbound.NewBrace(consts)
	w := core.NewWalker(g, cls, consts, table, est, result, false)
	w.Prepass(root)

	var globalStmts []node.SyntaxNode
	for _, raw := range node.NamedChildren(root) {
		child := unwrapExport(raw)
		switch {
		case g.FunctionDef.Has(child.Kind()):
			analyzeFunctionDef(w, table, result, consts, child, "")
		case g.ClassDef.Has(child.Kind()):
			analyzeClassDef(w, table, result, consts, child, g)
		case declarationKinds[child.Kind()]:
			if fn, name, isFunc := arrowFunctionDeclarator(child, g); isFunc {
				analyzeArrowFunction(w, table, result, consts, fn, name)
			} else {
				globalStmts = append(globalStmts, raw)
			}
		default:
			globalStmts = append(globalStmts, raw)
		}
	}

	w.Reset("")
	result.GlobalOperations = w.WalkAll(globalStmts, 1)
	return result
}

// unwrapExport lets `export function f() {}` / `export class C {}` be
// recognized the same way as their unexported form.
func unwrapExport(n node.SyntaxNode) node.SyntaxNode {
	if n.Kind() != "export_statement" {
		return n
	}
	if decl := n.ChildByFieldName("declaration"); decl.IsValid() {
		return decl
	}
	return n
}

// arrowFunctionDeclarator recognizes `const f = () => { ... }` as a
// top-level function definition.
func arrowFunctionDeclarator(decl node.SyntaxNode, g core.Grammar) (fn node.SyntaxNode, name string, ok bool) {
	for _, d := range node.NamedChildren(decl) {
		if !g.VarDecl.Has(d.Kind()) {
			continue
		}
		val := d.ChildByFieldName("value")
		if val.IsValid() && g.ArrowFunc.Has(val.Kind()) {
			return val, d.ChildByFieldName("name").Text(), true
		}
	}
	return nil, "", false
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
	nameNode := defNode.ChildByFieldName("name")
	shortName := nameNode.Text()
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

func analyzeArrowFunction(w *core.Walker, table *constant.Table, result *model.AnalysisResult, consts model.Constants, fn node.SyntaxNode, shortName string) {
	restore := table.EnterScope()
	defer restore()

	w.Reset(shortName)
	body := fn.ChildByFieldName("body")
	ops := w.Walk(body, 1)
	if w.Recursive() {
		ops = ops.Scale(consts.DefaultRecursionDepth)
	}

	result.Functions = append(result.Functions, model.FunctionAnalysis{
		Name:           shortName,
		Line:           fn.StartRow() + 1,
		Operations:     ops,
		MaxLoopNesting: w.MaxNesting(),
		IsRecursive:    w.Recursive(),
		Calls:          w.Calls(),
	})
}
