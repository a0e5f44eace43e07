package core

import (
	"github.com/wattrace/analyzer-core/internal/classify"
	"github.com/wattrace/analyzer-core/internal/constant"
	"github.com/wattrace/analyzer-core/internal/loopbound"
	"github.com/wattrace/analyzer-core/internal/model"
	"github.com/wattrace/analyzer-core/internal/node"
)

// Walker implements the per-construct counting contract shared between
// the indentation dialect and the brace dialect: both wrap the same
// tree-sitter parse tree behind the node.SyntaxNode trait and differ
// only in their Grammar kind-name table and LoopEstimator, the same way
// a language-specific tree-sitter inspector walks a *sitter.Node tree
// with its own dispatch table but a shared traversal shape.
type Walker struct {
	g Grammar
	cls classify.Sets
	consts model.Constants
	table *constant.Table
	loop LoopEstimator
	result *model.AnalysisResult
	pySpecial bool // python-only special-cased calls (sorted, sum, append,...)

	currentFunc string
	recursive bool
	calls []string
	nesting int
	maxNesting int
}

// NewWalker builds a Walker for one dialect. result may be nil, in which
// case unresolved-loop-bound assumptions are silently dropped (useful in
// isolated unit tests of the counting logic).
func NewWalker(g Grammar, cls classify.Sets, consts model.Constants, table *constant.Table, loop LoopEstimator, result *model.AnalysisResult, pythonSemantics bool) *Walker {
	return &Walker{g: g, cls: cls, consts: consts, table: table, loop: loop, result: result, pySpecial: pythonSemantics}
}

// Reset prepares the walker for a fresh function body walk. currentFuncShortName
// is the name compared against call expressions for recursion detection;
// pass "" when walking global (module-level) statements.
func (w *Walker) Reset(currentFuncShortName string) {
	w.currentFunc = currentFuncShortName
	w.recursive = false
	w.calls = nil
	w.nesting = 0
	w.maxNesting = 0
}

// Recursive reports whether the last walk observed a self-call.
func (w *Walker) Recursive() bool { return w.recursive }

// MaxNesting reports the deepest loop nesting reached in the last walk.
func (w *Walker) MaxNesting() int { return w.maxNesting }

// Calls lists the callee short names seen during the last walk, in
// encounter order.
func (w *Walker) Calls() []string { return w.calls }

// Prepass walks the entire tree once, depth-first, descending into
// function and class bodies rather than stopping at them, and records
// every `name = literal-or-resolvable` assignment it finds along the
// way. It mirrors original_source's _extract_constant_assignments,
// which sweeps the whole ast.walk(tree) before any per-function
// analysis begins, so a function defined before a module-level
// constant is assigned can still resolve a loop bound expressed in
// terms of it. Call once, before analyzing any function or the
// module's own top-level statements.
func (w *Walker) Prepass(n node.SyntaxNode) {
	if n == nil || !n.IsValid() {
		return
	}
	kind := n.Kind()
	switch {
	case w.g.Assignment.Has(kind):
		w.learnConstant(node.FieldOrFirstNamed(n, "left", "name"), node.FieldOrFirstNamed(n, "right", "value"))
	case w.g.VarDecl.Has(kind) && !w.g.Assignment.Has(kind):
		val := n.ChildByFieldName("value")
		if !val.IsValid() {
			val = n.ChildByFieldName("initializer")
		}
		if val.IsValid() {
			w.learnConstant(node.FieldOrFirstNamed(n, "name", "declarator"), val)
		}
	}
	for _, c := range node.NamedChildren(n) {
		w.Prepass(c)
	}
}

// WalkAll walks a slice of sibling statements at the same multiplier and
// merges their operation counts, e.g. a function body's top-level
// statements or the module's own top-level statements.
func (w *Walker) WalkAll(stmts []node.SyntaxNode, multiplier int64) model.OperationCount {
	var out model.OperationCount
	for _, s := range stmts {
		out.Merge(w.Walk(s, multiplier))
	}
	return out
}

// walkChildren recurses into every named child of n at multiplier; the
// generic default for wrapper/passthrough nodes and the unknown-kind
// fallback.
func (w *Walker) walkChildren(n node.SyntaxNode, multiplier int64) model.OperationCount {
	return w.WalkAll(node.NamedChildren(n), multiplier)
}

// learnConstant records target = value in the constant table when
// target is a bare identifier and value resolves to a concrete integer,
// so a later sibling statement in the same or an inherited scope can
// resolve a loop bound expressed in terms of it. Table.EnterScope
// gives this the LIFO save/restore discipline: a binding learned inside
// a function body is discarded when the function's walk finishes.
func (w *Walker) learnConstant(target, value node.SyntaxNode) {
	if w.table == nil || target == nil || !target.IsValid() || !w.g.Identifier.Has(target.Kind()) {
		return
	}
	if v, ok := loopbound.ResolveInt(value, w.table); ok {
		w.table.Set(target.Text(), v)
	}
}

func (w *Walker) assume(format string, args ...any) {
	if w.result != nil {
		w.result.AddAssumption(format, args...)
	}
}

// Walk analyzes one statement or expression node at the given cascading
// multiplier and returns the operations it (and everything reachable
// from it, short of nested function/class definitions) contributes.
func (w *Walker) Walk(n node.SyntaxNode, multiplier int64) model.OperationCount {
	var ops model.OperationCount
	if n == nil || !n.IsValid() || multiplier <= 0 {
		return ops
	}
	kind := n.Kind()
	g := w.g

	switch {
	case g.FunctionDef.Has(kind) || g.ClassDef.Has(kind):
		// Nested definitions are recognized but not walked as executed
		// code; they define callable scope, not evaluation.
		return ops

	case g.For.Has(kind):
		return w.walkFor(n, multiplier)

	case g.ForEach.Has(kind), g.DoWhile.Has(kind):
		return w.walkForEachOrDoWhile(n, multiplier)

	case g.While.Has(kind):
		return w.walkWhile(n, multiplier)

	case g.Comprehension.Has(kind):
		return w.walkComprehension(n, multiplier)

	case g.If.Has(kind):
		ops.Add(model.ConditionalBranch, multiplier)
		cond := node.FieldOrFirstNamed(n, "condition", "test")
		ops.Merge(w.Walk(cond, multiplier))
		if body := n.ChildByFieldName("consequence"); body.IsValid() {
			ops.Merge(w.Walk(body, multiplier))
		}
		if alt := n.ChildByFieldName("alternative"); alt.IsValid() {
			ops.Merge(w.Walk(alt, multiplier))
		}
		return ops

	case g.Try.Has(kind):
		return w.walkChildren(n, multiplier)

	case g.Binary.Has(kind):
		return w.walkBinary(n, multiplier)

	case g.Unary.Has(kind):
		ops.Add(model.Addition, multiplier)
		operand := node.FieldOrFirstNamed(n, "argument", "operand")
		ops.Merge(w.Walk(operand, multiplier))
		return ops

	case g.Update.Has(kind):
		toks := node.AnonymousTokens(n)
		kindOp := model.Addition
		for _, t := range toks {
			if t == "--" {
				kindOp = model.Subtraction
			}
		}
		ops.Add(kindOp, multiplier)
		ops.Add(model.Assignment, multiplier)
		return ops

	case g.AugAssign.Has(kind):
		ops.Add(model.Assignment, multiplier)
		toks := node.AnonymousTokens(n)
		if len(toks) > 0 {
			ops.Add(arithmeticKindFor(trimAssign(toks[0])), multiplier)
		}
		rhs := node.FieldOrFirstNamed(n, "right", "value")
		ops.Merge(w.Walk(rhs, multiplier))
		return ops

	case g.VarDecl.Has(kind) && !g.Assignment.Has(kind):
		val := n.ChildByFieldName("value")
		if !val.IsValid() {
			val = n.ChildByFieldName("initializer")
		}
		if val.IsValid() {
			ops.Add(model.Assignment, multiplier)
			ops.Merge(w.Walk(val, multiplier))
			w.learnConstant(node.FieldOrFirstNamed(n, "name", "declarator"), val)
		}
		return ops

	case g.Assignment.Has(kind):
		ops.Add(model.Assignment, multiplier)
		rhs := node.FieldOrFirstNamed(n, "right", "value")
		ops.Merge(w.Walk(rhs, multiplier))
		w.learnConstant(node.FieldOrFirstNamed(n, "left", "name"), rhs)
		return ops

	case g.Call.Has(kind):
		return w.walkCall(n, multiplier)

	case g.New.Has(kind):
		ops.Add(model.MemoryAllocation, multiplier)
		args := n.ChildByFieldName("arguments")
		ops.Merge(w.walkChildren(args, multiplier))
		return ops

	case g.Delete.Has(kind):
		ops.Add(model.MemoryAllocation, multiplier)
		return ops

	case g.Subscript.Has(kind):
		ops.Add(model.ArrayAccess, multiplier)
		ops.Merge(w.walkChildren(n, multiplier))
		return ops

	case g.Member.Has(kind):
		obj := node.FieldOrFirstNamed(n, "object", "value")
		return w.Walk(obj, multiplier)

	case g.Ternary.Has(kind):
		ops.Add(model.ConditionalBranch, multiplier)
		ops.Merge(w.walkChildren(n, multiplier))
		return ops

	case g.ArrayLiteral.Has(kind):
		count := int64(n.NamedChildCount())
		if count > 0 {
			ops.Add(model.MemoryAllocation, multiplier)
			ops.Add(model.Assignment, multiplier*count)
		}
		ops.Merge(w.walkChildren(n, multiplier))
		return ops

	case g.ObjectLiteral.Has(kind):
		count := int64(n.NamedChildCount())
		if count > 0 {
			ops.Add(model.MemoryAllocation, multiplier)
			ops.Add(model.Assignment, multiplier*count)
		}
		ops.Merge(w.walkChildren(n, multiplier))
		return ops

	case g.TemplateStr.Has(kind):
		return w.walkTemplate(n, multiplier)

	case g.Throw.Has(kind):
		ops.Add(model.FunctionCall, multiplier)
		return ops

	case g.Cast.Has(kind) || g.Sizeof.Has(kind) || g.ArrowFunc.Has(kind):
		ops.Add(model.FunctionCall, multiplier)
		inner := node.FieldOrFirstNamed(n, "value", "body")
		ops.Merge(w.Walk(inner, multiplier))
		return ops

	case g.Break.Has(kind):
		return ops

	case g.Return.Has(kind):
		val := node.FieldOrFirstNamed(n, "argument", "value")
		return w.Walk(val, multiplier)

	case g.Labeled.Has(kind):
		body := n.ChildByFieldName("body")
		return w.Walk(body, multiplier)

	default:
		return w.walkChildren(n, multiplier)
	}
}

func (w *Walker) walkFor(n node.SyntaxNode, multiplier int64) model.OperationCount {
	var ops model.OperationCount
	iterations, resolved := w.loop.ForBound(n, w.table)
	if resolved {
		w.assume("line %d: for-loop resolved to %d iterations", n.StartRow()+1, iterations)
	} else {
		w.assume("line %d: for-loop iterations unknown, assumed %d", n.StartRow()+1, iterations)
	}
	ops.Add(model.Comparison, multiplier*iterations)
	w.descendLoopBody(n, multiplier*iterations, &ops)
	if elseClause := findElseClause(n); elseClause.IsValid() {
		ops.Merge(w.walkChildren(elseClause, multiplier))
	}
	return ops
}

func (w *Walker) walkWhile(n node.SyntaxNode, multiplier int64) model.OperationCount {
	var ops model.OperationCount
	iterations, _ := w.loop.WhileBound(n, w.table)
	w.assume("line %d: while-loop estimated %d iterations", n.StartRow()+1, iterations)
	ops.Add(model.Comparison, multiplier*iterations)
	cond := node.FieldOrFirstNamed(n, "condition", "test")
	ops.Merge(w.Walk(cond, multiplier))
	w.descendLoopBody(n, multiplier*iterations, &ops)
	if elseClause := findElseClause(n); elseClause.IsValid() {
		ops.Merge(w.walkChildren(elseClause, multiplier))
	}
	return ops
}

func (w *Walker) walkForEachOrDoWhile(n node.SyntaxNode, multiplier int64) model.OperationCount {
	var ops model.OperationCount
	iterations, resolved := w.loop.ForEachBound(n, w.table)
	if !resolved {
		w.assume("loop at line %d: always uses the default iteration count for this loop shape (%d)", n.StartRow()+1, iterations)
	}
	ops.Add(model.Comparison, multiplier*iterations)
	w.descendLoopBody(n, multiplier*iterations, &ops)
	return ops
}

func (w *Walker) descendLoopBody(n node.SyntaxNode, innerMultiplier int64, ops *model.OperationCount) {
	w.nesting++
	if w.nesting > w.maxNesting {
		w.maxNesting = w.nesting
	}
	body := n.ChildByFieldName("body")
	ops.Merge(w.Walk(body, innerMultiplier))
	w.nesting--
}

func findElseClause(n node.SyntaxNode) node.SyntaxNode {
	alt := n.ChildByFieldName("alternative")
	if alt.IsValid() {
		return alt
	}
	for _, c := range node.NamedChildren(n) {
		if c.Kind() == "else_clause" {
			return c
		}
	}
	return alt
}

func (w *Walker) walkComprehension(n node.SyntaxNode, multiplier int64) model.OperationCount {
	var ops model.OperationCount
	ops.Add(model.MemoryAllocation, multiplier)

	var forClause, ifClause, body node.SyntaxNode
	children := node.NamedChildren(n)
	if len(children) > 0 {
		body = children[0]
	}
	for _, c := range children {
		switch c.Kind() {
		case "for_in_clause":
			if forClause == nil {
				forClause = c
			}
		case "if_clause":
			if ifClause == nil {
				ifClause = c
			}
		}
	}

	iterations, resolved := int64(w.consts.DefaultLoopIterations), false
	if forClause != nil && forClause.IsValid() && w.loop != nil {
		iterations, resolved = w.loop.ComprehensionBound(forClause, w.table)
	}
	if !resolved {
		w.assume("comprehension at line %d: iteration count could not be resolved, assuming default %d", n.StartRow()+1, iterations)
	}

	// Comprehensions don't count toward loop-nesting depth: the
	// reference's max-depth walk only descends through For/While.
	inner := multiplier * iterations
	ops.Add(model.Comparison, inner)
	ops.Merge(w.Walk(body, inner))
	if ifClause != nil && ifClause.IsValid() {
		ops.Add(model.ConditionalBranch, inner)
		cond := node.FieldOrFirstNamed(ifClause, "condition", "test")
		if !cond.IsValid() && ifClause.NamedChildCount() > 0 {
			cond = ifClause.NamedChild(0)
		}
		ops.Merge(w.Walk(cond, inner))
	}
	return ops
}

func (w *Walker) walkBinary(n node.SyntaxNode, multiplier int64) model.OperationCount {
	var ops model.OperationCount
	toks := node.AnonymousTokens(n)
	primary := ""
	if len(toks) > 0 {
		primary = toks[0]
	}

	switch {
	case primary == "**":
		ops.Add(model.Multiplication, multiplier*10)
	case isOneOf(primary, "+"):
		ops.Add(model.Addition, multiplier)
	case isOneOf(primary, "-"):
		ops.Add(model.Subtraction, multiplier)
	case isOneOf(primary, "*", "@"):
		ops.Add(model.Multiplication, multiplier)
	case isOneOf(primary, "/", "//", "%"):
		ops.Add(model.Division, multiplier)
	case isOneOf(primary, "==", "!=", "<", "<=", ">", ">=", "<>", "is", "is not", "in", "not in"):
		comparisons := int64(0)
		for _, t := range toks {
			if isOneOf(t, "==", "!=", "<", "<=", ">", ">=", "<>", "is", "is not", "in", "not in") {
				comparisons++
			}
		}
		if comparisons < 1 {
			comparisons = 1
		}
		ops.Add(model.Comparison, multiplier*comparisons)
	case isOneOf(primary, "and", "or", "&&", "||"):
		ops.Add(model.Comparison, multiplier)
	default:
		ops.Add(model.Addition, multiplier)
	}

	ops.Merge(w.walkChildren(n, multiplier))
	return ops
}

func (w *Walker) walkTemplate(n node.SyntaxNode, multiplier int64) model.OperationCount {
	var ops model.OperationCount
	for _, c := range node.NamedChildren(n) {
		if c.Kind() == "interpolation" || c.Kind() == "template_substitution" {
			ops.Add(model.FunctionCall, multiplier)
			ops.Merge(w.walkChildren(c, multiplier))
		}
	}
	return ops
}

func (w *Walker) walkCall(n node.SyntaxNode, multiplier int64) model.OperationCount {
	var ops model.OperationCount
	shortName, fullText, isMemberCall := w.calleeInfo(n)

	if w.currentFunc != "" && shortName == w.currentFunc {
		w.recursive = true
	}
	if shortName != "" {
		w.calls = append(w.calls, shortName)
	}

	handled := false
	if w.pySpecial {
		d := w.consts.DefaultLoopIterations
		switch {
		case shortName == "sorted" || shortName == "sort":
			ops.Add(model.Comparison, multiplier*d*7)
			ops.Add(model.Assignment, multiplier*d*7)
			handled = true
		case shortName == "sum" || shortName == "min" || shortName == "max" || shortName == "any" || shortName == "all":
			ops.Add(model.Addition, multiplier*d)
			ops.Add(model.Comparison, multiplier*d)
			handled = true
		case shortName == "append" && isMemberCall:
			ops.Add(model.MemoryAllocation, multiplier)
			handled = true
		}
	}

	if !handled {
		ops.Add(classify.Classify(w.cls, shortName, fullText), multiplier)
	}

	args := n.ChildByFieldName("arguments")
	ops.Merge(w.walkChildren(args, multiplier))
	return ops
}

// calleeInfo extracts the callee's short name (for classification and
// recursion detection) and full dotted text (for substring
// classification), handling both the "function" field grammars
// (python, javascript, c/cpp) and Java's separate object/name fields.
func (w *Walker) calleeInfo(n node.SyntaxNode) (shortName, fullText string, isMemberCall bool) {
	if fn := n.ChildByFieldName("function"); fn.IsValid() {
		fullText = fn.Text()
		shortName = node.LastSegment(fullText)
		isMemberCall = w.g.Member.Has(fn.Kind())
		return shortName, fullText, isMemberCall
	}
	if name := n.ChildByFieldName("name"); name.IsValid() {
		shortName = name.Text()
		if obj := n.ChildByFieldName("object"); obj.IsValid() {
			fullText = obj.Text() + "." + shortName
			return shortName, fullText, true
		}
		return shortName, shortName, false
	}
	if n.NamedChildCount() > 0 {
		first := n.NamedChild(0)
		fullText = first.Text()
		shortName = node.LastSegment(fullText)
		isMemberCall = w.g.Member.Has(first.Kind())
		return shortName, fullText, isMemberCall
	}
	return "", "", false
}

func isOneOf(s string, options...string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}

func trimAssign(op string) string {
	if len(op) > 1 && op[len(op)-1] == '=' {
		return op[:len(op)-1]
	}
	return op
}

func arithmeticKindFor(op string) model.OperationKind {
	switch op {
	case "+":
		return model.Addition
	case "-":
		return model.Subtraction
	case "*":
		return model.Multiplication
	case "/", "//", "%":
		return model.Division
	default:
		return model.Addition
	}
}
