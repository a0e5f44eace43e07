package brace_test

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wattrace/analyzer-core/internal/classify"
	"github.com/wattrace/analyzer-core/internal/model"
	"github.com/wattrace/analyzer-core/internal/node"
	"github.com/wattrace/analyzer-core/internal/walker/brace"
)

func parseWith(t *testing.T, lang *sitter.Language, src string) node.SyntaxNode {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	tree, err := parser.ParseCtx(context.Background(), nil, []byte(src))
	require.NoError(t, err)
	return node.Wrap(tree.RootNode(), []byte(src))
}

func TestBrace_JavaForLoopMultipliesBody(t *testing.T) {
	src := `class Adder {
    int sum(int n) {
        int total = 0;
        for (int i = 0; i < 5; i++) {
            total = total + i;
        }
        return total;
    }
}`
	root := parseWith(t, java.GetLanguage(), src)
	result := brace.Analyze(root, model.Java, "Adder.java", model.DefaultConstants(), classify.For(model.Java))

	require.Len(t, result.Functions, 1)
	fn := result.Functions[0]
	assert.Equal(t, "Adder.sum", fn.Name)
	// total=0 (1) + loop body's total = total + i, ran 5 times (5).
	assert.Equal(t, int64(6), fn.Operations.Get(model.Assignment))
	assert.Equal(t, int64(5), fn.Operations.Get(model.Addition))
	assert.Equal(t, 1, fn.MaxLoopNesting)
}

func TestBrace_JavaScriptArrowFunctionRecognizedAsFunction(t *testing.T) {
	src := "const square = (x) => { return x * x; };\n"
	root := parseWith(t, javascript.GetLanguage(), src)
	result := brace.Analyze(root, model.JavaScript, "square.js", model.DefaultConstants(), classify.For(model.JavaScript))

	require.Len(t, result.Functions, 1)
	assert.Equal(t, "square", result.Functions[0].Name)
	assert.Equal(t, int64(1), result.Functions[0].Operations.Get(model.Multiplication))
}

func TestBrace_ModuleConstantResolvesInsideFunctionDefinedAboveIt(t *testing.T) {
	src := `function g() {
    let x = 0;
    for (let i = 0; i < N; i++) {
        x = x + 1;
    }
    return x;
}
const N = 50;
`
	root := parseWith(t, javascript.GetLanguage(), src)
	result := brace.Analyze(root, model.JavaScript, "g.js", model.DefaultConstants(), classify.For(model.JavaScript))

	require.Len(t, result.Functions, 1)
	fn := result.Functions[0]
	assert.Equal(t, int64(50), fn.Operations.Get(model.Addition))
}

func TestBrace_RecursiveJavaMethodIsFlagged(t *testing.T) {
	src := `class Fib {
    int fib(int n) {
        if (n <= 1) {
            return n;
        }
        return fib(n - 1) + fib(n - 2);
    }
}`
	root := parseWith(t, java.GetLanguage(), src)
	result := brace.Analyze(root, model.Java, "Fib.java", model.DefaultConstants(), classify.For(model.Java))

	require.Len(t, result.Functions, 1)
	assert.True(t, result.Functions[0].IsRecursive)
	assert.Contains(t, result.Functions[0].Calls, "fib")
}
