// Package fallback implements the textual fallback walker: the
// last-resort analyzer used when no parse tree is available, whether
// because a grammar is missing or a parse failed. It is grounded
// directly on original_source's RegexAnalyzer — the reference
// implementation's own answer to "we don't have a native AST parser for
// this language" — extended with an indentation-tracking variant so it
// can also stand in for python, which the reference implementation
// never needed since it always had a native ast module available.
package fallback

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wattrace/analyzer-core/internal/model"
)

type funcMatch struct {
	name    string
	body    string
	lineNum int
}

// Analyze estimates operations directly from source text, without a
// parse tree. It always succeeds — pattern matching over raw text never
// "fails to parse" — at the cost of the precision a real syntax tree
// would give.
func Analyze(source []byte, lang model.Language, filePath string, consts model.Constants) *model.AnalysisResult {
	result := &model.AnalysisResult{Language: string(lang), FilePath: filePath}
	result.AddAssumption("textual fallback analysis (no parse tree available) — less precise than AST-based analysis")
	result.AddAssumption("energy per operation: %g J", consts.EnergyPerOpJoules)
	result.AddAssumption("carbon intensity: %g gCO2/kWh (global average)", consts.CarbonGPerKWh)

	code := string(source)
	varConsts := extractVariableConstants(code)
	clean := removeCommentsAndStrings(code, lang)

	var functions []funcMatch
	if lang == model.Python {
		functions = extractPythonFunctions(clean)
	} else {
		functions = extractBraceFunctions(clean, lang)
	}

	globalCode := clean
	for _, f := range functions {
		fa, assumptions := analyzeFunctionBody(f, lang, varConsts, consts.DefaultLoopIterations, consts.DefaultRecursionDepth)
		result.Functions = append(result.Functions, fa)
		for _, a := range assumptions {
			result.AddAssumption("%s", a)
		}
		globalCode = strings.Replace(globalCode, f.body, "", 1)
	}

	var globalOps model.OperationCount
	var globalAssumptions []string
	if lang == model.Python {
		globalOps, globalAssumptions = analyzeCodeByIndentDepth(globalCode, varConsts, consts.DefaultLoopIterations)
	} else {
		globalOps, globalAssumptions = analyzeCodeByBraceDepth(globalCode, lang, varConsts, consts.DefaultLoopIterations)
	}
	for _, a := range globalAssumptions {
		result.AddAssumption("%s", a)
	}
	result.GlobalOperations = globalOps
	return result
}

func analyzeFunctionBody(f funcMatch, lang model.Language, varConsts map[string]int64, defaultIter, recursionDepth int64) (model.FunctionAnalysis, []string) {
	fa := model.FunctionAnalysis{Name: f.name, Line: f.lineNum}
	var assumptions []string

	if recursionCallRe(f.name).MatchString(f.body) {
		fa.IsRecursive = true
	}

	var ops model.OperationCount
	if lang == model.Python {
		ops, assumptions = analyzeCodeByIndentDepth(f.body, varConsts, defaultIter)
		fa.MaxLoopNesting = maxIndentLoopNesting(f.body)
	} else {
		ops, assumptions = analyzeCodeByBraceDepth(f.body, lang, varConsts, defaultIter)
		fa.MaxLoopNesting = maxBraceLoopNesting(f.body)
	}

	if fa.IsRecursive {
		ops = ops.Scale(recursionDepth)
		assumptions = append(assumptions, fmt.Sprintf("function '%s' is recursive — assumed %d recursive calls", f.name, recursionDepth))
	}
	fa.Operations = ops
	return fa, assumptions
}

func recursionCallRe(name string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\s*\(`)
}

// extractBraceBlock returns the text within the braces starting at or
// after startBrace, tracking nesting depth so an inner `{`/`}` pair
// doesn't terminate the block early.
func extractBraceBlock(code string, startBrace int) string {
	if startBrace >= len(code) || code[startBrace] != '{' {
		idx := strings.IndexByte(code[max0(startBrace):], '{')
		if idx == -1 {
			return ""
		}
		startBrace = max0(startBrace) + idx
	}
	depth := 0
	for i := startBrace; i < len(code); i++ {
		switch code[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return code[startBrace : i+1]
			}
		}
	}
	return code[startBrace:]
}

func max0(i int) int {
	if i < 0 {
		return 0
	}
	return i
}

func extractBraceFunctions(clean string, lang model.Language) []funcMatch {
	pattern, ok := funcPattern[lang]
	if !ok {
		pattern = funcPattern[model.C]
	}
	re := regexp.MustCompile(pattern)
	idx := re.FindAllStringSubmatchIndex(clean, -1)

	var out []funcMatch
	for _, m := range idx {
		name := "unknown"
		for g := 1; 2*g+1 < len(m); g++ {
			if m[2*g] != -1 {
				name = clean[m[2*g]:m[2*g+1]]
				break
			}
		}
		if skipFuncNames[name] {
			continue
		}
		start := m[0]
		body := extractBraceBlock(clean, m[1]-1)
		lineNum := strings.Count(clean[:start], "\n") + 1
		out = append(out, funcMatch{name: name, body: body, lineNum: lineNum})
	}
	return out
}

var pythonDefRe = regexp.MustCompile(`^def\s+(\w+)\s*\([^)]*\)\s*:`)

func extractPythonFunctions(clean string) []funcMatch {
	lines := strings.Split(clean, "\n")
	var out []funcMatch
	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		m := pythonDefRe.FindStringSubmatch(stripped)
		if m == nil {
			continue
		}
		indent := leadingWhitespace(line)
		var bodyLines []string
		j := i + 1
		for ; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == "" {
				bodyLines = append(bodyLines, lines[j])
				continue
			}
			if leadingWhitespace(lines[j]) <= indent {
				break
			}
			bodyLines = append(bodyLines, lines[j])
		}
		out = append(out, funcMatch{name: m[1], body: strings.Join(bodyLines, "\n"), lineNum: i + 1})
	}
	return out
}
