package fallback

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wattrace/analyzer-core/internal/model"
)

var (
	braceForRe   = regexp.MustCompile(`^for\s*\((.+)\)`)
	braceWhileRe = regexp.MustCompile(`^while\s*\((.+)\)`)

	pythonForInRe = regexp.MustCompile(`^for\s+[\w,\s()]+\s+in\s+(.+):`)
	pythonWhileRe = regexp.MustCompile(`^while\s+(.+):`)
)

type loopFrame struct {
	depth      int
	iterations int64
}

// analyzeCodeByBraceDepth ports RegexAnalyzer._analyze_code_by_depth: it
// walks the code line by line, tracking brace depth so each line's
// operations are multiplied by the product of every loop iteration
// count currently enclosing it.
func analyzeCodeByBraceDepth(code string, lang model.Language, varConsts map[string]int64, defaultIter int64) (model.OperationCount, []string) {
	var ops model.OperationCount
	var assumptions []string

	var stack []loopFrame
	braceDepth := 0

	for _, raw := range strings.Split(code, "\n") {
		stripped := strings.TrimSpace(raw)
		if stripped == "" {
			continue
		}

		openBraces := strings.Count(stripped, "{")
		closeBraces := strings.Count(stripped, "}")

		switch {
		case braceForRe.MatchString(stripped):
			header := braceForRe.FindStringSubmatch(stripped)[1]
			iterations := estimateForHeaderIterations(header, varConsts, defaultIter)
			stack = append(stack, loopFrame{braceDepth, iterations})
			assumptions = append(assumptions, fmt.Sprintf("for-loop estimated %d iterations", iterations))
		case braceWhileRe.MatchString(stripped):
			cond := braceWhileRe.FindStringSubmatch(stripped)[1]
			iterations := estimateWhileIterations(cond, varConsts, defaultIter)
			stack = append(stack, loopFrame{braceDepth, iterations})
			assumptions = append(assumptions, fmt.Sprintf("while-loop estimated %d iterations", iterations))
		case stripped == "do" || strings.HasPrefix(stripped, "do {") || strings.HasPrefix(stripped, "do{"):
			stack = append(stack, loopFrame{braceDepth, defaultIter})
		}

		braceDepth += openBraces

		multiplier := int64(1)
		for _, f := range stack {
			multiplier *= f.iterations
		}
		countLineOperations(stripped, &ops, multiplier, lang)

		braceDepth -= closeBraces
		for len(stack) > 0 && braceDepth <= stack[len(stack)-1].depth {
			stack = stack[:len(stack)-1]
		}
	}
	return ops, assumptions
}

// analyzeCodeByIndentDepth is analyzeCodeByBraceDepth's indentation
// analog for python, popping a loop frame once a subsequent
// non-blank line's indentation returns to or below the loop header's
// own indentation instead of watching brace balance.
func analyzeCodeByIndentDepth(code string, varConsts map[string]int64, defaultIter int64) (model.OperationCount, []string) {
	var ops model.OperationCount
	var assumptions []string

	var stack []loopFrame

	for _, raw := range strings.Split(code, "\n") {
		stripped := strings.TrimSpace(raw)
		if stripped == "" {
			continue
		}
		indent := leadingWhitespace(raw)

		for len(stack) > 0 && indent <= stack[len(stack)-1].depth {
			stack = stack[:len(stack)-1]
		}

		switch {
		case pythonForInRe.MatchString(stripped):
			iterExpr := pythonForInRe.FindStringSubmatch(stripped)[1]
			iterations := estimatePythonRangeIterations(iterExpr, varConsts, defaultIter)
			stack = append(stack, loopFrame{indent, iterations})
			assumptions = append(assumptions, fmt.Sprintf("for-loop estimated %d iterations", iterations))
		case pythonWhileRe.MatchString(stripped):
			cond := pythonWhileRe.FindStringSubmatch(stripped)[1]
			iterations := estimateWhileIterations(cond, varConsts, defaultIter)
			stack = append(stack, loopFrame{indent, iterations})
			assumptions = append(assumptions, fmt.Sprintf("while-loop estimated %d iterations", iterations))
		}

		multiplier := int64(1)
		for _, f := range stack {
			multiplier *= f.iterations
		}
		countLineOperations(stripped, &ops, multiplier, model.Python)
	}
	return ops, assumptions
}

func maxBraceLoopNesting(code string) int {
	maxDepth, current := 0, 0
	loopHeaderRe := regexp.MustCompile(`^(for|while)\s*\(`)
	for _, raw := range strings.Split(code, "\n") {
		stripped := strings.TrimSpace(raw)
		if loopHeaderRe.MatchString(stripped) || strings.HasPrefix(stripped, "do") {
			current++
			if current > maxDepth {
				maxDepth = current
			}
		}
		if stripped == "}" && current > 0 {
			current--
		}
	}
	return maxDepth
}

func maxIndentLoopNesting(code string) int {
	maxDepth := 0
	var stack []int
	loopHeaderRe := regexp.MustCompile(`^(for|while)\s+`)
	for _, raw := range strings.Split(code, "\n") {
		stripped := strings.TrimSpace(raw)
		if stripped == "" {
			continue
		}
		indent := leadingWhitespace(raw)
		for len(stack) > 0 && indent <= stack[len(stack)-1] {
			stack = stack[:len(stack)-1]
		}
		if loopHeaderRe.MatchString(stripped) {
			stack = append(stack, indent)
			if len(stack) > maxDepth {
				maxDepth = len(stack)
			}
		}
	}
	return maxDepth
}
