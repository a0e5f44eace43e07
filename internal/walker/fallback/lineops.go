package fallback

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/wattrace/analyzer-core/internal/model"
)

var (
	conditionalRe  = regexp.MustCompile(`\b(if|else\s+if|switch|case)\b`)
	arrayAccessRe  = regexp.MustCompile(`\w+\s*\[`)
	callRe         = regexp.MustCompile(`\b\w+\s*\(`)
	controlCallRe  = regexp.MustCompile(`\b(if|for|while|switch|catch|return)\s*\(`)
	variableConstRe = regexp.MustCompile(`\b(\w+)\s*=\s*(\d+)\s*;`)

	// Backreferences (\1) aren't supported by Go's RE2 engine, so the
	// "same variable on both sides" check that original_source expresses
	// with \1 is done as a follow-up string comparison instead.
	forHeaderBoundRe = regexp.MustCompile(`(\w+)\s*=\s*(\d+)\s*;\s*(\w+)\s*([<>]=?)\s*(\d+)`)
	forHeaderVarRe   = regexp.MustCompile(`(\w+)\s*=\s*(\d+)\s*;\s*(\w+)\s*[<>]=?\s*(\w+)`)
	forHeaderStepRe  = regexp.MustCompile(`(\w+)\s*=\s*(\d+)\s*;\s*(\w+)\s*<\s*(\d+)\s*;\s*(\w+)\s*\+=\s*(\d+)`)
	whileCondRe      = regexp.MustCompile(`(\w+)\s*([<>]=?)\s*(\d+)`)
	pythonRangeRe    = regexp.MustCompile(`^range\s*\((.*)\)$`)
)

// removeCommentsAndStrings blanks out comments and string/char/template
// literal contents so operator scanning and pattern matching never
// count symbols that only appear inside them, mirroring
// RegexAnalyzer._remove_comments.
func removeCommentsAndStrings(code string, lang model.Language) string {
	if lang != model.Python {
		code = regexp.MustCompile(`(?m)//.*$`).ReplaceAllString(code, "")
		code = regexp.MustCompile(`(?s)/\*.*?\*/`).ReplaceAllString(code, "")
	} else {
		code = regexp.MustCompile(`(?m)#.*$`).ReplaceAllString(code, "")
	}
	code = regexp.MustCompile(`"(?:[^"\\]|\\.)*"`).ReplaceAllString(code, `""`)
	code = regexp.MustCompile(`'(?:[^'\\]|\\.)*'`).ReplaceAllString(code, `''`)
	code = regexp.MustCompile("`(?:[^`\\\\]|\\\\.)*`").ReplaceAllString(code, "``")
	return code
}

// extractVariableConstants records every `var = N;` literal assignment
// in the raw (uncleaned) source for later loop-bound resolution.
func extractVariableConstants(code string) map[string]int64 {
	out := make(map[string]int64)
	for _, m := range variableConstRe.FindAllStringSubmatch(code, -1) {
		if v, err := strconv.ParseInt(m[2], 10, 64); err == nil {
			out[m[1]] = v
		}
	}
	return out
}

// scanOperators tallies +, -, *, /, =, and comparison tokens on a
// single line by direct character scanning rather than regex
// lookaround, which Go's RE2 engine doesn't support. `++`/`--` count as
// one addition/subtraction (not two), `+=`/`-=`/`*=`/`/=` count as
// neither arithmetic nor assignment, `->` is not subtraction, and
// `==`/`!=`/`<=`/`>=` are comparisons, not assignments.
func scanOperators(line string) (add, sub, mul, div, assign, cmp int64) {
	b := []byte(line)
	n := len(b)
	for i := 0; i < n; {
		c := b[i]
		switch c {
		case '+':
			switch {
			case i+1 < n && b[i+1] == '+':
				add++
				i += 2
			case i+1 < n && b[i+1] == '=':
				i += 2
			default:
				add++
				i++
			}
		case '-':
			switch {
			case i+1 < n && b[i+1] == '-':
				sub++
				i += 2
			case i+1 < n && (b[i+1] == '=' || b[i+1] == '>'):
				i += 2
			default:
				sub++
				i++
			}
		case '*':
			if i+1 < n && b[i+1] == '=' {
				i += 2
			} else {
				mul++
				i++
			}
		case '/':
			if i+1 < n && (b[i+1] == '=' || b[i+1] == '/' || b[i+1] == '*') {
				i += 2
			} else {
				div++
				i++
			}
		case '=':
			if i+1 < n && b[i+1] == '=' {
				cmp++
				i += 2
			} else {
				assign++
				i++
			}
		case '!':
			if i+1 < n && b[i+1] == '=' {
				cmp++
				i += 2
			} else {
				i++
			}
		case '<':
			if i+1 < n && b[i+1] == '=' {
				cmp++
				i += 2
			} else {
				cmp++
				i++
			}
		case '>':
			if i+1 < n && b[i+1] == '=' {
				cmp++
				i += 2
			} else {
				cmp++
				i++
			}
		default:
			i++
		}
	}
	return
}

// countLineOperations tallies every operation category on one already
// comment-stripped line at the given cascading multiplier, porting
// RegexAnalyzer._count_line_operations construct-for-construct.
func countLineOperations(line string, ops *model.OperationCount, multiplier int64, lang model.Language) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || trimmed == "{" || trimmed == "}" || trimmed == "};" {
		return
	}

	ioCount, netCount := 0, 0
	if p := ioPattern[lang]; p != "" {
		ioCount = len(regexp.MustCompile(p).FindAllString(trimmed, -1))
		ops.Add(model.IOOperation, int64(ioCount)*multiplier)
	}
	if p := networkPattern[lang]; p != "" {
		netCount = len(regexp.MustCompile(p).FindAllString(trimmed, -1))
		ops.Add(model.NetworkOperation, int64(netCount)*multiplier)
	}
	if p := allocPattern[lang]; p != "" {
		allocCount := len(regexp.MustCompile(p).FindAllString(trimmed, -1))
		ops.Add(model.MemoryAllocation, int64(allocCount)*multiplier)
	}

	add, sub, mul, div, assign, cmp := scanOperators(trimmed)
	ops.Add(model.Addition, add*multiplier)
	ops.Add(model.Subtraction, sub*multiplier)
	ops.Add(model.Multiplication, mul*multiplier)
	ops.Add(model.Division, div*multiplier)
	ops.Add(model.Assignment, assign*multiplier)
	ops.Add(model.Comparison, cmp*multiplier)

	conditionals := len(conditionalRe.FindAllString(trimmed, -1))
	ops.Add(model.ConditionalBranch, int64(conditionals)*multiplier)

	arrayAccesses := len(arrayAccessRe.FindAllString(trimmed, -1))
	ops.Add(model.ArrayAccess, int64(arrayAccesses)*multiplier)

	funcCalls := len(callRe.FindAllString(trimmed, -1))
	controlStructs := len(controlCallRe.FindAllString(trimmed, -1))
	remaining := funcCalls - controlStructs - ioCount - netCount
	if remaining < 0 {
		remaining = 0
	}
	ops.Add(model.FunctionCall, int64(remaining)*multiplier)
}

func resolveTextualInt(s string, consts map[string]int64) (int64, bool) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, true
	}
	if v, ok := consts[s]; ok {
		return v, true
	}
	return 0, false
}

// estimateForHeaderIterations parses a C-style `int i = 0; i < 100; i++`
// header, porting _estimate_for_iterations_from_header.
func estimateForHeaderIterations(header string, consts map[string]int64, defaultIter int64) int64 {
	if m := forHeaderStepRe.FindStringSubmatch(header); m != nil && m[1] == m[3] && m[3] == m[5] {
		start, _ := strconv.ParseInt(m[2], 10, 64)
		end, _ := strconv.ParseInt(m[4], 10, 64)
		step, _ := strconv.ParseInt(m[6], 10, 64)
		if step > 0 && end > start {
			return (end - start + step - 1) / step
		}
		return 0
	}
	if m := forHeaderBoundRe.FindStringSubmatch(header); m != nil && m[1] == m[3] {
		start, _ := strconv.ParseInt(m[2], 10, 64)
		end, _ := strconv.ParseInt(m[5], 10, 64)
		switch m[4] {
		case "<":
			return maxInt64(0, end-start)
		case "<=":
			return maxInt64(0, end-start+1)
		case ">":
			return maxInt64(0, start-end)
		case ">=":
			return maxInt64(0, start-end+1)
		}
	}
	if m := forHeaderVarRe.FindStringSubmatch(header); m != nil && m[1] == m[3] {
		start, _ := strconv.ParseInt(m[2], 10, 64)
		if end, ok := consts[m[4]]; ok {
			return maxInt64(0, absInt64(end-start))
		}
	}
	if strings.Contains(header, ":") {
		return defaultIter
	}
	return defaultIter
}

// estimateWhileIterations parses a while/loop condition such as
// `i < 10` or `low <= high`, porting
// _estimate_while_iterations_from_condition. It applies equally to the
// brace family's `while(...)` and python's `while ...:`.
func estimateWhileIterations(condition string, consts map[string]int64, defaultIter int64) int64 {
	if m := whileCondRe.FindStringSubmatch(condition); m != nil {
		end, _ := strconv.ParseInt(m[3], 10, 64)
		op := m[2]
		varName := m[1]
		switch op {
		case "<", "<=":
			if start, ok := consts[varName]; ok {
				return maxInt64(1, absInt64(end-start))
			}
			if end > 0 {
				return end
			}
			return defaultIter
		case ">", ">=":
			if start, ok := consts[varName]; ok {
				return maxInt64(1, start-end)
			}
		}
	}
	if strings.Contains(condition, "!=") || strings.Contains(condition, "null") || strings.Contains(condition, "None") {
		return defaultIter
	}
	if strings.Contains(condition, "<=") {
		return 20
	}
	return defaultIter
}

// estimatePythonRangeIterations parses the iterable expression of a
// `for x in ...:` statement when it is a range() call; anything else
// falls back to defaultIter.
func estimatePythonRangeIterations(iterExpr string, consts map[string]int64, defaultIter int64) int64 {
	iterExpr = strings.TrimSpace(iterExpr)
	m := pythonRangeRe.FindStringSubmatch(iterExpr)
	if m == nil {
		return defaultIter
	}
	parts := strings.Split(m[1], ",")
	if len(parts) == 0 || (len(parts) == 1 && strings.TrimSpace(parts[0]) == "") {
		return defaultIter
	}
	vals := make([]int64, 0, len(parts))
	for _, p := range parts {
		v, ok := resolveTextualInt(p, consts)
		if !ok {
			return defaultIter
		}
		vals = append(vals, v)
	}
	switch len(vals) {
	case 1:
		return maxInt64(0, vals[0])
	case 2:
		return maxInt64(0, vals[1]-vals[0])
	case 3:
		start, stop, step := vals[0], vals[1], vals[2]
		if step == 0 {
			return defaultIter
		}
		if step > 0 {
			if stop > start {
				return (stop - start + step - 1) / step
			}
			return 0
		}
		if stop < start {
			return (start - stop - step - 1) / (-step)
		}
		return 0
	default:
		return defaultIter
	}
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func absInt64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

func leadingWhitespace(line string) int {
	n := 0
	for _, r := range line {
		if r == ' ' || r == '\t' {
			n++
			continue
		}
		break
	}
	return n
}
