// Package lang implements language detection: an explicit override,
// then path extension, then content heuristics, then a default; Detect
// applies the override itself before consulting the other tiers.
//
// The extension table and heuristic order are grounded on
// original_source/carbon_footprint_estimator.py's detect_language, with
// TypeScript split out from JavaScript and .h separated from .cpp
// headers layered on top (the reference source did not distinguish
// TypeScript from JavaScript, nor .h from .cpp headers), keeping the
// reference's default and content-heuristic precedence otherwise.
package lang

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/wattrace/analyzer-core/internal/model"
)

var extensionMap = map[string]model.Language{
	".py": model.Python,
	".java": model.Java,
	".c": model.C,
	".h": model.C, // known limitation: headers are often C++, kept for parity
	".cpp": model.Cpp,
	".cc": model.Cpp,
	".cxx": model.Cpp,
	".hpp": model.Cpp,
	".js": model.JavaScript,
	".mjs": model.JavaScript,
	".jsx": model.JavaScript,
	".ts": model.TypeScript,
	".tsx": model.TypeScript,
}

var (
	pyDef = regexp.MustCompile(`(?m)\bdef\s+\w+\s*\(`)
	pyColonEnd = regexp.MustCompile(`(?m):\s*$`)
	javaClass = regexp.MustCompile(`\bpublic\s+(static\s+)?class\b`)
	includeAngle = regexp.MustCompile(`#include\s*<`)
	cPrintf = regexp.MustCompile(`\bprintf\b`)
	cppCoutStd = regexp.MustCompile(`\bcout\b|\bstd::`)
	tsInterface = regexp.MustCompile(`\binterface\b|\btype\s+\w+`)
	tsColonType = regexp.MustCompile(`:\s*\w+`)
	jsFunction = regexp.MustCompile(`\bfunction\b|=>|\bconsole\.log\b`)
)

// DetectByPath applies the extension table only. It returns ("", false)
// when the extension is not recognized.
func DetectByPath(path string) (model.Language, bool) {
	if path == "" {
		return model.Unknown, false
	}
	ext := strings.ToLower(filepath.Ext(path))
	l, ok := extensionMap[ext]
	return l, ok
}

// DetectByContent applies the content heuristics, in order. It
// returns ("", false) if nothing matches.
func DetectByContent(source string) (model.Language, bool) {
	if pyDef.MatchString(source) && pyColonEnd.MatchString(source) {
		return model.Python, true
	}
	if javaClass.MatchString(source) {
		return model.Java, true
	}
	if includeAngle.MatchString(source) && cPrintf.MatchString(source) {
		return model.C, true
	}
	if includeAngle.MatchString(source) && cppCoutStd.MatchString(source) {
		return model.Cpp, true
	}
	if tsInterface.MatchString(source) && tsColonType.MatchString(source) {
		return model.TypeScript, true
	}
	if jsFunction.MatchString(source) {
		return model.JavaScript, true
	}
	return model.Unknown, false
}

// Detection records which tier of the precedence chain produced the
// final language tag, so the orchestrator can log the "advisory"
// assumption for content-heuristic hits (supplemented feature).
type Detection struct {
	Language model.Language
	// Source is one of "override", "extension", "content", "default",
	// "undetectable".
	Source string
}

// Detect implements the full precedence: explicit override > path
// extension > content heuristic > default python.
//
// One case is genuinely undetectable rather than defaulted: no override,
// no recognizable path extension, and no source text at all to run the
// content heuristics against. That case surfaces as "language could
// not be detected" rather than silently defaulting to python, so it is
// special-cased here; every other unresolved case (non-empty but
// unrecognized content) still falls through to the python default.
func Detect(override model.Language, path string, source string) Detection {
	if override != model.Unknown {
		return Detection{Language: override, Source: "override"}
	}
	if l, ok := DetectByPath(path); ok {
		return Detection{Language: l, Source: "extension"}
	}
	if l, ok := DetectByContent(source); ok {
		return Detection{Language: l, Source: "content"}
	}
	if strings.TrimSpace(source) == "" {
		return Detection{Language: model.Unknown, Source: "undetectable"}
	}
	return Detection{Language: model.Python, Source: "default"}
}
