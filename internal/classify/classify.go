// Package classify implements the Language Classifier: closed,
// per-language sets of I/O, network, and allocation short names and
// dotted-call substrings, used by every walker to categorize a call
// expression.
//
// The sets are reproduced verbatim from the reference implementation's
// IO_FUNCTIONS/NETWORK_FUNCTIONS/ALLOC_FUNCTIONS (Python) and
// IO_PATTERNS/NETWORK_PATTERNS/ALLOC_PATTERNS (Java/C/C++/JavaScript)
// tables, per its requirement that they are part of the external
// contract.
package classify

import (
	"strings"

	"github.com/wattrace/analyzer-core/internal/model"
)

// Sets is the closed set of short names and dotted substrings used to
// classify a call for one language.
type Sets struct {
	IOShortNames map[string]struct{}
	NetworkShortNames map[string]struct{}
	AllocShortNames map[string]struct{}
	IOSubstrings []string
	NetworkSubstrings []string
	AllocSubstrings []string
}

func toSet(items...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}

// python mirrors PythonAnalyzer.IO_FUNCTIONS / NETWORK_FUNCTIONS /
// ALLOC_FUNCTIONS.
var python = Sets{
	IOShortNames: toSet(
		"print", "input", "open", "read", "write", "readline", "readlines",
		"writelines", "close", "flush", "seek", "tell",
	),
	NetworkShortNames: toSet(
		"request", "get", "post", "put", "delete", "patch",
		"urlopen", "connect", "send", "recv", "socket",
		"fetch", "download", "upload",
	),
	AllocShortNames: toSet(
		"list", "dict", "set", "tuple", "bytearray", "array",
		"zeros", "ones", "empty", "malloc", "calloc",
		"DataFrame", "Series", "ndarray", "deepcopy", "copy",
	),
	IOSubstrings: []string{"print", "write", "read", "input", "open"},
	NetworkSubstrings: []string{"request", "urlopen", "socket", "fetch"},
}

// java mirrors RegexAnalyzer.IO_PATTERNS/NETWORK_PATTERNS/ALLOC_PATTERNS["java"].
var java = Sets{
	IOShortNames: toSet(
		"println", "printf", "print", "read", "write", "readLine",
	),
	NetworkShortNames: toSet(),
	AllocShortNames: toSet(),
	IOSubstrings: []string{
		"System.out", "System.err", "System.in", "Scanner",
		"BufferedReader", "FileReader", "FileWriter", "PrintWriter",
	},
	NetworkSubstrings: []string{
		"HttpURLConnection", "URL", "Socket", "ServerSocket", "HttpClient",
		"HttpRequest", "RestTemplate", "WebClient",
	},
	AllocSubstrings: []string{"new "},
}

// c mirrors RegexAnalyzer's ["c"] tables.
var c = Sets{
	IOShortNames: toSet(
		"printf", "scanf", "fprintf", "fscanf", "fopen", "fclose",
		"fread", "fwrite", "puts", "gets", "getchar", "putchar",
		"fgets", "fputs",
	),
	NetworkShortNames: toSet(
		"socket", "connect", "send", "recv", "bind", "listen", "accept",
	),
	AllocShortNames: toSet(
		"malloc", "calloc", "realloc", "free", "alloca",
	),
	NetworkSubstrings: []string{"curl_"},
}

// cpp mirrors RegexAnalyzer's ["cpp"] tables.
var cpp = Sets{
	IOShortNames: toSet(
		"printf", "scanf", "getline",
	),
	NetworkShortNames: toSet(
		"socket", "connect", "send", "recv",
	),
	AllocShortNames: toSet(
		"malloc", "calloc", "make_shared", "make_unique",
	),
	IOSubstrings: []string{"cout", "cin", "cerr", "clog", "ifstream", "ofstream", "fstream"},
	NetworkSubstrings: []string{"boost::asio", "curl_", "httplib"},
	AllocSubstrings: []string{"new ", "std::vector", "std::map", "std::unordered_map"},
}

// javascript mirrors RegexAnalyzer's ["javascript"] tables; typescript
// reuses this set.
var javascript = Sets{
	IOShortNames: toSet(
		"log", "error", "warn", "info", "debug", "trace",
		"alert", "prompt", "confirm", "readFile", "writeFile",
	),
	NetworkShortNames: toSet(
		"fetch", "axios",
	),
	AllocShortNames: toSet(),
	IOSubstrings: []string{
		"console.", "document.write", "fs.", "process.stdin",
		"process.stdout", "process.stderr",
	},
	NetworkSubstrings: []string{
		"XMLHttpRequest", "http.request", "https.request", "WebSocket", "net.connect",
	},
	AllocSubstrings: []string{"new ", "Array(", "Object.create", "Map(", "Set("},
}

var byLanguage = map[model.Language]Sets{
	model.Python: python,
	model.Java: java,
	model.C: c,
	model.Cpp: cpp,
	model.JavaScript: javascript,
	model.TypeScript: javascript,
}

// For returns the classifier set for a language. Unknown languages fall
// back to the empty set, so every call is classified as function_call.
func For(lang model.Language) Sets {
	if s, ok := byLanguage[lang]; ok {
		return s
	}
	return Sets{}
}

// Classify implements the five-step precedence: a call is
// io_operation if its short name or full dotted text matches the I/O
// sets, else network_operation, else memory_allocation, else a plain
// function_call.
func Classify(s Sets, shortName, fullDottedText string) model.OperationKind {
	if _, ok := s.IOShortNames[shortName]; ok {
		return model.IOOperation
	}
	if containsAny(fullDottedText, s.IOSubstrings) {
		return model.IOOperation
	}
	if _, ok := s.NetworkShortNames[shortName]; ok {
		return model.NetworkOperation
	}
	if containsAny(fullDottedText, s.NetworkSubstrings) {
		return model.NetworkOperation
	}
	if _, ok := s.AllocShortNames[shortName]; ok {
		return model.MemoryAllocation
	}
	if containsAny(fullDottedText, s.AllocSubstrings) {
		return model.MemoryAllocation
	}
	return model.FunctionCall
}

func containsAny(text string, substrings []string) bool {
	if text == "" {
		return false
	}
	for _, sub := range substrings {
		if sub != "" && strings.Contains(text, sub) {
			return true
		}
	}
	return false
}
