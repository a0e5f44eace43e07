package fallback

import "github.com/wattrace/analyzer-core/internal/model"

// Pattern strings reproduced verbatim from RegexAnalyzer.IO_PATTERNS /
// NETWORK_PATTERNS / ALLOC_PATTERNS / FUNC_PATTERNS, with Perl-style
// lookaround stripped where Go's RE2 engine can't express it — none of
// these particular patterns rely on lookaround, so the translation is
// direct. Python has no I/O, network or allocation entry: the
// reference implementation never falls back to regex analysis for
// python, so those classifier patterns are empty for it and it relies
// solely on the operator scanner.
var ioPattern = map[model.Language]string{
	model.Java:       `\b(System\.(out|err|in)\.\w+|Scanner\.\w+|BufferedReader|FileReader|FileWriter|PrintWriter|println|printf|print|read|write|readLine)\b`,
	model.C:          `\b(printf|scanf|fprintf|fscanf|fopen|fclose|fread|fwrite|puts|gets|getchar|putchar|fgets|fputs)\b`,
	model.Cpp:        `\b(cout|cin|cerr|clog|printf|scanf|ifstream|ofstream|fstream|getline)\b`,
	model.JavaScript: `\b(console\.(log|error|warn|info|debug|trace)|alert|prompt|confirm|document\.write|fs\.\w+|readFile|writeFile|process\.std(in|out|err))\b`,
	model.TypeScript: `\b(console\.(log|error|warn|info|debug|trace)|alert|prompt|confirm|document\.write|fs\.\w+|readFile|writeFile|process\.std(in|out|err))\b`,
}

var networkPattern = map[model.Language]string{
	model.Java:       `\b(HttpURLConnection|URL|Socket|ServerSocket|HttpClient|HttpRequest|RestTemplate|WebClient)\b`,
	model.C:          `\b(socket|connect|send|recv|bind|listen|accept|curl_)\b`,
	model.Cpp:        `\b(socket|connect|send|recv|boost::asio|curl_|httplib)\b`,
	model.JavaScript: `\b(fetch|axios|XMLHttpRequest|http\.request|https\.request|WebSocket|net\.connect)\b`,
	model.TypeScript: `\b(fetch|axios|XMLHttpRequest|http\.request|https\.request|WebSocket|net\.connect)\b`,
}

var allocPattern = map[model.Language]string{
	model.Java:       `\bnew\s+\w+`,
	model.C:          `\b(malloc|calloc|realloc|free|alloca)\b`,
	model.Cpp:        `\b(new\s+\w+|make_shared|make_unique|malloc|calloc|std::vector|std::map|std::unordered_map)\b`,
	model.JavaScript: `\bnew\s+\w+|Array\(|Object\.create|Map\(|Set\(`,
	model.TypeScript: `\bnew\s+\w+|Array\(|Object\.create|Map\(|Set\(`,
}

var funcPattern = map[model.Language]string{
	model.Java:       `(?:public|private|protected|static|\s)+[\w<>\[\]]+\s+(\w+)\s*\([^)]*\)\s*(?:throws\s+[\w,\s]+)?\s*\{`,
	model.C:          `(?:static\s+)?(?:inline\s+)?(?:unsigned\s+)?(?:const\s+)?\w+[\s*]+(\w+)\s*\([^)]*\)\s*\{`,
	model.Cpp:        `(?:static\s+)?(?:inline\s+)?(?:virtual\s+)?(?:unsigned\s+)?(?:const\s+)?[\w:<>]+[\s*&]+(\w+)\s*\([^)]*\)\s*(?:const)?\s*(?:override)?\s*\{`,
	model.JavaScript: `(?:function\s+(\w+)|(?:const|let|var)\s+(\w+)\s*=\s*(?:async\s+)?(?:function|\([^)]*\)\s*=>|\w+\s*=>))|(\w+)\s*\([^)]*\)\s*\{`,
	model.TypeScript: `(?:function\s+(\w+)|(?:const|let|var)\s+(\w+)\s*=\s*(?:async\s+)?(?:function|\([^)]*\)\s*=>|\w+\s*=>))|(\w+)\s*\([^)]*\)\s*\{`,
	model.Python:     `def\s+(\w+)\s*\([^)]*\)\s*:`,
}

var skipFuncNames = map[string]bool{
	"if": true, "for": true, "while": true, "switch": true, "return": true, "else": true,
}
