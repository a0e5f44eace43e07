// Package parser implements the parse-tree factory the core consumes as
// an external collaborator: a ParserRegistry over
// github.com/smacker/go-tree-sitter grammars, one per supported
// language. It's an explicit value type held by the orchestrator and
// passed by reference rather than a module-level global, so a caller
// running several analyzers side by side never shares mutable state
// between them.
package parser

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/wattrace/analyzer-core/internal/model"
	"github.com/wattrace/analyzer-core/internal/node"
)

func grammarFor(l model.Language) (*sitter.Language, bool) {
	switch l {
	case model.Python:
		return python.GetLanguage(), true
	case model.Java:
		return java.GetLanguage(), true
	case model.C:
		return c.GetLanguage(), true
	case model.Cpp:
		return cpp.GetLanguage(), true
	case model.JavaScript:
		return javascript.GetLanguage(), true
	case model.TypeScript:
		// TypeScript is parsed with the JavaScript grammar, matching the
		// classifier's "typescript reuses javascript" rule; TS-only
		// syntax (type annotations, interfaces) parses as error nodes,
		// which is an acceptable, documented limitation for operation
		// counting purposes.
		return javascript.GetLanguage(), true
	default:
		return nil, false
	}
}

// Registry is a process-lifetime, read-mostly cache of tree-sitter
// languages and reusable parsers, one per Language. Construction is
// idempotent; parser lookup and cache insert are serialized behind a
// mutex, per its "shared resources" contract.
type Registry struct {
	mu sync.Mutex
	parsers map[model.Language]*sitter.Parser
	logger zerolog.Logger
	extRoot string
	initialized bool
}

// New creates an empty registry. Grammars are constructed lazily on
// first use; extensionRoot records where a future implementation would
// look for external grammar binaries under
// extension_root/parsers/tree-sitter-{name}.wasm, though this
// registry links its grammars statically via go-tree-sitter's Go
// bindings rather than loading WASM at runtime.
func New(extensionRoot string, logger zerolog.Logger) *Registry {
	return &Registry{
		parsers: make(map[model.Language]*sitter.Parser),
		logger: logger,
		extRoot: extensionRoot,
	}
}

// Initialize marks the registry ready. It is one-time and idempotent;
// failures are logged and non-fatal since callers always have
// the textual fallback available.
func (r *Registry) Initialize() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.initialized {
		return nil
	}
	r.initialized = true
	r.logger.Debug().Str("extension_root", r.extRoot).Msg("parser registry initialized")
	return nil
}

// Parse returns the root SyntaxNode for source in the given language, or
// ok=false when no grammar is available or parsing failed. Both cases
// are non-fatal; the orchestrator falls back to textual analysis and
// records an assumption.
func (r *Registry) Parse(ctx context.Context, l model.Language, source []byte) (node.SyntaxNode, bool) {
	p, ok := r.parserFor(l)
	if !ok {
		r.logger.Warn().Str("language", string(l)).Msg("no grammar available, falling back to textual analysis")
		return nil, false
	}

	tree, err := p.ParseCtx(ctx, nil, source)
	if err != nil {
		r.logger.Warn().Err(err).Str("language", string(l)).Msg("parse failed, falling back to textual analysis")
		return nil, false
	}
	root := tree.RootNode()
	if root == nil {
		return nil, false
	}
	return node.Wrap(root, source), true
}

func (r *Registry) parserFor(l model.Language) (*sitter.Parser, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.parsers[l]; ok {
		return p, true
	}
	grammar, ok := grammarFor(l)
	if !ok {
		return nil, false
	}
	p := sitter.NewParser()
	p.SetLanguage(grammar)
	r.parsers[l] = p
	return p, true
}

// Dispose releases cached parsers and marks the registry uninitialized,
// matching its teardown contract.
func (r *Registry) Dispose() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers = make(map[model.Language]*sitter.Parser)
	r.initialized = false
}

