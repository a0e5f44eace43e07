// Package watttrace is the public entry point of the carbon-footprint
// analyzer core: initialize a parser registry, estimate one file's
// energy/carbon footprint (async, may fall back to textual analysis, or
// always-synchronous), and serialize the result. Analyzer is a thin
// façade that owns construction and delegates the real work to
// package-level collaborators, never doing any walking itself.
package watttrace

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wattrace/analyzer-core/internal/model"
	"github.com/wattrace/analyzer-core/internal/orchestrator"
	"github.com/wattrace/analyzer-core/internal/parser"
	"github.com/wattrace/analyzer-core/internal/report"
)

// Language re-exports the model's language tag for callers who don't
// want to import the internal package tree directly.
type Language = model.Language

const (
	Python = model.Python
	Java = model.Java
	C = model.C
	Cpp = model.Cpp
	JavaScript = model.JavaScript
	TypeScript = model.TypeScript
	Unknown = model.Unknown
)

// AnalysisResult re-exports the model's result type.
type AnalysisResult = model.AnalysisResult

// Report is the stable, serializable structured output.
type Report = report.Report

// Option configures an Analyzer at construction time using the
// functional-options pattern.
type Option func(*Analyzer)

// WithLogger sets the zerolog.Logger used for non-fatal fallback and
// parse-failure warnings. The default is zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Analyzer) { a.logger = logger }
}

// WithConstants overrides the model constants (energy per op, weights'
// deployment-tier multipliers,...) used for every estimate.
func WithConstants(c model.Constants) Option {
	return func(a *Analyzer) { a.consts = c }
}

// Analyzer is the process-lifetime handle a caller holds: one parser
// registry, one set of model constants, shared across every Estimate
// call it makes. It carries no per-file state.
type Analyzer struct {
	mu sync.Mutex
	registry *parser.Registry
	orch *orchestrator.Orchestrator
	consts model.Constants
	logger zerolog.Logger
}

// New constructs an Analyzer with default model constants and a no-op
// logger; apply Options to override either. The parser registry is not
// yet initialized — call Initialize before the first Estimate, or rely
// on EstimateSync, which never touches it.
func New(opts...Option) *Analyzer {
	a := &Analyzer{
		consts: model.DefaultConstants(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.registry = parser.New("", a.logger)
	a.orch = orchestrator.New(a.registry, a.logger).WithConstants(a.consts)
	return a
}

// Initialize implements the `initialize(extension_root)`: one-time
// and idempotent. Failure is non-fatal; the registry is left usable and
// every subsequent Estimate call falls back to the textual walker.
func (a *Analyzer) Initialize(extensionRoot string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.registry = parser.New(extensionRoot, a.logger)
	a.orch = orchestrator.New(a.registry, a.logger).WithConstants(a.consts)
	return a.registry.Initialize()
}

// Estimate implements the `estimate`: source language detection,
// AST-based counting when a parse tree is available, transparent
// fallback to the textual walker (recorded in the result's assumptions) otherwise.
func (a *Analyzer) Estimate(ctx context.Context, source []byte, path string, languageOverride Language) AnalysisResult {
	a.mu.Lock()
	orch := a.orch
	a.mu.Unlock()
	return orch.Estimate(ctx, source, path, languageOverride)
}

// EstimateSync implements the `estimate_sync`: always the textual
// fallback walker, never the parser registry, so it can never
// block on grammar loading.
func (a *Analyzer) EstimateSync(source []byte, path string, languageOverride Language) AnalysisResult {
	a.mu.Lock()
	orch := a.orch
	a.mu.Unlock()
	return orch.EstimateSync(source, path, languageOverride)
}

// ToSerializable implements the `to_serializable`: a deterministic
// projection of an AnalysisResult (plus the source it was computed from,
// for the content hash) into the stable wire schema.
func (a *Analyzer) ToSerializable(result AnalysisResult, source []byte) Report {
	return report.ToSerializable(result, source, a.consts)
}

// Dispose implements the `dispose`: releases cached parsers and
// marks the registry uninitialized.
func (a *Analyzer) Dispose() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.registry != nil {
		a.registry.Dispose()
	}
}
