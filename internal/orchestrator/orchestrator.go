// Package orchestrator implements the Orchestrator: language dispatch,
// parser-registry consultation, walker selection, and fallback
// triggering. Picks a strategy by extension/language and delegates; no
// strategy-specific logic leaks back into the caller.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wattrace/analyzer-core/internal/classify"
	"github.com/wattrace/analyzer-core/internal/lang"
	"github.com/wattrace/analyzer-core/internal/model"
	"github.com/wattrace/analyzer-core/internal/parser"
	"github.com/wattrace/analyzer-core/internal/walker/brace"
	"github.com/wattrace/analyzer-core/internal/walker/fallback"
	"github.com/wattrace/analyzer-core/internal/walker/indent"
)

// Orchestrator wires the language detector, parser registry, and the
// three walker front-ends into the two public entry points, `estimate`
// and `estimate_sync`.
type Orchestrator struct {
	registry *parser.Registry
	consts model.Constants
	logger zerolog.Logger
}

// New constructs an Orchestrator over a not-yet-initialized parser
// registry. Constants always start as model.DefaultConstants();
// WithConstants replaces them.
func New(registry *parser.Registry, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		registry: registry,
		consts: model.DefaultConstants(),
		logger: logger,
	}
}

// WithConstants overrides the model constants used by every subsequent
// Estimate/EstimateSync call.
func (o *Orchestrator) WithConstants(c model.Constants) *Orchestrator {
	o.consts = c
	return o
}

// Estimate implements the `estimate`: it detects the language,
// asks the parser registry for a tree, and walks it with the
// indentation or brace walker. A missing grammar or a parse failure is
// non-fatal — it falls back to textual analysis and records the
// fallback in the result's assumptions.
func (o *Orchestrator) Estimate(ctx context.Context, source []byte, path string, override model.Language) model.AnalysisResult {
	detection := lang.Detect(override, path, string(source))
	if detection.Source == "undetectable" {
		return o.undetectableResult(path)
	}

	result := o.walkWithFallback(ctx, source, path, detection)
	o.annotateProvenance(&result, detection)
	return result
}

// EstimateSync implements the `estimate_sync`: always the
// textual fallback walker, never the parser registry, so it never
// blocks on grammar loading.
func (o *Orchestrator) EstimateSync(source []byte, path string, override model.Language) model.AnalysisResult {
	detection := lang.Detect(override, path, string(source))
	if detection.Source == "undetectable" {
		return o.undetectableResult(path)
	}
	result := *fallback.Analyze(source, detection.Language, path, o.consts)
	o.annotateProvenance(&result, detection)
	return result
}

func (o *Orchestrator) walkWithFallback(ctx context.Context, source []byte, path string, detection lang.Detection) model.AnalysisResult {
	cls := classify.For(detection.Language)

	if o.registry != nil {
		if root, ok := o.registry.Parse(ctx, detection.Language, source); ok {
			var result *model.AnalysisResult
			if model.DialectOf(detection.Language) == model.DialectIndentation {
				result = indent.Analyze(root, path, o.consts, cls)
			} else {
				result = brace.Analyze(root, detection.Language, path, o.consts, cls)
			}
			return *result
		}
	}

	o.logger.Warn().Str("language", string(detection.Language)).Str("path", path).
	Msg("no parse tree available, using textual fallback analysis")
	result := fallback.Analyze(source, detection.Language, path, o.consts)
	result.AddAssumption("no parse tree available — used textual fallback analysis (less precise)")
	return *result
}

// annotateProvenance prepends the two supplemented provenance
// assumptions (model constants used, content-heuristic advisory) ahead
// of whatever the walker itself recorded, matching original_source's
// habit of always logging the constants used as the very first
// assumption of a run.
func (o *Orchestrator) annotateProvenance(result *model.AnalysisResult, detection lang.Detection) {
	provenance := []string{
		formatConstantsAssumption(o.consts),
	}
	if detection.Source == "content" {
		provenance = append(provenance, "language detected via content heuristics (no reliable extension) — treat classification as advisory")
	}
	result.Assumptions = append(provenance, result.Assumptions...)
}

func (o *Orchestrator) undetectableResult(path string) model.AnalysisResult {
	result := model.AnalysisResult{Language: string(model.Unknown), FilePath: path}
	result.AddAssumption("Language could not be detected — no analysis performed")
	return result
}

func formatConstantsAssumption(c model.Constants) string {
	return fmt.Sprintf("model constants: energy_per_op_joules=%g, carbon_g_per_kwh=%g", c.EnergyPerOpJoules, c.CarbonGPerKWh)
}
