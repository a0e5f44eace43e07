package orchestrator_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wattrace/analyzer-core/internal/model"
	"github.com/wattrace/analyzer-core/internal/orchestrator"
	"github.com/wattrace/analyzer-core/internal/parser"
)

func TestEstimate_UsesParseTreeWhenAvailable(t *testing.T) {
	registry := parser.New("", zerolog.Nop())
	require.NoError(t, registry.Initialize())
	orch := orchestrator.New(registry, zerolog.Nop())

	src := "def add(a, b):\n    return a + b\n"
	result := orch.Estimate(context.Background(), []byte(src), "add.py", model.Unknown)

	require.Len(t, result.Functions, 1)
	assert.Equal(t, "python", result.Language)
	assert.NotEmpty(t, result.Assumptions, "provenance assumption is always recorded")
}

func TestEstimateSync_NeverUsesParserRegistry(t *testing.T) {
	orch := orchestrator.New(nil, zerolog.Nop())
	src := "def add(a, b):\n    return a + b\n"
	result := orch.EstimateSync([]byte(src), "add.py", model.Unknown)

	require.Len(t, result.Functions, 1)
	assert.Equal(t, "add", result.Functions[0].Name)
}

func TestEstimate_UndetectableLanguageYieldsEmptyResultWithAssumption(t *testing.T) {
	orch := orchestrator.New(nil, zerolog.Nop())
	result := orch.Estimate(context.Background(), []byte("   "), "", model.Unknown)

	assert.Empty(t, result.Functions)
	require.Len(t, result.Assumptions, 1)
	assert.Equal(t, "Language could not be detected — no analysis performed", result.Assumptions[0])
}

func TestEstimate_FallsBackWhenNoRegistry(t *testing.T) {
	orch := orchestrator.New(nil, zerolog.Nop())
	src := "int add(int a, int b) { return a + b; }\n"
	result := orch.Estimate(context.Background(), []byte(src), "add.c", model.Unknown)

	require.Len(t, result.Functions, 1)
	assumptionsJoined := ""
	for _, a := range result.Assumptions {
		assumptionsJoined += a + "\n"
	}
	assert.Contains(t, assumptionsJoined, "fallback")
}
