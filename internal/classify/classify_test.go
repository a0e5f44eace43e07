package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wattrace/analyzer-core/internal/classify"
	"github.com/wattrace/analyzer-core/internal/model"
)

func TestClassify_Precedence(t *testing.T) {
	tests := []struct {
		name       string
		lang       model.Language
		shortName  string
		fullText   string
		wantKind   model.OperationKind
	}{
		{"python io short name", model.Python, "print", "print", model.IOOperation},
		{"python network short name", model.Python, "fetch", "fetch", model.NetworkOperation},
		{"python alloc short name", model.Python, "list", "list", model.MemoryAllocation},
		{"python plain call", model.Python, "compute", "compute", model.FunctionCall},
		{"java io substring", model.Java, "println", "System.out.println", model.IOOperation},
		{"java network substring", model.Java, "openConnection", "new URL(x).openConnection", model.NetworkOperation},
		{"js io substring", model.JavaScript, "log", "console.log", model.IOOperation},
		{"ts reuses javascript set", model.TypeScript, "log", "console.log", model.IOOperation},
		{"c alloc short name", model.C, "malloc", "malloc", model.MemoryAllocation},
		{"cpp io substring", model.Cpp, "operator<<", "std::cout << x", model.IOOperation},
		{"unknown language never matches", model.Unknown, "print", "print", model.FunctionCall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sets := classify.For(tt.lang)
			got := classify.Classify(sets, tt.shortName, tt.fullText)
			assert.Equal(t, tt.wantKind, got)
		})
	}
}

func TestClassify_IOTakesPrecedenceOverNetworkWhenBothMatch(t *testing.T) {
	sets := classify.Sets{
		IOShortNames:      map[string]struct{}{"dual": {}},
		NetworkShortNames: map[string]struct{}{"dual": {}},
	}
	assert.Equal(t, model.IOOperation, classify.Classify(sets, "dual", "dual"))
}
