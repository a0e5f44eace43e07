package lang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wattrace/analyzer-core/internal/lang"
	"github.com/wattrace/analyzer-core/internal/model"
)

func TestDetect_OverrideWinsOverEverything(t *testing.T) {
	d := lang.Detect(model.Java, "script.py", "def f():\n    pass\n")
	assert.Equal(t, model.Java, d.Language)
	assert.Equal(t, "override", d.Source)
}

func TestDetect_ExtensionBeatsContent(t *testing.T) {
	d := lang.Detect(model.Unknown, "main.cpp", "def f():\n    pass\n")
	assert.Equal(t, model.Cpp, d.Language)
	assert.Equal(t, "extension", d.Source)
}

func TestDetect_ContentHeuristicWhenExtensionUnknown(t *testing.T) {
	d := lang.Detect(model.Unknown, "snippet.txt", "public static class Foo {}\n")
	assert.Equal(t, model.Java, d.Language)
	assert.Equal(t, "content", d.Source)
}

func TestDetect_DefaultsToPythonWhenNothingMatches(t *testing.T) {
	d := lang.Detect(model.Unknown, "", "some random gibberish that matches nothing")
	assert.Equal(t, model.Python, d.Language)
	assert.Equal(t, "default", d.Source)
}

func TestDetect_UndetectableWhenNoPathAndNoSource(t *testing.T) {
	d := lang.Detect(model.Unknown, "", "   \n\t")
	assert.Equal(t, model.Unknown, d.Language)
	assert.Equal(t, "undetectable", d.Source)
}

func TestDetectByPath_UnrecognizedExtension(t *testing.T) {
	_, ok := lang.DetectByPath("notes.rs")
	assert.False(t, ok)
}

func TestDetectByContent_PythonNeedsDefAndColon(t *testing.T) {
	l, ok := lang.DetectByContent("def foo(x):\n    return x + 1\n")
	assert.True(t, ok)
	assert.Equal(t, model.Python, l)
}
