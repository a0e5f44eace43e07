package constant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wattrace/analyzer-core/internal/constant"
)

func TestResolveLiteral(t *testing.T) {
	tests := []struct {
		text string
		want int64
		ok   bool
	}{
		{"42", 42, true},
		{"-7", -7, true},
		{"+3", 3, true},
		{"0x1F", 31, true},
		{"0o17", 15, true},
		{"0b101", 5, true},
		{"1_000_000", 1000000, true},
		{"10L", 10, true},
		{"3.9", 3, true},
		{"not_a_number", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := constant.ResolveLiteral(tt.text)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBinaryOp_DivisionByZeroUnresolved(t *testing.T) {
	_, ok := constant.BinaryOp("/", 10, 0)
	assert.False(t, ok)
	_, ok = constant.BinaryOp("%", 10, 0)
	assert.False(t, ok)
}

func TestBinaryOp_FloorDivisionMatchesPythonSemantics(t *testing.T) {
	v, ok := constant.BinaryOp("/", -7, 2)
	assert.True(t, ok)
	assert.Equal(t, int64(-4), v)
}

func TestTable_ScopeSaveRestore(t *testing.T) {
	tbl := constant.New()
	tbl.Set("n", 10)

	restore := tbl.EnterScope()
	tbl.Set("n", 20)
	tbl.Set("local", 1)
	v, ok := tbl.Lookup("n")
	assert.True(t, ok)
	assert.Equal(t, int64(20), v)

	restore()
	v, ok = tbl.Lookup("n")
	assert.True(t, ok)
	assert.Equal(t, int64(10), v)
	_, ok = tbl.Lookup("local")
	assert.False(t, ok, "bindings learned inside the scope must not leak out")
}
