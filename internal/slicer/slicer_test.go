package slicer

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct{}

func (widget) Spin()     {}
func (*widget) Stop(int) {}

func TestMeasure(t *testing.T) {
	t.Parallel()

	describe := func(v any) string { return fmt.Sprintf("value<%v>;", v) }

	s, err := Measure(describe("VOID"), "VOID")
	require.NoError(t, err)
	assert.Equal(t, Slicer{Prefix: 6, Suffix: 2}, s)

	assert.Equal(t, "Green", s.Cut(describe("Green")))
	assert.Equal(t, "Colors(7)", s.Cut(describe("Colors(7)")))
	assert.Empty(t, s.Cut(describe("")))
	assert.Empty(t, s.Cut("x"))
}

func TestMeasureErrors(t *testing.T) {
	t.Parallel()

	_, err := Measure("value<VOID>", "NOPE")
	require.ErrorIs(t, err, ErrSentinelNotFound)

	_, err = Measure("value<VOID>", "")
	require.ErrorIs(t, err, ErrSentinelNotFound)
}

func TestUnqualify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, sep, expected string
	}{
		{"Colors.Red", ".", "Red"},
		{"pkg.Colors.Red", ".", "Red"},
		{"Red", ".", "Red"},
		{"Reflect::Enums::VOID", "::", "VOID"},
		{"Red", "", "Red"},
		{"trailing.", ".", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Unqualify(tt.name, tt.sep))
		})
	}
}

func TestFuncName(t *testing.T) {
	t.Parallel()

	var w widget
	var buf bytes.Buffer

	assert.Equal(t, "Spin", FuncName(widget.Spin))
	assert.Equal(t, "Stop", FuncName((*widget).Stop))
	assert.Equal(t, "Spin", FuncName(w.Spin))
	assert.Equal(t, "Reset", FuncName((*bytes.Buffer).Reset))
	assert.Equal(t, "Len", FuncName(buf.Len))
	assert.Equal(t, "Measure", FuncName(Measure))

	assert.Empty(t, FuncName(nil))
	assert.Empty(t, FuncName(42))

	var nilFunc func()
	assert.Empty(t, FuncName(nilFunc))
}
