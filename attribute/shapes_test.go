package attribute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeAccepts(t *testing.T) {
	tests := []struct {
		shape Shape
		valid []string
		bad   []string
	}{
		{ShapeDouble, []string{"1", "1.5", "-.5", "2e3"}, []string{"", "abc", "1,2"}},
		{ShapeInt, []string{"0", "-3", "42"}, []string{"1.5", "x"}},
		{ShapeBool, []string{"true", "False", "yes", "no", "0"}, []string{"maybe"}},
		{ShapePoint, []string{"1,2", "1.5,-2", "1,2,3", "1,2!"}, []string{"1", "1 2", "a,b"}},
		{ShapeAddPoint, []string{"+1,2", "3,4"}, []string{"+x"}},
		{ShapeRect, []string{"0,0,10,20"}, []string{"0,0,10"}},
		{ShapeColor, []string{"red", "#ff0000", "#ff000080", "0.1 0.2 0.3", "/blues9/3", "light grey"}, []string{"#ff00", "1.5"}},
		{ShapeColorList, []string{"red:blue", "red;0.3:blue", "#00ff00"}, []string{"red;x", "red::"}},
		{ShapeDoubleList, []string{"1.2", "1:2:3"}, []string{"1:x"}},
		{ShapePointList, []string{"1,2 3,4"}, []string{"", "1,2 x"}},
		{ShapeStyle, []string{"filled", "rounded,filled", "setlinewidth(2),dashed"}, []string{"", "sparkly"}},
		{ShapeArrowType, []string{"normal", "onormal", "lteeoldiamond", "invodot", "ediamond", "none"}, []string{"arrow", "normalnormalnormalnormalnormal"}},
		{ShapePackMode, []string{"node", "array", "array_c4", "array3"}, []string{"arrayx", "grid"}},
		{ShapeStartType, []string{"random", "self5", "regular", "42"}, []string{"chaos"}},
		{ShapeRankDir, []string{"LR", "TB", "rl"}, []string{"up"}},
		{ShapeRankType, []string{"same", "sink"}, []string{"top"}},
		{ShapeNodeShape, []string{"box", "Mrecord", "doublecircle"}, []string{"blob"}},
		{ShapeEscString, []string{"anything \\N at all"}, nil},
	}
	for _, tt := range tests {
		for _, v := range tt.valid {
			assert.True(t, tt.shape.Accepts(v), "%s should accept %q", tt.shape, v)
		}
		for _, v := range tt.bad {
			assert.False(t, tt.shape.Accepts(v), "%s should reject %q", tt.shape, v)
		}
	}
}

func TestCheckValue(t *testing.T) {
	assert.NoError(t, CheckValue("fontsize", "12"))
	assert.NoError(t, CheckValue("margin", "0.2,0.1"))
	assert.NoError(t, CheckValue("label", "free text"))
	assert.NoError(t, CheckValue("unknown_key", "whatever"))

	err := CheckValue("fontsize", "large")
	var valErr *ValueError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "fontsize", valErr.Key)
	assert.Equal(t, `value "large" for "fontsize" is not a valid double`, err.Error())

	err = CheckValue("margin", "wide")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "double or point")
}

func TestAcceptsHTML(t *testing.T) {
	assert.True(t, AcceptsHTML("label"))
	assert.True(t, AcceptsHTML("xlabel"))
	assert.False(t, AcceptsHTML("color"))
}
