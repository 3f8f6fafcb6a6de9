package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanBraceBlock_Simple(t *testing.T) {
	body, ok := ScanBraceBlock("{a: 1}", 1)
	assert.True(t, ok)
	assert.Equal(t, "a: 1", body)
}

func TestScanBraceBlock_Nested(t *testing.T) {
	src := "{a: {b: {c: 1}}, d: 2}"
	body, ok := ScanBraceBlock(src, 1)
	assert.True(t, ok)
	assert.Equal(t, "a: {b: {c: 1}}, d: 2", body)
}

func TestScanBraceBlock_BracesInsideStrings(t *testing.T) {
	src := `{content: "}{", after: 1}`
	body, ok := ScanBraceBlock(src, 1)
	assert.True(t, ok)
	assert.Equal(t, `content: "}{", after: 1`, body)
}

func TestScanBraceBlock_BracesInsideTemplateText(t *testing.T) {
	src := "{content: `}`, after: 1}"
	body, ok := ScanBraceBlock(src, 1)
	assert.True(t, ok)
	assert.Equal(t, "content: `}`, after: 1", body)
}

func TestScanBraceBlock_TemplateInterpolationNests(t *testing.T) {
	src := "{width: `${size({n: 1})}px`}"
	body, ok := ScanBraceBlock(src, 1)
	assert.True(t, ok)
	assert.Equal(t, "width: `${size({n: 1})}px`", body)
}

func TestScanBraceBlock_EscapedQuote(t *testing.T) {
	src := `{s: "a\"}b", n: 2}`
	body, ok := ScanBraceBlock(src, 1)
	assert.True(t, ok)
	assert.Equal(t, `s: "a\"}b", n: 2`, body)
}

func TestScanBraceBlock_Unbalanced(t *testing.T) {
	_, ok := ScanBraceBlock("{a: {b: 1}", 1)
	assert.False(t, ok)
}

func TestScanBraceBlock_OutOfRangeStart(t *testing.T) {
	_, ok := ScanBraceBlock("{}", 99)
	assert.False(t, ok)
}

func TestCollapseInterpolations_Single(t *testing.T) {
	out := CollapseInterpolations("margin: ${theme.space[2]}px")
	assert.Equal(t, "margin: (dynamic)px", out)
}

func TestCollapseInterpolations_MultipleAndNested(t *testing.T) {
	out := CollapseInterpolations("${a} and ${fn({b: 1})}")
	assert.Equal(t, "(dynamic) and (dynamic)", out)
}

func TestCollapseInterpolations_UnbalancedLeftAlone(t *testing.T) {
	out := CollapseInterpolations("width: ${broken")
	assert.Equal(t, "width: ${broken", out)
}

func TestCollapseInterpolations_NoInterpolation(t *testing.T) {
	assert.Equal(t, "16px", CollapseInterpolations("16px"))
}
