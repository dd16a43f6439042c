package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_LiteralOnly(t *testing.T) {
	tpl, err := Compile("plain text, no placeholders", Config{})
	require.NoError(t, err)
	require.Len(t, tpl.segments, 1)
	assert.Equal(t, "plain text, no placeholders", tpl.segments[0].lit)
}

func TestCompile_Empty(t *testing.T) {
	tpl, err := Compile("", Config{})
	require.NoError(t, err)
	assert.Empty(t, tpl.segments)
}

func TestCompile_SegmentOrder(t *testing.T) {
	tpl, err := Compile("{method} {pathname} -> {status}", Config{})
	require.NoError(t, err)

	require.Len(t, tpl.segments, 5)
	assert.True(t, tpl.segments[0].isPH)
	assert.Equal(t, phMethod, tpl.segments[0].ph)
	assert.Equal(t, " ", tpl.segments[1].lit)
	assert.Equal(t, phPathname, tpl.segments[2].ph)
	assert.Equal(t, " -> ", tpl.segments[3].lit)
	assert.Equal(t, phStatus, tpl.segments[4].ph)
}

func TestCompile_AllPlaceholders(t *testing.T) {
	tpl, err := Compile("{now}{duration}{level}{method}{pathname}{status}{message}{ip}", Config{})
	require.NoError(t, err)
	require.Len(t, tpl.segments, 8)
	for _, seg := range tpl.segments {
		assert.True(t, seg.isPH)
	}
}

func TestCompile_UnknownPlaceholder(t *testing.T) {
	_, err := Compile("{method} {host}", Config{})
	require.Error(t, err)
	// The error must identify both the offending format and token.
	assert.Contains(t, err.Error(), "{host}")
	assert.Contains(t, err.Error(), `"{method} {host}"`)
}

func TestCompile_UnbalancedBrace(t *testing.T) {
	for _, format := range []string{
		"{method",
		"prefix {",
		"{me{thod}",
	} {
		_, err := Compile(format, Config{})
		require.Error(t, err, "format %q", format)
		assert.Contains(t, err.Error(), "unbalanced", "format %q", format)
	}
}

func TestCompile_LoneClosingBraceIsLiteral(t *testing.T) {
	tpl, err := Compile("a} {status}", Config{})
	require.NoError(t, err)
	assert.Equal(t, "a} ", tpl.segments[0].lit)
}

func TestCompile_DefaultFormat(t *testing.T) {
	_, err := Compile(DefaultFormat, Config{})
	require.NoError(t, err)
}

func TestMustCompile_PanicsOnBadFormat(t *testing.T) {
	assert.Panics(t, func() {
		MustCompile("{bogus}", Config{})
	})
}
