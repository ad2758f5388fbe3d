package rendertext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeHTML_KeepsStructureStripsScripts(t *testing.T) {
	r := New()

	out, err := r.SafeHTML("## Findings\n\n- clay to 4m\n- sand below\n\n<script>alert(1)</script>")
	require.NoError(t, err)

	assert.Contains(t, out, "<h2")
	assert.Contains(t, out, "<li>clay to 4m</li>")
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "alert(1)")
}

func TestSafeHTML_DropsEventHandlers(t *testing.T) {
	r := New()

	out, err := r.SafeHTML(`<img src="x" onerror="alert(1)"> groundwater at 2.3m`)
	require.NoError(t, err)

	assert.NotContains(t, out, "onerror")
	assert.Contains(t, out, "groundwater at 2.3m")
}

func TestSafeHTML_HardWrapsSingleNewlines(t *testing.T) {
	r := New()

	out, err := r.SafeHTML("line one\nline two")
	require.NoError(t, err)
	assert.Contains(t, out, "<br")
}

func TestText_StripsAllMarkup(t *testing.T) {
	r := New()

	out, err := r.Text("**Average** N60 is `12` &amp; rising\n\n<script>x</script>")
	require.NoError(t, err)

	assert.Contains(t, out, "Average N60 is 12 & rising")
	assert.NotContains(t, out, "<")
	assert.NotContains(t, out, "script")
}

func TestText_CollapsesBlankRuns(t *testing.T) {
	r := New()

	out, err := r.Text("first paragraph\n\n\n\nsecond paragraph")
	require.NoError(t, err)
	assert.Equal(t, "first paragraph\n\nsecond paragraph", out)
}

func TestParseEvidence(t *testing.T) {
	ev := ParseEvidence("BoreholeID,FinalDepth_m\nBH-1,12.5\nBH-2,\"9,8\"")
	require.NotNil(t, ev)
	assert.Equal(t, []string{"BoreholeID", "FinalDepth_m"}, ev.Header)
	require.Len(t, ev.Rows, 2)
	assert.Equal(t, []string{"BH-2", "9,8"}, ev.Rows[1])
}

func TestParseEvidence_ToleratesRaggedRows(t *testing.T) {
	ev := ParseEvidence("a,b,c\n1,2\n1,2,3,4")
	require.NotNil(t, ev)
	assert.Len(t, ev.Rows, 2)
}

func TestParseEvidence_EmptyBlockIsNil(t *testing.T) {
	assert.Nil(t, ParseEvidence(""))
	assert.Nil(t, ParseEvidence("   \n  "))
}
