package telemetry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTextGroupsByCategory(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, RenderText(&buf, sampleRecords()))
	out := buf.String()

	assert.Contains(t, out, " SYSTEM TELEMETRY ")
	assert.Contains(t, out, " THERMAL TELEMETRY ")
	assert.Contains(t, out, " MEMORY TELEMETRY ")
	assert.NotContains(t, out, " STORAGE TELEMETRY ", "empty categories print no banner")

	assert.Contains(t, out, strings.Repeat("=", 60))
	// Two thermal records share one banner, separated by a rule.
	assert.Contains(t, out, strings.Repeat("-", 40))

	// Banners follow the fixed category order.
	assert.Less(t,
		strings.Index(out, " SYSTEM TELEMETRY "),
		strings.Index(out, " THERMAL TELEMETRY "))
	assert.Less(t,
		strings.Index(out, " THERMAL TELEMETRY "),
		strings.Index(out, " MEMORY TELEMETRY "))
}

func TestRenderTextFields(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, RenderText(&buf, sampleRecords()))
	out := buf.String()

	assert.Contains(t, out, "type: temperature")
	assert.Contains(t, out, "reading_celsius: 54.5")
	assert.Contains(t, out, "reading_rpm: 7800")
	assert.Contains(t, out, "power_state: On")

	// Absent readings never render as zero.
	assert.NotContains(t, out, "reading_celsius: 0")
}

func TestRenderTextEmpty(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, RenderText(&buf, nil))
	assert.Empty(t, buf.String())
}
