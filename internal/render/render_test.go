// ABOUTME: Tests for the measurement renderers.
// ABOUTME: Pins average rounding, empty-set handling, and malformed rejection.
package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/bplog/internal/apperror"
	"github.com/harperreed/bplog/internal/models"
)

func sampleRecords() []models.Measurement {
	return []models.Measurement{
		{ID: 1, Date: "2024-06-01", Time: "07:15", Systolic: 120, Diastolic: 80, Comment: "morning"},
		{ID: 2, Date: "2024-06-01", Time: "21:00", Systolic: 122, Diastolic: 82},
		{ID: 3, Date: "2024-06-02", Time: "08:00", Systolic: 124, Diastolic: 84},
	}
}

func TestPlainRendererLinesAndSummary(t *testing.T) {
	out, err := (&PlainRenderer{}).Render(sampleRecords())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "3 records plus summary")

	assert.Equal(t, "2024-06-01\t07:15\t120:80\tmorning", lines[0])
	assert.Equal(t, "2024-06-01\t21:00\t122:82\t", lines[1])
	assert.Equal(t, "2024-06-02\t08:00\t124:84\t", lines[2])
	assert.Equal(t, "Records: 3, Average: 122:82", lines[3])
}

func TestTableRendererSummaryFooter(t *testing.T) {
	out, err := (&TableRenderer{}).Render(sampleRecords())
	require.NoError(t, err)

	assert.Contains(t, out, "DATE")
	assert.Contains(t, out, "BLOOD PRESSURE")
	assert.Contains(t, out, "120:80")
	assert.Contains(t, out, "122:82")
	// tablewriter upcases footer cells
	assert.Contains(t, strings.ToLower(out), "records")
	assert.Contains(t, out, "3")
}

func TestSummaryRoundsHalvesAwayFromZero(t *testing.T) {
	records := []models.Measurement{
		{Date: "2024-06-01", Time: "07:00", Systolic: 121, Diastolic: 81},
		{Date: "2024-06-01", Time: "08:00", Systolic: 122, Diastolic: 82},
	}

	agg, err := summarize(records)
	require.NoError(t, err)

	// 121.5 and 81.5 round up, not to even
	assert.Equal(t, 122, agg.AvgSys)
	assert.Equal(t, 82, agg.AvgDia)
}

func TestRenderEmptySet(t *testing.T) {
	for _, r := range []Renderer{&PlainRenderer{}, &TableRenderer{}} {
		_, err := r.Render(nil)
		assert.ErrorIs(t, err, apperror.ErrNoRecords)
	}
}

func TestRenderRejectsMalformedRecord(t *testing.T) {
	records := sampleRecords()
	records[1].Time = "" // structurally invalid

	for _, r := range []Renderer{&PlainRenderer{}, &TableRenderer{}} {
		out, err := r.Render(records)
		assert.ErrorIs(t, err, apperror.ErrMalformedRecord)
		assert.Empty(t, out, "nothing partial may be emitted")
	}
}

func TestForWriterFallsBackToPlain(t *testing.T) {
	r := ForWriter(&bytes.Buffer{})
	_, ok := r.(*PlainRenderer)
	assert.True(t, ok, "non-terminal writers get the plain renderer")
}
