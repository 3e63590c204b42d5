// ABOUTME: Terminal time-series chart of blood pressure readings.
// ABOUTME: Plots systolic and diastolic series in (date, time) order.
package plot

import (
	"github.com/guptarohit/asciigraph"

	"github.com/harperreed/bplog/internal/apperror"
	"github.com/harperreed/bplog/internal/models"
)

// Chart renders an ASCII line chart of the systolic and diastolic series,
// in the order the records arrive (the caller supplies them sorted by
// date and time). An empty set returns apperror.ErrNoRecords so the
// caller can report "no data to plot" instead of drawing an empty chart.
func Chart(records []models.Measurement) (string, error) {
	if len(records) == 0 {
		return "", apperror.ErrNoRecords
	}

	systolic := make([]float64, len(records))
	diastolic := make([]float64, len(records))
	for i := range records {
		systolic[i] = float64(records[i].Systolic)
		diastolic[i] = float64(records[i].Diastolic)
	}

	graph := asciigraph.PlotMany(
		[][]float64{systolic, diastolic},
		asciigraph.Height(15),
		asciigraph.Caption("Blood pressure over time (mmHg)"),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.SeriesLegends("systolic", "diastolic"),
	)
	return graph, nil
}
