// ABOUTME: Plain tab-delimited renderer for non-terminal destinations.
// ABOUTME: One line per record plus a count/average summary line.
package render

import (
	"fmt"
	"strings"

	"github.com/harperreed/bplog/internal/models"
)

// PlainRenderer emits tab-delimited lines, one per measurement, followed
// by a summary line.
type PlainRenderer struct{}

// Render formats records as "date\ttime\tsys:dia\tcomment" lines.
func (r *PlainRenderer) Render(records []models.Measurement) (string, error) {
	agg, err := summarize(records)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := range records {
		m := &records[i]
		fmt.Fprintf(&b, "%s\t%s\t%s\t%s\n", m.Date, m.Time, m.BloodPressure(), m.Comment)
	}
	fmt.Fprintf(&b, "Records: %d, Average: %d:%d\n", agg.Count, agg.AvgSys, agg.AvgDia)

	return b.String(), nil
}
