// ABOUTME: Boxed table renderer for terminal output.
// ABOUTME: Uses tablewriter with the summary in the footer row.
package render

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/harperreed/bplog/internal/models"
)

// TableRenderer draws a boxed table with a footer summary row.
type TableRenderer struct{}

// Render formats records as a boxed table headed Date/Time/Blood
// Pressure/Comment, with record count and average reading in the footer.
func (r *TableRenderer) Render(records []models.Measurement) (string, error) {
	agg, err := summarize(records)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"Date", "Time", "Blood Pressure", "Comment"})

	for i := range records {
		m := &records[i]
		table.Append([]string{m.Date, m.Time, m.BloodPressure(), m.Comment})
	}

	table.SetFooter([]string{
		"Records",
		strconv.Itoa(agg.Count),
		"Average",
		strconv.Itoa(agg.AvgSys) + ":" + strconv.Itoa(agg.AvgDia),
	})
	table.Render()

	return b.String(), nil
}
