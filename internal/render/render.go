// ABOUTME: Tabular rendering of measurement sets with an aggregate summary.
// ABOUTME: Selects boxed or plain output by terminal capability detection.
package render

import (
	"io"
	"math"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/harperreed/bplog/internal/apperror"
	"github.com/harperreed/bplog/internal/models"
)

// Renderer turns a measurement set into display text. Implementations
// must end with a summary carrying the record count and the average
// reading.
type Renderer interface {
	Render(records []models.Measurement) (string, error)
}

// ForWriter picks a renderer for the destination: the boxed table when w
// is a terminal, plain tab-delimited output otherwise (pipes, files).
func ForWriter(w io.Writer) Renderer {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return &TableRenderer{}
	}
	return &PlainRenderer{}
}

// summary holds the trailing aggregate of a rendered set. Averages are
// rounded with math.Round, so halves round away from zero.
type summary struct {
	Count  int
	AvgSys int
	AvgDia int
}

// summarize validates every record and computes the aggregate. An empty
// set returns apperror.ErrNoRecords rather than dividing by zero. A
// structurally invalid record aborts the whole rendering with
// apperror.ErrMalformedRecord; nothing partial is emitted.
func summarize(records []models.Measurement) (*summary, error) {
	if len(records) == 0 {
		return nil, apperror.ErrNoRecords
	}

	var sumSys, sumDia int
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, apperror.MalformedRecord(err)
		}
		sumSys += records[i].Systolic
		sumDia += records[i].Diastolic
	}

	n := len(records)
	return &summary{
		Count:  n,
		AvgSys: int(math.Round(float64(sumSys) / float64(n))),
		AvgDia: int(math.Round(float64(sumDia) / float64(n))),
	}, nil
}
