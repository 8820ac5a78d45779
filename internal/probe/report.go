package probe

import (
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/inoxlang/arrcompat/internal/compare"
	"github.com/inoxlang/arrcompat/internal/dump"
	"github.com/inoxlang/arrcompat/internal/value"
	"github.com/oklog/ulid/v2"
)

// Report is the machine readable outcome of a matrix run.
type Report struct {
	RunID  string      `json:"runId"`
	Matrix string      `json:"matrix"`
	Date   time.Time   `json:"date"`
	Rows   []ReportRow `json:"rows"`

	// number of rows with at least one fired latch
	Fired int `json:"fired"`
}

type ReportRow struct {
	Left    string          `json:"left"`
	Right   string          `json:"right"`
	Variant string          `json:"variant"`
	Flags   map[string]bool `json:"flags"`
	Results map[string]any  `json:"results"`
}

func NewReport(matrixName string, rows []Row) *Report {
	report := &Report{
		RunID:  ulid.Make().String(),
		Matrix: matrixName,
		Date:   time.Now().UTC(),
		Rows:   make([]ReportRow, 0, len(rows)),
	}

	for _, row := range rows {
		reportRow := ReportRow{
			Left:    dump.String(row.Left),
			Right:   dump.String(row.Right),
			Variant: row.Variant.String(),
			Flags:   map[string]bool{},
			Results: map[string]any{},
		}

		anyFired := false
		for i, op := range compare.Ops {
			reportRow.Flags[op.String()] = row.Fired[i]
			reportRow.Results[op.String()] = jsonResult(row.Results[i])
			anyFired = anyFired || row.Fired[i]
		}
		if anyFired {
			report.Fired++
		}
		report.Rows = append(report.Rows, reportRow)
	}
	return report
}

func jsonResult(v value.Value) any {
	switch r := v.(type) {
	case value.Bool:
		return bool(r)
	case value.Int:
		return int64(r)
	default:
		//the operation panicked
		return nil
	}
}

func (r *Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}
