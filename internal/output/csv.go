/*
PURPOSE:
  Writes run results to a CSV file.
  Spreadsheet-friendly twin of the JSON Lines report.

REQUIREMENTS:
  User-specified:
  - Report selectable by file extension (.csv).

  Implementation-discovered:
  - Overwrite on each run; a report describes one invocation.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Result

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv over the buffered report file.
  - Header goes out with the first flush, so an empty run still gets one.

USAGE:
  w, err := output.NewCSVWriter("report.csv")
  w.Write(result)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If CSV format changes, update header and record conversion.

RELATED FILES:
  - internal/model/result.go

MAINTENANCE:
  - Update Write() mapping when Result struct changes.
*/

package output

import (
	"encoding/csv"
	"strconv"

	"github.com/daryltucker/reroot/internal/model"
)

// CSVHeader is the first row of every CSV report.
var CSVHeader = []string{
	"input", "output", "tree_index", "outgroup", "timestamp", "duration_s",
	"leaves", "clades", "length_before", "length_after", "error",
}

// CSVWriter writes one row per Result under CSVHeader.
type CSVWriter struct {
	out *reportFile
	csv *csv.Writer
}

// NewCSVWriter creates (or truncates) path and writes the header row.
func NewCSVWriter(path string) (*CSVWriter, error) {
	out, err := createReport(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(out.w)
	if err := w.Write(CSVHeader); err != nil {
		out.Close()
		return nil, err
	}
	return &CSVWriter{out: out, csv: w}, nil
}

// Write appends r as a row. Lengths use the shortest exact form, the same
// as in the tree output.
func (cw *CSVWriter) Write(r model.Result) error {
	return cw.csv.Write([]string{
		r.Input,
		r.Output,
		strconv.Itoa(r.TreeIndex),
		r.Outgroup,
		r.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		strconv.FormatFloat(r.Duration.Seconds(), 'f', 6, 64),
		strconv.Itoa(r.Leaves),
		strconv.Itoa(r.Clades),
		strconv.FormatFloat(r.LengthBefore, 'g', -1, 64),
		strconv.FormatFloat(r.LengthAfter, 'g', -1, 64),
		r.Error,
	})
}

// Close flushes the rows and closes the file.
func (cw *CSVWriter) Close() error {
	cw.csv.Flush()
	if err := cw.csv.Error(); err != nil {
		cw.out.Close()
		return err
	}
	return cw.out.Close()
}
