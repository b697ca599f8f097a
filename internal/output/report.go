package output

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/daryltucker/reroot/internal/model"
)

// ResultWriter is implemented by the CSV and JSON Lines report writers.
type ResultWriter interface {
	Write(r model.Result) error
	Close() error
}

// NewResultWriter picks a report format from the file extension: ".csv"
// gives CSV, anything else JSON Lines.
func NewResultWriter(path string) (ResultWriter, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		w, err := NewCSVWriter(path)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	w, err := NewJSONWriter(path)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// reportFile is a report destination buffered in memory until Close.
type reportFile struct {
	f *os.File
	w *bufio.Writer
}

func createReport(path string) (*reportFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &reportFile{f: f, w: bufio.NewWriter(f)}, nil
}

// Close flushes, then closes; the first error wins.
func (r *reportFile) Close() error {
	err := r.w.Flush()
	if cerr := r.f.Close(); err == nil {
		err = cerr
	}
	return err
}
