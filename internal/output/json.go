/*
PURPOSE:
  Writes run results to a JSON Lines file (NDJSON).
  One record per rerooted tree, for machine parsing.

REQUIREMENTS:
  User-specified:
  - Optional audit trail of what was rerooted and how.

  Implementation-discovered:
  - JSON Lines is append-friendly and easy to grep.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Result

ERROR HANDLING:
  - Returns error on file creation, encoding, or the final flush in Close.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder over the buffered report file.
  - Nothing reaches disk until Close; the runner writes all records at the
    end of an invocation anyway.

USAGE:
  w, err := output.NewJSONWriter("report.jsonl")
  w.Write(result)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If records go missing, check that the caller looks at Close's error.

RELATED FILES:
  - internal/model/result.go

MAINTENANCE:
  - Update if we switch to plain JSON array (not recommended for streaming).
*/

package output

import (
	"encoding/json"

	"github.com/daryltucker/reroot/internal/model"
)

// JSONWriter writes one JSON object per line for each Result.
type JSONWriter struct {
	out *reportFile
	enc *json.Encoder
}

// NewJSONWriter creates (or truncates) path.
func NewJSONWriter(path string) (*JSONWriter, error) {
	out, err := createReport(path)
	if err != nil {
		return nil, err
	}
	return &JSONWriter{out: out, enc: json.NewEncoder(out.w)}, nil
}

// Write appends r as a single line.
func (jw *JSONWriter) Write(r model.Result) error {
	return jw.enc.Encode(r)
}

// Close flushes the buffered records and closes the file.
func (jw *JSONWriter) Close() error {
	return jw.out.Close()
}
