/*
PURPOSE:
  High-level runner that orchestrates one invocation.
  Read input -> parse -> reroot every tree -> write output -> report.

REQUIREMENTS:
  User-specified:
  - Output lands in <input>_rerooted.tre, terminated by ";" and a newline.
  - On any failure no output file is created or left half-written.

  Implementation-discovered:
  - Multi-tree files are handled with Request.All.
  - Output can go to stdout for pipelines.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/newick, internal/output, internal/config

ERROR HANDLING:
  - File failures become *errors.IOError.
  - Parse and reroot errors are returned unchanged (typed).
  - Report write failures are logged, never fatal.

IMPLEMENTATION RULES:
  - Buffer the whole output before touching the destination.
  - Write through a temp file in the destination directory, then rename.

USAGE:
  path, err := engine.Run(cfg, engine.Request{Input: "tree.nwk", Outgroup: "C"})

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/reroot.go

MAINTENANCE:
  - Update if output naming rules change.
*/

package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/daryltucker/reroot/internal/config"
	rerr "github.com/daryltucker/reroot/internal/errors"
	"github.com/daryltucker/reroot/internal/model"
	"github.com/daryltucker/reroot/internal/newick"
	"github.com/daryltucker/reroot/internal/output"
)

// Request describes one invocation.
type Request struct {
	Input    string
	Outgroup string

	// All reroots every tree in the input instead of requiring exactly one.
	All bool

	// Stdout, when set, receives the trees instead of the output file.
	Stdout io.Writer
}

// OutputPath names the file the rerooted trees are written to.
func OutputPath(cfg *config.Config, input string) string {
	return input + cfg.OutputSuffix
}

// Run executes one invocation and returns the path written ("" when the
// trees went to Request.Stdout).
func Run(cfg *config.Config, req Request) (string, error) {
	dest := ""
	if req.Stdout == nil {
		dest = OutputPath(cfg, req.Input)
	}

	var results []model.Result
	defer func() { writeReport(cfg.ReportFile, results) }()

	trees, err := ReadTrees(req.Input, req.All)
	if err != nil {
		results = append(results, model.Result{
			Input:     req.Input,
			Outgroup:  req.Outgroup,
			Timestamp: time.Now(),
			Error:     err.Error(),
		})
		return "", err
	}
	output.Logger.Debug("Parsed input", "input", req.Input, "trees", len(trees))

	var buf bytes.Buffer
	for i, tree := range trees {
		start := time.Now()
		res := model.Result{
			Input:     req.Input,
			Output:    dest,
			TreeIndex: i,
			Outgroup:  req.Outgroup,
			Timestamp: start,
			Leaves:    len(tree.Leaves()),
		}
		res.LengthBefore, _ = tree.TotalLength()

		rerooted, err := Reroot(tree, req.Outgroup)
		res.Duration = time.Since(start)
		if err != nil {
			res.Error = err.Error()
			results = append(results, res)
			if req.All {
				return "", fmt.Errorf("tree %d: %w", i+1, err)
			}
			return "", err
		}
		res.Clades = rerooted.Len()
		res.LengthAfter, _ = rerooted.TotalLength()
		results = append(results, res)

		output.Logger.Info("Rerooted tree",
			"input", req.Input,
			"tree", i+1,
			"outgroup", req.Outgroup,
			"leaves", res.Leaves,
		)
		if err := newick.NewWriter(&buf).WriteTree(rerooted); err != nil {
			return "", err
		}
	}

	if req.Stdout != nil {
		if _, err := req.Stdout.Write(buf.Bytes()); err != nil {
			return "", rerr.NewIOError("write", "stdout", err)
		}
		return "", nil
	}
	if err := WriteFileAtomic(dest, buf.Bytes()); err != nil {
		for i := range results {
			results[i].Error = err.Error()
		}
		return "", err
	}
	output.Logger.Info("Wrote output", "path", dest, "trees", len(trees))
	return dest, nil
}

// ReadTrees reads and parses the input file. Without all, the file must
// hold exactly one tree.
func ReadTrees(path string, all bool) ([]*model.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rerr.NewIOError("read", path, err)
	}
	if !all {
		tree, err := newick.Parse(string(data))
		if err != nil {
			return nil, err
		}
		return []*model.Tree{tree}, nil
	}

	trees, err := newick.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(trees) == 0 {
		return nil, rerr.NewParseError(len(data), 0, 0, "Empty input, expected at least one tree.")
	}
	return trees, nil
}

// WriteFileAtomic writes data to a temporary file next to path and renames
// it into place, so path is either fully written or untouched.
func WriteFileAtomic(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+strings.TrimPrefix(base, ".")+".tmp-*")
	if err != nil {
		return rerr.NewIOError("create", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return rerr.NewIOError("write", path, err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return rerr.NewIOError("chmod", path, err)
	}
	if err = tmp.Close(); err != nil {
		return rerr.NewIOError("close", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return rerr.NewIOError("rename", path, err)
	}
	return nil
}

func writeReport(path string, results []model.Result) {
	if path == "" || len(results) == 0 {
		return
	}
	w, err := output.NewResultWriter(path)
	if err != nil {
		output.Logger.Error("Failed to open report", "path", path, "error", err)
		return
	}
	for _, r := range results {
		if err := w.Write(r); err != nil {
			output.Logger.Error("Failed to write report record", "path", path, "error", err)
			break
		}
	}
	if err := w.Close(); err != nil {
		output.Logger.Error("Failed to close report", "path", path, "error", err)
	}
}
