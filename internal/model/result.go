package model

import (
	"time"
)

// Result represents the outcome of rerooting one tree.
type Result struct {
	Input     string        `json:"input"`
	Output    string        `json:"output,omitempty"`
	TreeIndex int           `json:"tree_index"`
	Outgroup  string        `json:"outgroup"`
	Timestamp time.Time     `json:"timestamp"`
	Duration  time.Duration `json:"duration"`
	Leaves    int           `json:"leaves"`
	Clades    int           `json:"clades"`

	// Sums of all branch lengths; equal up to rounding on success.
	LengthBefore float64 `json:"length_before"`
	LengthAfter  float64 `json:"length_after"`

	Error string `json:"error,omitempty"` // If the run failed
}
