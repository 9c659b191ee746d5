package store

import "errors"

// ErrInvalidResult reports a submitted quiz result that fails
// validation.
var ErrInvalidResult = errors.New("invalid quiz result")

// Result is one recorded quiz outcome. Accuracy is always computed
// server-side when the row is written.
type Result struct {
	TS       int64   `json:"ts"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}
