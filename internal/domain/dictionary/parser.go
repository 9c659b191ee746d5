package dictionary

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Required header columns of the source CSV. This is a fixed contract of
// the municipal dictionary export; column order is irrelevant and extra
// columns are ignored.
const (
	columnID       = "_id"
	columnItem     = "品名"
	columnCategory = "ゴミの種類"
	columnNote     = "出し方の注意点"
)

var (
	// ErrSchema reports a header row that is missing or lacks one of the
	// required columns.
	ErrSchema = errors.New("unexpected CSV schema")

	// ErrFormat reports a CSV body that cannot be parsed at all, such as
	// an unterminated quoted field.
	ErrFormat = errors.New("malformed CSV")
)

// Parse turns raw CSV text into validated, deduplicated records.
//
// Rows whose item or raw category is empty after trimming are skipped,
// as are later duplicates of an (item, raw category) pair; the first
// occurrence wins and first-seen order is preserved. These are data
// cleaning decisions, not errors. Parse itself does no I/O.
func Parse(text string) ([]Record, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: input is empty, header row required", ErrSchema)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{columnID, columnItem, columnCategory, columnNote} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrSchema, required)
		}
	}

	field := func(row []string, name string) string {
		if i := index[name]; i < len(row) {
			return row[i]
		}
		return ""
	}

	var records []Record
	seen := make(map[[2]string]struct{})
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}

		item := strings.TrimSpace(field(row, columnItem))
		rawCategory := strings.TrimSpace(field(row, columnCategory))
		if item == "" || rawCategory == "" {
			continue
		}

		key := [2]string{item, rawCategory}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		records = append(records, Record{
			ID:           strings.TrimSpace(field(row, columnID)),
			Item:         item,
			Category:     Normalize(rawCategory),
			FullCategory: rawCategory,
			Note:         strings.TrimSpace(field(row, columnNote)),
		})
	}
	return records, nil
}
