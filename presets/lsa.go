// SPDX-License-Identifier: MIT

package presets

import (
	"fmt"
	"sort"

	"github.com/afcarl/correlations/network"
	"github.com/afcarl/correlations/threshold"
)

// LSARow is one row of a local similarity table. Fields holds the numeric
// columns that follow the two ids, in table order; a column the tool left
// blank is NaN.
type LSARow struct {
	ID1    string    `json:"id1" yaml:"id1"`
	ID2    string    `json:"id2" yaml:"id2"`
	Fields []float64 `json:"fields" yaml:"fields"`
}

// LSAColumn locates one sub-score and its p-value inside LSARow.Fields.
type LSAColumn struct {
	Score  int
	PValue int
}

// LSAColumns maps each filter name to its columns:
//
//	ls  local similarity
//	gp  global Pearson
//	sp  shifted Pearson
//	gs  global Spearman
//	ss  shifted Spearman
var LSAColumns = map[string]LSAColumn{
	"ls": {Score: 0, PValue: 7},
	"gp": {Score: 8, PValue: 9},
	"sp": {Score: 10, PValue: 11},
	"gs": {Score: 13, PValue: 14},
	"ss": {Score: 15, PValue: 16},
}

// LSAFilters returns the filter names, sorted.
func LSAFilters() []string {
	out := make([]string, 0, len(LSAColumns))
	for k := range LSAColumns {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// LSATuples projects rows onto the (score, p-value) of filter.
// Errors:
//   - threshold.ErrInvalidConfig for an unknown filter.
//   - ErrMissingColumn when a row is too short.
func LSATuples(rows []LSARow, filter string) ([]network.Tuple, error) {
	col, ok := LSAColumns[filter]
	if !ok {
		return nil, presetErrorf(fmt.Sprintf("LSATuples: filter %q, want one of %v", filter, LSAFilters()), threshold.ErrInvalidConfig)
	}

	need := max(col.Score, col.PValue) + 1
	out := make([]network.Tuple, len(rows))
	for i, r := range rows {
		if len(r.Fields) < need {
			return nil, presetErrorf(fmt.Sprintf("LSATuples: row %d (%s,%s) has %d fields, want %d", i, r.ID1, r.ID2, len(r.Fields), need), ErrMissingColumn)
		}
		out[i] = network.Tuple{ID1: r.ID1, ID2: r.ID2, Score: r.Fields[col.Score], PValue: r.Fields[col.PValue]}
	}

	return out, nil
}

// DetectLSARedundant reports whether rows list every pair in both orders,
// judged like network.DetectRedundant by the first row.
func DetectLSARedundant(rows []LSARow) bool {
	if len(rows) == 0 {
		return false
	}

	return network.DetectRedundant([]network.Tuple{{ID1: rows[0].ID1, ID2: rows[0].ID2}})
}
