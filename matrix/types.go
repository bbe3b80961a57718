// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage and the correlation model.
// This file contains ONLY domain-facing types (the Matrix interface and the
// upper-triangle Pair). Errors and options live in dedicated files.
package matrix

// Matrix represents a two-dimensional array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Pair is one strict upper-triangle index pair (I < J) of a square matrix.
// Pairs are the only currency in which consumers address matrix cells, so a
// symmetric relationship can never be visited twice and the diagonal never
// at all.
type Pair struct {
	I int // row index
	J int // column index, always > I
}
