//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package masking

import (
	"fmt"

	"github.com/markkurossi/masking/rng"
)

// Matrix is the symmetric N×N pairwise randomness consumed by one
// masked AND. Each off-diagonal pair r[i][j] = r[j][i], i<j, holds one
// fresh random value and the diagonal is zero. A matrix must be used
// for exactly one AND and never cached, logged, or persisted.
type Matrix[S Shares] struct {
	r []S
}

// Pairs returns the number of unordered off-diagonal pairs of an
// n×n matrix. This is also the number of random draws needed to build
// the matrix.
func Pairs(n int) int {
	return n * (n - 1) / 2
}

// NewMatrix builds a fresh randomness matrix, drawing one value per
// unordered pair (i,j), i<j, from src in row-major order. If any draw
// fails, the partially filled matrix is wiped and NewMatrix returns an
// error without making further draws.
func NewMatrix[S Shares](src rng.Source) (*Matrix[S], error) {
	n := NumShares[S]()
	m := &Matrix[S]{
		r: make([]S, n),
	}

	var err error
	switch r := any(m.r).(type) {
	case [][1]uint64:
	case [][2]uint64:
		err = fill2(r, src)
	case [][3]uint64:
		err = fill3(r, src)
	case [][4]uint64:
		err = fill4(r, src)
	case [][5]uint64:
		err = fill5(r, src)
	default:
		err = m.fill(src)
	}
	if err != nil {
		m.Wipe()
		return nil, fmt.Errorf("masking: matrix %dx%d: %w", n, n, err)
	}
	return m, nil
}

// fill is the general form of the matrix construction. The fixed size
// variants below must draw in the same order.
func (m *Matrix[S]) fill(src rng.Source) error {
	n := len(m.r)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, err := src.Random64()
			if err != nil {
				return err
			}
			m.r[i][j] = v
			m.r[j][i] = v
		}
		m.r[i][i] = 0
	}
	return nil
}

func fill2(r [][2]uint64, src rng.Source) error {
	r01, err := src.Random64()
	if err != nil {
		return err
	}
	r[0] = [2]uint64{0, r01}
	r[1] = [2]uint64{r01, 0}
	return nil
}

func fill3(r [][3]uint64, src rng.Source) error {
	var v [3]uint64
	for i := range v {
		var err error
		v[i], err = src.Random64()
		if err != nil {
			return err
		}
	}
	r01, r02, r12 := v[0], v[1], v[2]

	r[0] = [3]uint64{0, r01, r02}
	r[1] = [3]uint64{r01, 0, r12}
	r[2] = [3]uint64{r02, r12, 0}
	return nil
}

func fill4(r [][4]uint64, src rng.Source) error {
	var v [6]uint64
	for i := range v {
		var err error
		v[i], err = src.Random64()
		if err != nil {
			return err
		}
	}
	r01, r02, r03, r12, r13, r23 := v[0], v[1], v[2], v[3], v[4], v[5]

	r[0] = [4]uint64{0, r01, r02, r03}
	r[1] = [4]uint64{r01, 0, r12, r13}
	r[2] = [4]uint64{r02, r12, 0, r23}
	r[3] = [4]uint64{r03, r13, r23, 0}
	return nil
}

func fill5(r [][5]uint64, src rng.Source) error {
	var v [10]uint64
	for i := range v {
		var err error
		v[i], err = src.Random64()
		if err != nil {
			return err
		}
	}
	r01, r02, r03, r04 := v[0], v[1], v[2], v[3]
	r12, r13, r14 := v[4], v[5], v[6]
	r23, r24 := v[7], v[8]
	r34 := v[9]

	r[0] = [5]uint64{0, r01, r02, r03, r04}
	r[1] = [5]uint64{r01, 0, r12, r13, r14}
	r[2] = [5]uint64{r02, r12, 0, r23, r24}
	r[3] = [5]uint64{r03, r13, r23, 0, r34}
	r[4] = [5]uint64{r04, r14, r24, r34, 0}
	return nil
}

// MatrixFrom creates a matrix from explicit rows. The rows must form
// a symmetric matrix with a zero diagonal. It is intended for test
// vectors.
func MatrixFrom[S Shares](rows []S) (*Matrix[S], error) {
	n := NumShares[S]()
	if len(rows) != n {
		return nil, fmt.Errorf("masking: invalid matrix rows %d: expected %d",
			len(rows), n)
	}
	m := &Matrix[S]{
		r: make([]S, n),
	}
	copy(m.r, rows)
	if err := m.Validate(); err != nil {
		m.Wipe()
		return nil, err
	}
	return m, nil
}

// Size returns the matrix dimension N.
func (m *Matrix[S]) Size() int {
	return len(m.r)
}

// At returns the entry r[i][j].
func (m *Matrix[S]) At(i, j int) uint64 {
	return m.r[i][j]
}

// Validate checks that the matrix is symmetric with a zero diagonal.
func (m *Matrix[S]) Validate() error {
	n := len(m.r)
	for i := 0; i < n; i++ {
		if m.r[i][i] != 0 {
			return fmt.Errorf("masking: non-zero diagonal at %d", i)
		}
		for j := i + 1; j < n; j++ {
			if m.r[i][j] != m.r[j][i] {
				return fmt.Errorf("masking: asymmetric entry (%d,%d)", i, j)
			}
		}
	}
	return nil
}

// Wipe zeroes the matrix.
func (m *Matrix[S]) Wipe() {
	if m == nil {
		return
	}
	clear(m.r)
}
