// SPDX-License-Identifier: MIT
// Package: trianglepath/builder
//
// impl_random.go - Random(rows, lo, hi) constructor.
//
// Contract:
//   - rows ≥ 1 (else ErrBadSize), lo ≤ hi (else ErrBadRange).
//   - Values are drawn row by row, left to right, from cfg.rng.
//
// Determinism:
//   - Same seed and parameters ⇒ identical triangle.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trianglepath/triangle"
)

const (
	methodRandom = "Random"
	minRows      = 1
)

// Random returns a rows-deep triangle of int64 values uniform in [lo, hi].
// Complexity: O(rows²).
func Random(rows int, lo, hi int64, opts ...Option) (*triangle.Triangle[int64], error) {
	if rows < minRows {
		return nil, fmt.Errorf("%s: rows=%d < min=%d: %w", methodRandom, rows, minRows, ErrBadSize)
	}
	if lo > hi {
		return nil, fmt.Errorf("%s: lo=%d > hi=%d: %w", methodRandom, lo, hi, ErrBadRange)
	}
	cfg := newBuilderConfig(opts...)

	t := &triangle.Triangle[int64]{}
	for i := 0; i < rows; i++ {
		row := make([]int64, i+1)
		for j := range row {
			row[j] = draw(cfg, lo, hi)
		}
		if err := t.AddRow(row); err != nil {
			return nil, fmt.Errorf("%s: AddRow(%d): %w", methodRandom, i+1, err)
		}
	}

	return t, nil
}

// draw returns a value uniform in [lo, hi]. The full int64 range is
// handled without overflowing the span computation.
func draw(cfg builderConfig, lo, hi int64) int64 {
	span := uint64(hi - lo)
	if span == math.MaxUint64 {
		return int64(cfg.rng.Uint64())
	}
	if span < math.MaxInt64 {
		return lo + cfg.rng.Int63n(int64(span)+1)
	}

	return lo + int64(cfg.rng.Uint64()%(span+1))
}
