// Package shuffle provides a crypto-seeded Fisher-Yates permutation used to
// randomize question order and answer-option order per session.
package shuffle

import (
	crand "crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Shuffle returns a fresh permutation of items drawn from crypto/rand.
// The input is never mutated. There is deliberately no seed parameter;
// tests inject a deterministic source via WithSource.
func Shuffle[T any](items []T) []T {
	return WithSource(crand.Reader, items)
}

// WithSource runs Fisher-Yates over items using src for index draws,
// iterating from the last index down to 1 with j uniform in [0, i].
func WithSource[T any](src io.Reader, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := intn(src, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// intn draws a uniform int in [0, n) without modulo bias.
func intn(src io.Reader, n int) int {
	v, err := crand.Int(src, big.NewInt(int64(n)))
	if err != nil {
		// The random source is a hard dependency; a session built on a
		// broken source must not proceed with predictable ordering.
		panic(fmt.Sprintf("shuffle: random source failed: %v", err))
	}
	return int(v.Int64())
}
