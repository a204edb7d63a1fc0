// SPDX-License-Identifier: MIT
// Package: labelcsr/embedding
//
// measures.go — coverage, similarity and content-based diversity.
// Determinism:
//   - All measures are pure functions of their inputs; inputs are never mutated.

package embedding

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/tidwall/btree"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/labelcsr/core"
)

const methodContentDiversity = "ContentDiversity"

// Similarity scores two embeddings in [0,1]; 1 means identical.
type Similarity[T any] func(a, b []T) float64

// CompareVertex orders vertices by id.
func CompareVertex(a, b core.Vertex) int { return cmp.Compare(a, b) }

// CompareEdge orders edges by From, then To.
func CompareEdge(a, b core.Edge) int {
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}
	return cmp.Compare(a.To, b.To)
}

// Coverage returns the number of distinct elements across all embeddings.
// Complexity: O(N·k·log D) for N embeddings of width k and D distinct elements.
func Coverage[T any](embs [][]T, compare func(a, b T) int) int {
	set := btree.NewBTreeGOptions(func(a, b T) bool { return compare(a, b) < 0 },
		btree.Options{NoLocks: true})
	for _, emb := range embs {
		for _, x := range emb {
			set.Set(x)
		}
	}
	return set.Len()
}

// Hamming returns the positional similarity 1 - mismatches/width.
// Positions present in only one embedding count as mismatches; two empty
// embeddings are identical.
func Hamming[T comparable]() Similarity[T] {
	return func(a, b []T) float64 {
		width := max(len(a), len(b))
		if width == 0 {
			return 1
		}
		mismatches := width - min(len(a), len(b))
		for i := 0; i < min(len(a), len(b)); i++ {
			if a[i] != b[i] {
				mismatches++
			}
		}
		return 1 - float64(mismatches)/float64(width)
	}
}

// Jaccard returns the content similarity |A ∩ B| / |A ∪ B| where A and B are
// the embeddings taken as multisets. Two empty embeddings are identical.
func Jaccard[T any](compare func(a, b T) int) Similarity[T] {
	return func(a, b []T) float64 {
		sa, sb := slices.Clone(a), slices.Clone(b)
		slices.SortFunc(sa, compare)
		slices.SortFunc(sb, compare)

		var union, inter, i, j int
		for i < len(sa) && j < len(sb) {
			switch c := compare(sa[i], sb[j]); {
			case c < 0:
				i++
			case c > 0:
				j++
			default:
				inter++
				i++
				j++
			}
			union++
		}
		union += len(sa) - i + len(sb) - j
		if union == 0 {
			return 1
		}
		return float64(inter) / float64(union)
	}
}

// ContentDiversity returns the mean of sim over all unordered pairs of
// embeddings. Each row i (pairs (i, j>i)) is averaged first and the row
// means are combined with weights n-1-i, which equals the flat pair mean
// while keeping memory O(n).
//
// Errors: ErrTooFewEmbeddings when len(embs) < 2.
// Complexity: O(n²·cost(sim)) time, O(n) space.
func ContentDiversity[T any](embs [][]T, sim Similarity[T]) (float64, error) {
	n := len(embs)
	if n < 2 {
		return 0, fmt.Errorf("%s: n=%d: %w", methodContentDiversity, n, ErrTooFewEmbeddings)
	}

	rowMeans := make([]float64, n-1)
	weights := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		var sum float64
		for j := i + 1; j < n; j++ {
			sum += sim(embs[i], embs[j])
		}
		weights[i] = float64(n - 1 - i)
		rowMeans[i] = sum / weights[i]
	}

	return stat.Mean(rowMeans, weights), nil
}
