// SPDX-License-Identifier: MIT
// Package: labelcsr/embedding
//
// errors.go — sentinel errors for embedding analysis.

package embedding

import "errors"

var (
	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("embedding: graph is nil")

	// ErrTooFewEmbeddings indicates a pairwise measure over fewer than two embeddings.
	ErrTooFewEmbeddings = errors.New("embedding: need at least two embeddings")

	// ErrInvalidEmbedding indicates an embedding inconsistent with the graphs.
	ErrInvalidEmbedding = errors.New("embedding: invalid embedding")
)
