// SPDX-License-Identifier: MIT
// Package: labelcsr/graphio
//
// embeddings.go — embedding file reader.

package graphio

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/labelcsr/core"
)

const (
	methodReadEmbeddings     = "ReadEmbeddings"
	methodReadEmbeddingsFile = "ReadEmbeddingsFile"
)

// ReadEmbeddings parses the embedding format. Every returned embedding has
// exactly k entries, k taken from the header. Ids are not checked against
// any graph; see embedding.Validate.
//
// Errors: ErrMissingHeader, ErrMalformedRecord, ErrUnreadable (read failure).
func ReadEmbeddings(r io.Reader) ([][]core.Vertex, error) {
	s := newLineScanner(r)

	if !s.next() {
		if err := s.err(); err != nil {
			return nil, fmt.Errorf("%s: %w", methodReadEmbeddings, err)
		}
		return nil, fmt.Errorf("%s: empty input: %w", methodReadEmbeddings, ErrMissingHeader)
	}
	if len(s.fields) != 2 || !isInteger(s.fields[1]) {
		return nil, fmt.Errorf("%s: line %d: want \"<marker> <k>\", got %q: %w",
			methodReadEmbeddings, s.line, s.fields, ErrMissingHeader)
	}
	k, err := s.int32At(1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodReadEmbeddings, err)
	}
	if k < 1 {
		return nil, fmt.Errorf("%s: line %d: k=%d < 1: %w", methodReadEmbeddings, s.line, k, ErrMissingHeader)
	}

	var out [][]core.Vertex
	for s.next() {
		emb, err := parseEmbedding(s, int(k))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodReadEmbeddings, err)
		}
		out = append(out, emb)
	}
	if err = s.err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodReadEmbeddings, err)
	}

	return out, nil
}

// ReadEmbeddingsFile opens path and parses it with ReadEmbeddings.
func ReadEmbeddingsFile(path string) ([][]core.Vertex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: embedding file %s: %w: %w", methodReadEmbeddingsFile, path, ErrUnreadable, err)
	}
	defer f.Close()

	embs, err := ReadEmbeddings(f)
	if err != nil {
		return nil, fmt.Errorf("%s: embedding file %s: %w", methodReadEmbeddingsFile, path, err)
	}
	return embs, nil
}

// parseEmbedding reads k ids, skipping one leading non-numeric marker.
func parseEmbedding(s *lineScanner, k int) ([]core.Vertex, error) {
	first := 0
	if len(s.fields) == k+1 && !isInteger(s.fields[0]) {
		first = 1
	}
	if len(s.fields)-first != k {
		return nil, s.malformed("embedding wants %d ids, got %d", k, len(s.fields)-first)
	}

	emb := make([]core.Vertex, k)
	for i := range emb {
		id, err := s.int32At(first + i)
		if err != nil {
			return nil, err
		}
		if id < 0 {
			return nil, s.malformed("negative vertex id %d", id)
		}
		emb[i] = core.Vertex(id)
	}
	return emb, nil
}
