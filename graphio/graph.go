// SPDX-License-Identifier: MIT
// Package: labelcsr/graphio
//
// graph.go — graph text format reader and writer.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/labelcsr/core"
)

const (
	methodReadGraph     = "ReadGraph"
	methodReadGraphFile = "ReadGraphFile"
	methodWriteGraph    = "WriteGraph"
)

// maxVertexHint caps the capacity reserved from an unverified header count.
const maxVertexHint = 1 << 16

// Record type tokens.
const (
	tokenHeader = "t"
	tokenVertex = "v"
	tokenEdge   = "e"
)

// ReadGraph parses the graph text format into Records. It checks the token
// grammar only; referential checks (ids in range, declared vertices) are
// left to core.NewGraph.
//
// Errors: ErrMissingHeader, ErrMalformedRecord, ErrUnreadable (read failure).
func ReadGraph(r io.Reader) (*core.Records, error) {
	s := newLineScanner(r)

	if !s.next() {
		if err := s.err(); err != nil {
			return nil, fmt.Errorf("%s: %w", methodReadGraph, err)
		}
		return nil, fmt.Errorf("%s: empty input: %w", methodReadGraph, ErrMissingHeader)
	}
	recs, err := parseHeader(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodReadGraph, err)
	}

	for s.next() {
		switch s.fields[0] {
		case tokenVertex:
			err = parseVertex(s, recs)
		case tokenEdge:
			err = parseEdge(s, recs)
		case tokenHeader:
			err = s.malformed("second header")
		default:
			err = s.malformed("unknown record type %q", s.fields[0])
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodReadGraph, err)
		}
	}
	if err = s.err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodReadGraph, err)
	}

	return recs, nil
}

// ReadGraphFile opens path and parses it with ReadGraph. Errors name the file.
func ReadGraphFile(path string) (*core.Records, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: graph file %s: %w: %w", methodReadGraphFile, path, ErrUnreadable, err)
	}
	defer f.Close()

	recs, err := ReadGraph(f)
	if err != nil {
		return nil, fmt.Errorf("%s: graph file %s: %w", methodReadGraphFile, path, err)
	}
	return recs, nil
}

// WriteGraph writes recs in the graph text format: header, vertex records,
// then edge records, each in slice order.
func WriteGraph(w io.Writer, recs *core.Records) error {
	if recs == nil {
		return fmt.Errorf("%s: %w", methodWriteGraph, core.ErrNilRecords)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %d %d\n", tokenHeader, recs.GraphID, recs.NumVertices)
	for _, vr := range recs.Vertices {
		fmt.Fprintf(bw, "%s %d %d\n", tokenVertex, vr.ID, vr.Label)
	}
	for _, er := range recs.Edges {
		fmt.Fprintf(bw, "%s %d %d %d\n", tokenEdge, er.From, er.To, er.Label)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteGraph, err)
	}
	return nil
}

// parseHeader parses "t <graphId> <numVertices>".
func parseHeader(s *lineScanner) (*core.Records, error) {
	if s.fields[0] != tokenHeader || len(s.fields) != 3 {
		return nil, fmt.Errorf("line %d: want \"t <id> <n>\", got %q: %w", s.line, s.fields, ErrMissingHeader)
	}
	id, err := s.int32At(1)
	if err != nil {
		return nil, err
	}
	n, err := s.int32At(2)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, s.malformed("negative vertex count %d", n)
	}
	return &core.Records{
		GraphID:     id,
		NumVertices: int(n),
		Vertices:    make([]core.VertexRecord, 0, min(int(n), maxVertexHint)),
	}, nil
}

// parseVertex parses "v <id> <label> [deg]".
func parseVertex(s *lineScanner, recs *core.Records) error {
	if len(s.fields) != 3 && len(s.fields) != 4 {
		return s.malformed("vertex record wants 2 or 3 values, got %d", len(s.fields)-1)
	}
	id, err := s.int32At(1)
	if err != nil {
		return err
	}
	l, err := s.int32At(2)
	if err != nil {
		return err
	}
	if len(s.fields) == 4 {
		if _, err = s.int32At(3); err != nil {
			return err
		}
	}
	recs.Vertices = append(recs.Vertices, core.VertexRecord{ID: core.Vertex(id), Label: core.Label(l)})
	return nil
}

// parseEdge parses "e <from> <to> [label]".
func parseEdge(s *lineScanner, recs *core.Records) error {
	if len(s.fields) != 3 && len(s.fields) != 4 {
		return s.malformed("edge record wants 2 or 3 values, got %d", len(s.fields)-1)
	}
	from, err := s.int32At(1)
	if err != nil {
		return err
	}
	to, err := s.int32At(2)
	if err != nil {
		return err
	}
	var l int32
	if len(s.fields) == 4 {
		if l, err = s.int32At(3); err != nil {
			return err
		}
	}
	recs.Edges = append(recs.Edges, core.EdgeRecord{From: core.Vertex(from), To: core.Vertex(to), Label: core.Label(l)})
	return nil
}
