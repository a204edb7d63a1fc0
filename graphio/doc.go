// Package graphio reads and writes the plain-text formats consumed by the
// index and its analysis tooling.
//
// Graph format (one record per line, whitespace separated):
//
//	t <graphId> <numVertices>        header, first record, exactly once
//	v <vertexId> <rawLabel> [deg]    vertex; an optional declared degree is ignored
//	e <from> <to> [edgeLabel]        undirected edge; the label is optional
//
// Embedding format:
//
//	<marker> <k>                     header: vertices per embedding
//	[marker] <id_0> ... <id_k-1>     one embedding per line; position i is query vertex i
//
// Blank lines are skipped in both formats. Parse failures report the line
// number and wrap ErrMalformedRecord or ErrMissingHeader; the *File variants
// additionally name the file and wrap ErrUnreadable when it cannot be opened.
package graphio
