// Package labelcsr is a read-only index for labelled, undirected graphs,
// built for subgraph-matching workloads, plus the tooling around it.
//
// What is labelcsr?
//
//	A compact CSR (compressed sparse row) adjacency in which every vertex's
//	neighbors are grouped by label and ordered by degree, so that
//		• "neighbors of v with label l" is an O(1) range lookup
//		• "are u and v adjacent?" is a binary search over one small block
//		• label frequencies are precomputed per graph and per vertex
//
// Packages:
//
//	core/      — Records, LabelMap, Graph (construction and queries)
//	builder/   — deterministic Records fixtures: Cycle, Path, Star, Complete,
//	             RandomSparse, Graph6; composed as disjoint unions
//	graphio/   — "t/v/e" graph text format and embedding file format
//	embedding/ — coverage, Hamming/Jaccard similarity, content diversity,
//	             edge embeddings and embedding validation
//	cmd/embdiv — CLI: data graph + query graph + embeddings → diversity report
//
// Quick ASCII example:
//
//	    0(A)───1(B)
//	     │
//	    2(B)───3(A)
//
//	vertex 0 has a single block, label B → [2 1]: both neighbors carry B and
//	2 comes first because its degree is higher.
//
//	go get github.com/katalvlaran/labelcsr
package labelcsr
