// Package embedding analyzes sets of subgraph embeddings of a query graph
// into a data graph, using only the read-only surface of core.Graph.
//
// An embedding is a []core.Vertex whose position i holds the data vertex
// matched to query vertex i. Edge embeddings ([]core.Edge) are derived from
// them through the query graph's edges (EdgeEmbeddings).
//
// Measures:
//
//	Coverage          number of distinct elements over all embeddings
//	Hamming           1 - (mismatched positions / width)
//	Jaccard           |A ∩ B| / |A ∪ B| with multiset semantics
//	ContentDiversity  mean pairwise similarity over all unordered pairs
//
// Validate checks embeddings against both graphs (width, id range, label
// agreement, injectivity and edge preservation via IsNeighbor). Label
// agreement is only meaningful when the query graph was built with the data
// graph's LabelMap.
package embedding
