// Package builder generates deterministic, labelled graph fixtures as
// core.Records, ready for core.NewGraph or graphio.WriteGraph.
//
// It follows a functional-options design:
//
//   - BuilderOption:  mutates builderConfig before construction.
//   - builderConfig:  RNG, vertex labelling, graph id, edge label.
//   - Constructor:    appends one component to the Records being built.
//
// Constructors available:
//
//	Cycle(n)            C_n, n ≥ 3
//	Path(n)             P_n, n ≥ 2
//	Star(n)             hub + n-1 leaves, n ≥ 2
//	Complete(n)         K_n, n ≥ 1
//	RandomSparse(n, p)  Erdős–Rényi G(n, p), needs an RNG for 0<p<1
//	Graph6(s)           any topology given in graph6 encoding
//
// Composition:
//
//	BuildRecords runs constructors in order. Each one appends fresh vertices
//	numbered from the current vertex count, so composed constructors yield a
//	disjoint union. Vertex i is labelled cfg.labelFn(i) with the global id i.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical Records.
//   - Output never contains self-loops or parallel edges.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors and never panic.
package builder
