// SPDX-License-Identifier: MIT

// Command embdiv reports coverage and content-based diversity of a set of
// subgraph embeddings.
//
// Usage:
//
//	embdiv <data graph file> <query graph file> <embedding file>
//
// The data graph is indexed first and its LabelMap is reused for the query
// graph, so both graphs share dense labels. Figures go to stdout; progress
// and diagnostics go to stderr. Any unusable input, or an argument count
// other than three, exits with status 1.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/labelcsr/core"
	"github.com/katalvlaran/labelcsr/embedding"
	"github.com/katalvlaran/labelcsr/graphio"
)

const (
	exitOK      = 0
	exitFailure = 1

	usage = "Usage: embdiv <data graph file> <query graph file> <embedding file>"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the tool and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if len(args) != 3 {
		fmt.Fprintln(stderr, usage)
		return exitFailure
	}
	dataPath, queryPath, embPath := args[0], args[1], args[2]

	logger.Info("reading data graph", "path", dataPath)
	data, err := loadGraph(dataPath, core.WithLogger(logger))
	if err != nil {
		logger.Error("data graph unusable", "path", dataPath, "error", err)
		return exitFailure
	}

	logger.Info("reading query graph", "path", queryPath)
	query, err := loadGraph(queryPath, core.WithLogger(logger), core.WithLabelMap(data.LabelMap()))
	if err != nil {
		logger.Error("query graph unusable", "path", queryPath, "error", err)
		return exitFailure
	}

	logger.Info("reading embedding file", "path", embPath)
	embs, err := graphio.ReadEmbeddingsFile(embPath)
	if err != nil {
		logger.Error("embedding file unusable", "path", embPath, "error", err)
		return exitFailure
	}

	if invalid, verr := embedding.Validate(data, query, embs); invalid > 0 {
		logger.Warn("embeddings inconsistent with the graphs",
			"invalid", invalid, "total", len(embs), "error", verr)
	}

	edgeEmbs, err := embedding.EdgeEmbeddings(query, embs)
	if err != nil {
		logger.Error("embedding file unusable", "path", embPath, "error", err)
		return exitFailure
	}

	report(stdout, "Vertex", embs, embedding.CompareVertex)
	fmt.Fprintln(stdout)
	report(stdout, "Edge", edgeEmbs, embedding.CompareEdge)

	return exitOK
}

// loadGraph reads and indexes one graph file.
func loadGraph(path string, opts ...core.GraphOption) (*core.Graph, error) {
	recs, err := graphio.ReadGraphFile(path)
	if err != nil {
		return nil, err
	}
	g, err := core.NewGraph(recs, opts...)
	if err != nil {
		return nil, fmt.Errorf("graph file %s: %w", path, err)
	}
	return g, nil
}

// report prints coverage and Hamming/Jaccard diversity for one embedding kind.
func report[T comparable](w io.Writer, kind string, embs [][]T, compare func(a, b T) int) {
	fmt.Fprintf(w, "%s coverage of %d embeddings: %d\n", kind, len(embs), embedding.Coverage(embs, compare))
	fmt.Fprintf(w, "%s diversity (Hamming similarity): %s\n", kind, diversity(embs, embedding.Hamming[T]()))
	fmt.Fprintf(w, "%s diversity (Jaccard similarity): %s\n", kind, diversity(embs, embedding.Jaccard(compare)))
}

func diversity[T any](embs [][]T, sim embedding.Similarity[T]) string {
	d, err := embedding.ContentDiversity(embs, sim)
	if err != nil {
		return "n/a"
	}
	return fmt.Sprintf("%.6f", d)
}
