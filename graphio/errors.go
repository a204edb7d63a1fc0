// SPDX-License-Identifier: MIT
// Package: labelcsr/graphio
//
// errors.go — sentinel errors. Callers branch with errors.Is; readers attach
// the line number and the offending token with %w.

package graphio

import "errors"

var (
	// ErrUnreadable indicates the input file could not be opened or read.
	ErrUnreadable = errors.New("graphio: input unreadable")

	// ErrMissingHeader indicates the first record is not a valid header.
	ErrMissingHeader = errors.New("graphio: missing header")

	// ErrMalformedRecord indicates a record that does not match the grammar.
	ErrMalformedRecord = errors.New("graphio: malformed record")
)
