// SPDX-License-Identifier: MIT
// Package: labelcsr/graphio
//
// scan.go — shared line scanning and token parsing.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single record line. Embedding lines grow with the
// query size, so the default bufio limit (64 KiB) is raised.
const maxLineBytes = 16 << 20

// lineScanner yields the non-blank lines of r as token slices.
type lineScanner struct {
	sc     *bufio.Scanner
	line   int
	fields []string
}

func newLineScanner(r io.Reader) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &lineScanner{sc: sc}
}

// next advances to the next non-blank line.
func (s *lineScanner) next() bool {
	for s.sc.Scan() {
		s.line++
		if s.fields = strings.Fields(s.sc.Text()); len(s.fields) > 0 {
			return true
		}
	}
	return false
}

// err returns the underlying read error, wrapped as ErrUnreadable.
func (s *lineScanner) err() error {
	if err := s.sc.Err(); err != nil {
		return fmt.Errorf("line %d: %w: %w", s.line+1, ErrUnreadable, err)
	}
	return nil
}

// malformed reports a grammar violation at the current line.
func (s *lineScanner) malformed(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", s.line, fmt.Sprintf(format, args...), ErrMalformedRecord)
}

// int32At parses field i as a base-10 int32.
func (s *lineScanner) int32At(i int) (int32, error) {
	x, err := strconv.ParseInt(s.fields[i], 10, 32)
	if err != nil {
		return 0, s.malformed("field %d %q is not an int32", i+1, s.fields[i])
	}
	return int32(x), nil
}

// isInteger reports whether tok parses as a base-10 integer.
func isInteger(tok string) bool {
	_, err := strconv.ParseInt(tok, 10, 64)
	return err == nil
}
