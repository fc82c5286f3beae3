// Package dot renders the discovery graph of a search.Space in Graphviz DOT.
//
// Nodes are emitted in NodeID order as n<ID> with the state as label, and
// edges in discovery order, so the output of a deterministic search is
// byte-for-byte reproducible.
package dot

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/makargravanov/state-space-searching/search"
)

// ErrWriterNil is returned when Write is given a nil io.Writer.
var ErrWriterNil = errors.New("dot: writer is nil")

// DefaultName is the graph identifier used when Write receives an empty name.
const DefaultName = "search"

// Write renders sp as a directed graph called name into w.
func Write(w io.Writer, sp *search.Space, name string) error {
	if w == nil {
		return ErrWriterNil
	}
	if sp == nil {
		return search.ErrSpaceNil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("digraph %s {\n", graphID(name)))
	for id, s := range sp.States() {
		sb.WriteString(fmt.Sprintf("    n%d [label=\"%s\"];\n", id, s))
	}
	for _, e := range sp.Edges() {
		sb.WriteString(fmt.Sprintf("    n%d -> n%d;\n", e.From, e.To))
	}
	sb.WriteString("}\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("dot: write %s: %w", name, err)
	}

	return nil
}

// graphID returns name as a bare DOT identifier when possible, quoted otherwise.
func graphID(name string) string {
	if name == "" {
		return DefaultName
	}
	for i, r := range name {
		bare := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (i > 0 && r >= '0' && r <= '9')
		if !bare {
			return fmt.Sprintf("\"%s\"", strings.ReplaceAll(name, "\"", "\\\""))
		}
	}

	return name
}
