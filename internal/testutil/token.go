// Package testutil holds deterministic stand-ins for the few sources of
// nondeterminism the production code carries at its edges.
package testutil

import "fmt"

// FixedGenerator generates sequential run tokens: "prefix-000001",
// "prefix-000002" and so on. The same test produces the same tokens every
// run, so persisted artifacts can be compared byte for byte.
//
// Implements store.TokenGenerator. Not safe for concurrent use; a test owns
// its generator.
type FixedGenerator struct {
	prefix string
	n      int
}

// NewFixedGenerator creates a generator. An empty prefix defaults to "test".
func NewFixedGenerator(prefix string) *FixedGenerator {
	if prefix == "" {
		prefix = "test"
	}
	return &FixedGenerator{prefix: prefix}
}

// Generate returns the next sequential token.
func (g *FixedGenerator) Generate() string {
	g.n++
	return fmt.Sprintf("%s-%06d", g.prefix, g.n)
}
