package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedGeneratorSequence(t *testing.T) {
	g := NewFixedGenerator("run")
	assert.Equal(t, "run-000001", g.Generate())
	assert.Equal(t, "run-000002", g.Generate())

	// Two generators with the same prefix are independent.
	g2 := NewFixedGenerator("run")
	assert.Equal(t, "run-000001", g2.Generate())
}

func TestFixedGeneratorDefaultPrefix(t *testing.T) {
	g := NewFixedGenerator("")
	assert.Equal(t, "test-000001", g.Generate())
}
