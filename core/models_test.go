package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("transformer attention mechanism::50::0")
		b := IDFromContent("transformer attention mechanism::50::0")
		assert.Equal(t, a, b)
	})

	t.Run("distinct content yields distinct ids", func(t *testing.T) {
		a := IDFromContent("transformer attention mechanism::50::0")
		b := IDFromContent("transformer attention mechanism::50::10")
		assert.NotEqual(t, a, b)
	})

	t.Run("empty content", func(t *testing.T) {
		assert.NotPanics(t, func() { IDFromContent("") })
	})
}

func TestPaperMetadataFilename(t *testing.T) {
	paper := &PaperMetadata{ArxivID: "2401.00001v1"}
	assert.Equal(t, "2401.00001v1.pdf", paper.Filename())
}
