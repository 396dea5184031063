package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SalmaOuardi/arxiv-research-copilot/core"
)

func TestNewSplitterValidation(t *testing.T) {
	tests := []struct {
		name         string
		chunkSize    int
		chunkOverlap int
		wantErr      error
	}{
		{"valid", 1000, 200, nil},
		{"zero size", 0, 0, core.ErrInvalidChunkSize},
		{"negative size", -1, 0, core.ErrInvalidChunkSize},
		{"negative overlap", 100, -1, core.ErrInvalidChunkOverlap},
		{"overlap equals size", 100, 100, core.ErrInvalidChunkOverlap},
		{"overlap exceeds size", 100, 150, core.ErrInvalidChunkOverlap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSplitter(tt.chunkSize, tt.chunkOverlap)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, s)
		})
	}
}

func TestSplitShortTextSingleChunk(t *testing.T) {
	s, err := NewSplitter(DefaultChunkSize, DefaultChunkOverlap)
	require.NoError(t, err)

	chunks := s.Split("Short text.", nil)

	require.Len(t, chunks, 1)
	assert.Equal(t, "Short text.", chunks[0].Text)
	assert.Equal(t, 0, chunks[0].Metadata[core.MetaChunkIndex])
	assert.Equal(t, 1, chunks[0].Metadata[core.MetaTotalChunks])
}

func TestSplitEmptyText(t *testing.T) {
	s, err := NewSplitter(DefaultChunkSize, DefaultChunkOverlap)
	require.NoError(t, err)

	assert.Nil(t, s.Split("", nil))
	assert.Nil(t, s.Split("   \n\n \t ", nil))
}

func TestSplitPrefersParagraphBoundaries(t *testing.T) {
	s, err := NewSplitter(100, 30)
	require.NoError(t, err)

	para1 := strings.Repeat("alpha beta ", 6) // 66 chars
	para2 := strings.Repeat("gamma delta ", 5)
	chunks := s.Split(para1+"\n\n"+para2, nil)

	require.GreaterOrEqual(t, len(chunks), 2)
	assert.Equal(t, strings.TrimRight(para1, " "), chunks[0].Text)
}

func TestSplitTrailingOverlap(t *testing.T) {
	s, err := NewSplitter(100, 30)
	require.NoError(t, err)

	text := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 30)
	chunks := s.Split(text, nil)
	require.Greater(t, len(chunks), 2)

	for i := 0; i < len(chunks)-1; i++ {
		runes := []rune(chunks[i].Text)
		require.GreaterOrEqual(t, len(runes), 30)
		tail := string(runes[len(runes)-30:])
		assert.Contains(t, chunks[i+1].Text, tail,
			"chunk %d should repeat the tail of chunk %d", i+1, i)
	}
}

func TestSplitChunkSizeBound(t *testing.T) {
	s, err := NewSplitter(100, 30)
	require.NoError(t, err)

	text := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 40)
	chunks := s.Split(text, nil)
	require.NotEmpty(t, chunks)

	for i, c := range chunks {
		assert.LessOrEqual(t, len([]rune(c.Text)), 100, "chunk %d over size", i)
		assert.NotEmpty(t, strings.TrimSpace(c.Text), "chunk %d empty", i)
	}
}

func TestSplitLongWordHardCut(t *testing.T) {
	s, err := NewSplitter(50, 10)
	require.NoError(t, err)

	chunks := s.Split(strings.Repeat("x", 180), nil)

	require.NotEmpty(t, chunks)
	for _, c := range chunks {
		assert.LessOrEqual(t, len([]rune(c.Text)), 60)
	}
	// Every input character must land in some chunk.
	total := 0
	for _, c := range chunks {
		total += len(c.Text)
	}
	assert.GreaterOrEqual(t, total, 180)
}

func TestSplitMetadata(t *testing.T) {
	s, err := NewSplitter(100, 30)
	require.NoError(t, err)

	base := map[string]any{"source": "2301.00001.pdf"}
	text := strings.Repeat("per aspera ad astra ", 20)
	chunks := s.Split(text, base)
	require.Greater(t, len(chunks), 1)

	for i, c := range chunks {
		assert.Equal(t, "2301.00001.pdf", c.Metadata["source"])
		assert.Equal(t, i, c.Metadata[core.MetaChunkIndex])
		assert.Equal(t, len(chunks), c.Metadata[core.MetaTotalChunks])
	}

	// Chunk metadata must be a copy, not the caller's map.
	chunks[0].Metadata["source"] = "other"
	assert.Equal(t, "2301.00001.pdf", base["source"])
}

func TestSplitCustomSeparators(t *testing.T) {
	s, err := NewSplitter(10, 2, WithSeparators([]string{"|", ""}))
	require.NoError(t, err)

	chunks := s.Split("aaaa|bbbb|cccc|dddd", nil)

	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len([]rune(c.Text)), 12)
	}
}
