package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SalmaOuardi/arxiv-research-copilot/core"
)

func TestMarshalUnmarshalPapers(t *testing.T) {
	papers := []core.PaperMetadata{
		{
			ArxivID:    "2301.00001",
			Title:      "A Survey of Something",
			Authors:    []string{"A. Author", "B. Author"},
			Categories: []string{"cs.CL"},
			PDFURL:     "http://arxiv.org/pdf/2301.00001",
		},
	}

	data, err := MarshalPapers(papers)
	require.NoError(t, err)

	got, err := UnmarshalPapers(data)
	require.NoError(t, err)
	assert.Equal(t, papers, got)
}

func TestUnmarshalPapersCorruptData(t *testing.T) {
	_, err := UnmarshalPapers([]byte("not json"))
	assert.ErrorIs(t, err, ErrSerializationFailed)
}
