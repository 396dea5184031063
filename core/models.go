package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// PaperMetadata describes a single arXiv paper as returned by metadata search.
// Records are immutable once created; downstream stages only read them.
type PaperMetadata struct {
	// ArxivID is the stable arXiv identifier, e.g. "2401.00001v1".
	ArxivID string `json:"arxiv_id"`

	// Title is the paper title.
	Title string `json:"title"`

	// Authors lists author names in the order the provider returned them.
	Authors []string `json:"authors"`

	// Abstract is the paper summary.
	Abstract string `json:"abstract"`

	// Categories are the arXiv category tags, e.g. "cs.AI".
	Categories []string `json:"categories"`

	// Published is the publication timestamp in ISO-8601 text form.
	Published string `json:"published"`

	// PDFURL is the location the raw PDF bytes are fetched from.
	PDFURL string `json:"pdf_url"`
}

// Filename returns the default destination file name for the paper's PDF.
func (p *PaperMetadata) Filename() string {
	return p.ArxivID + ".pdf"
}

// Metadata keys the chunker attaches to every chunk it produces.
const (
	MetaChunkIndex  = "chunk_index"
	MetaTotalChunks = "total_chunks"
)

// TextChunk is a bounded-length window of a paper's normalized text together
// with its positional metadata. Chunks are created in memory by the chunker;
// ownership passes to the caller.
type TextChunk struct {
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata"`
}
