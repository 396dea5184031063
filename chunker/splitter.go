package chunker

import (
	"log/slog"
	"maps"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/SalmaOuardi/arxiv-research-copilot/core"
)

const (
	// DefaultChunkSize is the maximum chunk length in characters.
	DefaultChunkSize = 1000

	// DefaultChunkOverlap is how many trailing characters of a finished
	// chunk are carried into the next one.
	DefaultChunkOverlap = 200
)

// DefaultSeparators is the coarse-to-fine split ladder: paragraph break,
// line break, sentence end, word boundary, single character.
var DefaultSeparators = []string{"\n\n", "\n", ". ", " ", ""}

// Splitter divides text into chunks of bounded size with trailing overlap.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
	separators   []string
	logger       *slog.Logger
}

// Option configures a Splitter.
type Option func(*Splitter) error

// WithSeparators replaces the default split ladder. Separators are tried in
// order; the empty string acts as the character-level fallback.
func WithSeparators(separators []string) Option {
	return func(s *Splitter) error {
		if len(separators) > 0 {
			s.separators = separators
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Splitter) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// NewSplitter creates a Splitter with the given chunk size and overlap,
// both measured in characters. The overlap must be smaller than the size.
func NewSplitter(chunkSize, chunkOverlap int, opts ...Option) (*Splitter, error) {
	if err := core.ValidateChunkParams(chunkSize, chunkOverlap); err != nil {
		return nil, err
	}

	s := &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		separators:   DefaultSeparators,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Split divides text into overlapping chunks and attaches metadata to each.
//
// Every chunk carries a copy of baseMetadata plus its position: chunk_index
// (zero-based) and total_chunks. Empty or whitespace-only text yields nil.
// Text at or under the chunk size comes back as a single chunk.
func (s *Splitter) Split(text string, baseMetadata map[string]any) []core.TextChunk {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	pieces := s.splitRecursive(text, s.separators)
	texts := s.merge(pieces)

	chunks := make([]core.TextChunk, len(texts))
	for i, t := range texts {
		md := make(map[string]any, len(baseMetadata)+2)
		maps.Copy(md, baseMetadata)
		md[core.MetaChunkIndex] = i
		md[core.MetaTotalChunks] = len(texts)
		chunks[i] = core.TextChunk{Text: t, Metadata: md}
	}

	s.logger.Debug("split text", "chars", utf8.RuneCountInString(text), "chunks", len(chunks))
	return chunks
}

// splitRecursive cuts text on the first separator in the ladder that occurs
// in it, then recurses with the finer separators into any part still over
// the chunk size. Parts keep their trailing separator, so concatenating the
// returned pieces reproduces text exactly.
func (s *Splitter) splitRecursive(text string, separators []string) []string {
	sep := ""
	var finer []string
	for i, candidate := range separators {
		if candidate == "" {
			break
		}
		if strings.Contains(text, candidate) {
			sep = candidate
			finer = separators[i+1:]
			break
		}
	}

	// Character-level fallback: hard cut into chunk-size windows.
	if sep == "" {
		runes := []rune(text)
		if len(runes) <= s.chunkSize {
			return []string{text}
		}
		pieces := make([]string, 0, (len(runes)+s.chunkSize-1)/s.chunkSize)
		for start := 0; start < len(runes); start += s.chunkSize {
			end := min(start+s.chunkSize, len(runes))
			pieces = append(pieces, string(runes[start:end]))
		}
		return pieces
	}

	var pieces []string
	for _, part := range strings.SplitAfter(text, sep) {
		if part == "" {
			continue
		}
		if utf8.RuneCountInString(part) <= s.chunkSize {
			pieces = append(pieces, part)
			continue
		}
		pieces = append(pieces, s.splitRecursive(part, finer)...)
	}
	return pieces
}

// merge greedily packs pieces into chunks of at most chunkSize characters.
// When a chunk is finished, its overlap seed becomes the start of the next
// buffer. A buffer is only finished once it holds content beyond the seed,
// so oversized seed+piece combinations grow the chunk instead of looping.
func (s *Splitter) merge(pieces []string) []string {
	var chunks []string

	buf := ""
	bufLen := 0
	seedLen := 0

	flush := func() {
		chunk := strings.TrimRight(buf, " \t\n\r")
		if strings.TrimSpace(chunk) == "" {
			buf, bufLen, seedLen = "", 0, 0
			return
		}
		chunks = append(chunks, chunk)
		seed := s.overlapSeed(chunk)
		buf = seed
		bufLen = utf8.RuneCountInString(seed)
		seedLen = bufLen
	}

	for _, piece := range pieces {
		pieceLen := utf8.RuneCountInString(piece)
		if bufLen+pieceLen > s.chunkSize && bufLen > seedLen {
			flush()
		}
		buf += piece
		bufLen += pieceLen
	}
	if bufLen > seedLen {
		flush()
	}

	return chunks
}

// overlapSeed returns the tail of a finished chunk that is repeated at the
// start of the next one. It always covers at least the last chunkOverlap
// characters, extended left to the nearest word boundary when one is close
// enough, so the seed does not open mid-word.
func (s *Splitter) overlapSeed(chunk string) string {
	if s.chunkOverlap == 0 {
		return ""
	}
	runes := []rune(chunk)
	if len(runes) <= s.chunkOverlap {
		return chunk
	}

	cut := len(runes) - s.chunkOverlap
	boundary := cut
	for boundary > 0 && !unicode.IsSpace(runes[boundary-1]) {
		boundary--
	}
	if boundary > 0 && cut-boundary <= s.chunkOverlap {
		cut = boundary
	}
	return string(runes[cut:])
}
