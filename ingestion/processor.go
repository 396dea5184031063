// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SalmaOuardi/arxiv-research-copilot/core"
)

// ProcessFailure records a file that could not be processed.
type ProcessFailure struct {
	Path string
	Err  error
}

// ProcessFile extracts text from the PDF at pdfPath, splits it into chunks,
// and writes them to the processed directory as a JSON array. The output
// file is named after the PDF stem with a .json extension, and each chunk's
// metadata carries the source file name.
func (p *Pipeline) ProcessFile(ctx context.Context, pdfPath string) (string, error) {
	text, err := p.extractor.Extract(ctx, pdfPath, nil)
	if err != nil {
		return "", err
	}

	source := filepath.Base(pdfPath)
	chunks := p.splitter.Split(text, map[string]any{"source": source})
	if chunks == nil {
		chunks = []core.TextChunk{}
	}

	stem := strings.TrimSuffix(source, filepath.Ext(source))
	outPath := filepath.Join(p.processedDir, stem+".json")
	if err := writeChunks(outPath, chunks); err != nil {
		return "", fmt.Errorf("writing chunks for %s: %w", source, err)
	}

	p.logger.Debug("processed pdf", "path", pdfPath, "chunks", len(chunks), "out", outPath)
	return outPath, nil
}

// writeChunks writes the chunk array atomically: a temp file in the target
// directory is renamed over the destination once fully written.
func writeChunks(outPath string, chunks []core.TextChunk) error {
	data, err := json.MarshalIndent(chunks, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := outPath + ".part"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
