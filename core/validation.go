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


package core

import "fmt"

// ValidatePaperMetadata validates a PaperMetadata record according to domain rules.
//
// Validation rules:
//   - ArxivID must not be empty
//   - PDFURL must not be empty
//
// NOT validated (providers differ in what they populate):
//   - Title, Authors, Abstract, Categories, Published
func ValidatePaperMetadata(paper *PaperMetadata) error {
	if paper == nil {
		return fmt.Errorf("%w: paper is nil", ErrInvalidPaper)
	}

	if paper.ArxivID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPaper, ErrEmptyArxivID)
	}

	if paper.PDFURL == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPaper, ErrEmptyPDFURL)
	}

	return nil
}

// ValidateChunkParams validates chunk size and overlap for the chunker.
//
// Validation rules:
//   - chunkSize must be positive
//   - chunkOverlap must be non-negative and strictly smaller than chunkSize
func ValidateChunkParams(chunkSize, chunkOverlap int) error {
	if chunkSize <= 0 {
		return ErrInvalidChunkSize
	}

	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		return ErrInvalidChunkOverlap
	}

	return nil
}
