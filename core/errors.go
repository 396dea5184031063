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

import "errors"

// Domain validation errors
var (
	// ErrInvalidPaper indicates a PaperMetadata record failed validation.
	ErrInvalidPaper = errors.New("invalid paper metadata")

	// ErrEmptyArxivID indicates the ArxivID field is empty.
	ErrEmptyArxivID = errors.New("arxiv id cannot be empty")

	// ErrEmptyPDFURL indicates the PDFURL field is empty.
	ErrEmptyPDFURL = errors.New("pdf url cannot be empty")

	// ErrEmptyQuery indicates a search query is empty.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrInvalidChunkSize indicates a non-positive chunk size.
	ErrInvalidChunkSize = errors.New("chunk size must be positive")

	// ErrInvalidChunkOverlap indicates a negative overlap or an overlap
	// that is not smaller than the chunk size.
	ErrInvalidChunkOverlap = errors.New("chunk overlap must be non-negative and smaller than chunk size")
)
