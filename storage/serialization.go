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


package storage

import (
	"encoding/json"
	"fmt"

	"github.com/SalmaOuardi/arxiv-research-copilot/core"
)

// MarshalPapers serializes a result list to bytes for cache storage.
func MarshalPapers(papers []core.PaperMetadata) ([]byte, error) {
	data, err := json.Marshal(papers)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalPapers deserializes a result list from bytes.
func UnmarshalPapers(data []byte) ([]core.PaperMetadata, error) {
	var papers []core.PaperMetadata
	if err := json.Unmarshal(data, &papers); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return papers, nil
}
