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


// Package arxiv implements the search.Provider interface against the arXiv
// Atom export API (http://export.arxiv.org/api/query).
//
// The client issues a single relevance-sorted query per call and maps Atom
// feed entries into raw search.Result records. It performs no caching and no
// rate limiting of its own; both are responsibilities of the layers above.
package arxiv
