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


// Package storage provides the cache abstraction layer for search responses.
//
// This package defines the SearchCache interface that decouples the cache
// implementation from the search layer, so different backends (in-memory map,
// BadgerDB with TTL eviction) can be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public constructors return the storage.SearchCache interface rather than
// concrete types:
//
//	cache, err := badger.NewSearchCache(backend, badger.WithTTL(time.Hour))
//
// This keeps the search layer decoupled from any particular backend and lets
// tests substitute implementations without modification.
//
// # Eviction
//
// Eviction is a backend policy, not part of the interface contract:
//
//   - memory: unbounded, process-scoped, entries live until Close
//   - badger: per-entry TTL; expired entries read as ErrNotFound
//
// # Thread Safety
//
// All SearchCache implementations must be safe for concurrent use from
// multiple goroutines.
package storage
