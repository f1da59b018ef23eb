// Package domain defines the core business entities for Drishti.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - VerseRecord: One verse of the corpus, identified by chapter and verse
//   - EmbeddingInput: The unit fed into the verse store during indexing
//   - VerseMatch: A ranked retrieval result
//   - Verdict: The outcome of safety/intent classification
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
