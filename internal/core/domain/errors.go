package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSourceNotFound indicates the corpus source data is absent.
	// Ingestion cannot proceed and must be surfaced to the operator.
	ErrSourceNotFound = errors.New("corpus source not found")

	// ErrMalformedSchema indicates the corpus source is missing required
	// columns or a verse locator could not be parsed.
	ErrMalformedSchema = errors.New("malformed corpus schema")

	// ErrEmbeddingFailure indicates the embedding service call failed.
	// During ingestion the build aborts immediately: a partially embedded
	// corpus is indistinguishable from a complete one by size alone.
	ErrEmbeddingFailure = errors.New("embedding service failure")

	// ErrGenerationFailure indicates the generation service call failed.
	// The orchestrator recovers this into a user-visible apology string.
	ErrGenerationFailure = errors.New("generation service failure")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. Retrieval is impossible without embeddings.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrStoreUnavailable indicates no verse store is configured.
	ErrStoreUnavailable = errors.New("verse store unavailable")
)
