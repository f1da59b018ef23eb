package driven

import (
	"context"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
)

// VerseStore holds the vector representation of every corpus verse and
// supports nearest-neighbour search over it.
//
// Two interchangeable implementations exist behind this contract: a
// persistent SQLite-backed store and an ephemeral in-process store. Both
// must satisfy identical contracts - same ranking semantics for equal
// input - so callers are agnostic to which is active. The deployment
// environment selects one at process start (durable local storage when
// available, process memory otherwise).
type VerseStore interface {
	// Initialize prepares storage. It is idempotent: calling it multiple
	// times has no side effects beyond the first call.
	Initialize(ctx context.Context) error

	// BuildIndex embeds and inserts the given inputs.
	//
	// If the store already holds entries and forceRecreate is false, the
	// build is a no-op reporting the existing count. If forceRecreate is
	// true the store is cleared first. Inputs are deduplicated by ID
	// (first occurrence wins) before embedding, and the number of dropped
	// duplicates is reported. Embedding and insertion proceed in batches
	// of ten; the build aborts on the first embedding failure.
	BuildIndex(ctx context.Context, inputs []domain.EmbeddingInput, forceRecreate bool) (domain.BuildReport, error)

	// Search ranks stored verses by cosine similarity to the query and
	// returns the topK best matches in descending similarity, ties broken
	// by insertion order. The query vector comes from the embedding
	// service's query operation. An empty store or topK <= 0 yields an
	// empty result, never an error. A query-embedding failure also yields
	// an empty result so the caller can proceed without context. An
	// unconfigured embedding service yields domain.ErrEmbeddingUnavailable.
	Search(ctx context.Context, query string, topK int, filter domain.SearchFilter) ([]domain.VerseMatch, error)

	// GetByID returns the stored verse with the given composite ID, or
	// nil without error when absent.
	GetByID(ctx context.Context, id string) (*domain.VerseMatch, error)

	// Stats returns a read-only projection of the store's current state.
	Stats(ctx context.Context) (domain.CollectionStats, error)

	// Close releases resources.
	Close() error
}

// BuildBatchSize is the number of verses embedded per progress batch.
// Batching exists for progress reporting, not parallel throughput.
const BuildBatchSize = 10
