package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// The document and query operations are distinct because retrieval and
// indexing are asymmetric: models such as Gemini's text-embedding-004 and
// nomic-embed-text encode documents and queries differently. Callers must
// never assume the two operations are interchangeable for identical text.
//
// Implementations may include:
//   - Gemini (text-embedding-004)
//   - Ollama (nomic-embed-text, all-minilm)
type EmbeddingService interface {
	// EmbedDocument generates a vector for corpus text being indexed.
	EmbedDocument(ctx context.Context, text string) ([]float32, error)

	// EmbedQuery generates a vector for a search query.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Used at startup before committing to retrieval.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
