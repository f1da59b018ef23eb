// Package memory provides in-memory implementations of storage ports,
// used when no writable data directory is available.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driven"
	"github.com/drishti-labs/drishti-cli/internal/logger"
)

// Ensure VerseStore implements the interface.
var _ driven.VerseStore = (*VerseStore)(nil)

// CollectionName is the fixed logical name of the verse collection.
const CollectionName = "bhagavad_gita"

// entry is one stored verse embedding. Entries are kept in insertion
// order, which is the similarity tie-break at query time.
type entry struct {
	id     string
	text   string
	meta   domain.VerseMeta
	vector []float32
}

// VerseStore is an ephemeral verse store. All data is lost when the
// process exits; ranking semantics match the SQLite store exactly.
type VerseStore struct {
	embedder driven.EmbeddingService

	mu      sync.RWMutex
	entries []entry
}

// NewVerseStore creates an empty in-memory verse store.
func NewVerseStore(embedder driven.EmbeddingService) *VerseStore {
	return &VerseStore{embedder: embedder}
}

// Initialize prepares storage. Idempotent; the zero store is already
// usable.
func (s *VerseStore) Initialize(_ context.Context) error {
	return nil
}

// BuildIndex embeds and inserts the given inputs.
func (s *VerseStore) BuildIndex(ctx context.Context, inputs []domain.EmbeddingInput, forceRecreate bool) (domain.BuildReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) > 0 && !forceRecreate {
		return domain.BuildReport{Skipped: true, Total: len(s.entries)}, nil
	}

	// Guard before the destructive clear: a build cannot proceed without
	// an embedder, and existing data must survive the refusal.
	if s.embedder == nil {
		return domain.BuildReport{Total: len(s.entries)}, domain.ErrEmbeddingUnavailable
	}

	if forceRecreate {
		s.entries = nil
	}

	deduped, dropped := dedupeByID(inputs)
	logger.Debug("Building index: %d inputs, %d duplicates dropped", len(deduped), dropped)

	embedded := 0
	for start := 0; start < len(deduped); start += driven.BuildBatchSize {
		end := start + driven.BuildBatchSize
		if end > len(deduped) {
			end = len(deduped)
		}

		for _, input := range deduped[start:end] {
			vec, err := s.embedder.EmbedDocument(ctx, input.Text)
			if err != nil {
				return domain.BuildReport{
					Embedded:          embedded,
					DuplicatesDropped: dropped,
					Total:             len(s.entries),
				}, fmt.Errorf("%w: %s: %w", domain.ErrEmbeddingFailure, input.ID, err)
			}
			s.entries = append(s.entries, entry{
				id:     input.ID,
				text:   input.Text,
				meta:   input.Metadata,
				vector: vec,
			})
			embedded++
		}
		logger.Debug("Embedded %d/%d verses", embedded, len(deduped))
	}

	return domain.BuildReport{
		Embedded:          embedded,
		DuplicatesDropped: dropped,
		Total:             len(s.entries),
	}, nil
}

// Search ranks stored verses by cosine similarity to the query,
// descending, ties broken by insertion order.
func (s *VerseStore) Search(ctx context.Context, query string, topK int, filter domain.SearchFilter) ([]domain.VerseMatch, error) {
	if topK <= 0 {
		return nil, nil
	}
	if s.embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}

	queryVec, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		logger.Warn("Query embedding failed: %v", err)
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []domain.VerseMatch //nolint:prealloc // filter may drop entries
	for _, e := range s.entries {
		if filter != nil && !filter.Matches(e.meta) {
			continue
		}
		matches = append(matches, domain.VerseMatch{
			ID:       e.id,
			Text:     e.text,
			Metadata: e.meta,
			Distance: 1 - cosineSimilarity(queryVec, e.vector),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	if topK < len(matches) {
		matches = matches[:topK]
	}
	return matches, nil
}

// GetByID returns the stored verse with the given composite ID, or nil
// when absent.
func (s *VerseStore) GetByID(_ context.Context, id string) (*domain.VerseMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.id == id {
			return &domain.VerseMatch{
				ID:       e.id,
				Text:     e.text,
				Metadata: e.meta,
			}, nil
		}
	}
	return nil, nil
}

// Stats returns a read-only projection of the store's current state.
func (s *VerseStore) Stats(_ context.Context) (domain.CollectionStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.CollectionStats{
		TotalVerses:    len(s.entries),
		CollectionName: CollectionName,
		StoragePath:    "memory",
	}, nil
}

// Close releases resources.
func (s *VerseStore) Close() error {
	return nil
}

// dedupeByID drops inputs whose ID already appeared, keeping the first
// occurrence.
func dedupeByID(inputs []domain.EmbeddingInput) ([]domain.EmbeddingInput, int) {
	seen := make(map[string]struct{}, len(inputs))
	deduped := make([]domain.EmbeddingInput, 0, len(inputs))
	for _, input := range inputs {
		if _, ok := seen[input.ID]; ok {
			continue
		}
		seen[input.ID] = struct{}{}
		deduped = append(deduped, input)
	}
	return deduped, len(inputs) - len(deduped)
}

// cosineSimilarity computes dot(q, v) / (|q| * |v|), returning 0 for
// mismatched or zero-length vectors.
func cosineSimilarity(q, v []float32) float64 {
	if len(q) == 0 || len(q) != len(v) {
		return 0
	}

	var dot, qNorm, vNorm float64
	for i := range q {
		dot += float64(q[i]) * float64(v[i])
		qNorm += float64(q[i]) * float64(q[i])
		vNorm += float64(v[i]) * float64(v[i])
	}
	if qNorm == 0 || vNorm == 0 {
		return 0
	}
	return dot / (math.Sqrt(qNorm) * math.Sqrt(vNorm))
}
