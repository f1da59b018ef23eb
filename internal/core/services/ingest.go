package services

import (
	"context"
	"fmt"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driven"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driving"
	"github.com/drishti-labs/drishti-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService builds the verse store from the corpus.
type IngestService struct {
	corpus *CorpusService
	store  driven.VerseStore
}

// NewIngestService creates a new ingest service.
func NewIngestService(corpus *CorpusService, store driven.VerseStore) *IngestService {
	return &IngestService{
		corpus: corpus,
		store:  store,
	}
}

// Ingest loads the corpus and builds the verse store index.
// Corpus errors are fatal for the ingestion step and are surfaced to the
// operator, never silently skipped.
func (s *IngestService) Ingest(ctx context.Context, force bool) (domain.BuildReport, error) {
	if s.store == nil {
		return domain.BuildReport{}, domain.ErrStoreUnavailable
	}

	if err := s.store.Initialize(ctx); err != nil {
		return domain.BuildReport{}, fmt.Errorf("initialising verse store: %w", err)
	}

	inputs, err := s.corpus.EmbeddingRecords()
	if err != nil {
		return domain.BuildReport{}, err
	}

	logger.Section("Index Build")
	logger.Debug("Corpus records: %d, force: %t", len(inputs), force)

	report, err := s.store.BuildIndex(ctx, inputs, force)
	if err != nil {
		return report, fmt.Errorf("building index: %w", err)
	}

	if report.Skipped {
		logger.Info("Store already populated (%d verses), skipping build", report.Total)
	} else {
		logger.Info("Embedded %d verses (%d duplicates dropped)", report.Embedded, report.DuplicatesDropped)
	}

	return report, nil
}
