package services

import (
	"fmt"
	"sync"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driven"
	"github.com/drishti-labs/drishti-cli/internal/logger"
)

// CorpusService owns the loaded verse corpus. The underlying source is
// parsed lazily on first access and cached; verse records are immutable
// after loading, so all derived queries read the same snapshot.
type CorpusService struct {
	source driven.CorpusSource

	mu     sync.Mutex
	verses []domain.VerseRecord
	loaded bool
}

// NewCorpusService creates a new corpus service over the given source.
func NewCorpusService(source driven.CorpusSource) *CorpusService {
	return &CorpusService{source: source}
}

// Load returns the full verse sequence, parsing the source on first call.
func (s *CorpusService) Load() ([]domain.VerseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.verses, nil
	}

	verses, err := s.source.Load()
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}

	logger.Info("Loaded %d verses from %s", len(verses), s.source.Path())
	s.verses = verses
	s.loaded = true
	return s.verses, nil
}

// VerseCount returns the total number of verses in the corpus.
func (s *CorpusService) VerseCount() (int, error) {
	verses, err := s.Load()
	if err != nil {
		return 0, err
	}
	return len(verses), nil
}

// ChapterCount returns the number of distinct chapters in the corpus.
func (s *CorpusService) ChapterCount() (int, error) {
	verses, err := s.Load()
	if err != nil {
		return 0, err
	}

	seen := make(map[int]struct{})
	for _, v := range verses {
		seen[v.Chapter] = struct{}{}
	}
	return len(seen), nil
}

// VersesForChapter returns all verses of the given chapter in corpus order.
func (s *CorpusService) VersesForChapter(chapter int) ([]domain.VerseRecord, error) {
	verses, err := s.Load()
	if err != nil {
		return nil, err
	}

	var result []domain.VerseRecord
	for _, v := range verses {
		if v.Chapter == chapter {
			result = append(result, v)
		}
	}
	return result, nil
}

// Verse returns the verse at the given chapter and verse number.
// Absence is reported as (nil, nil), not an error.
func (s *CorpusService) Verse(chapter, verse int) (*domain.VerseRecord, error) {
	verses, err := s.Load()
	if err != nil {
		return nil, err
	}

	for i := range verses {
		if verses[i].Chapter == chapter && verses[i].Verse == verse {
			v := verses[i]
			return &v, nil
		}
	}
	return nil, nil
}

// EmbeddingRecords converts every verse into the form fed into the verse
// store build step.
func (s *CorpusService) EmbeddingRecords() ([]domain.EmbeddingInput, error) {
	verses, err := s.Load()
	if err != nil {
		return nil, err
	}

	inputs := make([]domain.EmbeddingInput, len(verses))
	for i, v := range verses {
		inputs[i] = v.EmbeddingInput()
	}
	return inputs, nil
}
