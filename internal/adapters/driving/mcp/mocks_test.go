package mcp

import (
	"context"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driving"
)

// mockAskService is a mock implementation of driving.AskService.
type mockAskService struct {
	response     string
	lastQuery    string
	lastTone     domain.Tone
	lastLanguage domain.Language
	lastMode     domain.AskMode
}

func (m *mockAskService) Ask(
	_ context.Context,
	query string,
	tone domain.Tone,
	language domain.Language,
	mode domain.AskMode,
) string {
	m.lastQuery = query
	m.lastTone = tone
	m.lastLanguage = language
	m.lastMode = mode
	return m.response
}

func (m *mockAskService) AskStream(
	ctx context.Context,
	query string,
	tone domain.Tone,
	language domain.Language,
	mode domain.AskMode,
) <-chan string {
	out := make(chan string, 1)
	out <- m.Ask(ctx, query, tone, language, mode)
	close(out)
	return out
}

// mockVerseStore is a mock implementation of driven.VerseStore.
type mockVerseStore struct {
	matches    []domain.VerseMatch
	searchErr  error
	lastQuery  string
	lastTopK   int
	lastFilter domain.SearchFilter
}

func (m *mockVerseStore) Initialize(_ context.Context) error { return nil }

func (m *mockVerseStore) BuildIndex(_ context.Context, _ []domain.EmbeddingInput, _ bool) (domain.BuildReport, error) {
	return domain.BuildReport{}, nil
}

func (m *mockVerseStore) Search(_ context.Context, query string, topK int, filter domain.SearchFilter) ([]domain.VerseMatch, error) {
	m.lastQuery = query
	m.lastTopK = topK
	m.lastFilter = filter
	return m.matches, m.searchErr
}

func (m *mockVerseStore) GetByID(_ context.Context, _ string) (*domain.VerseMatch, error) {
	return nil, nil
}

func (m *mockVerseStore) Stats(_ context.Context) (domain.CollectionStats, error) {
	return domain.CollectionStats{}, nil
}

func (m *mockVerseStore) Close() error { return nil }

// mockBrowseService is a mock implementation of driving.BrowseService.
type mockBrowseService struct {
	chapters []driving.ChapterInfo
	themes   []driving.ThemeInfo
	verse    *domain.VerseRecord
	verseErr error
}

func (m *mockBrowseService) Chapters() []driving.ChapterInfo { return m.chapters }

func (m *mockBrowseService) Chapter(n int) (driving.ChapterInfo, error) {
	for _, ch := range m.chapters {
		if ch.Number == n {
			return ch, nil
		}
	}
	return driving.ChapterInfo{}, domain.ErrNotFound
}

func (m *mockBrowseService) Verses(_ int) ([]domain.VerseRecord, error) { return nil, nil }

func (m *mockBrowseService) Verse(_, _ int) (*domain.VerseRecord, error) {
	return m.verse, m.verseErr
}

func (m *mockBrowseService) Themes() []driving.ThemeInfo { return m.themes }

func (m *mockBrowseService) VerseCount() (int, error) { return 0, nil }

func (m *mockBrowseService) ChapterCount() (int, error) { return 0, nil }
