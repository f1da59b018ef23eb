package cli

import (
	"context"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driven"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driving"
)

// setupTestServices swaps the package-level services for mocks and
// returns a cleanup function restoring the originals.
func setupTestServices() func() {
	origAsk := askService
	origIngest := ingestService
	origBrowse := browseService
	origStore := verseStore
	origJourney := journeyStore

	askService = &mockAskService{response: "Test guidance from the Gita."}
	ingestService = &mockIngestService{report: domain.BuildReport{Embedded: 4, Total: 4}}
	browseService = &mockBrowseService{}
	verseStore = &mockVerseStore{}
	journeyStore = &mockJourneyStore{}

	return func() {
		askService = origAsk
		ingestService = origIngest
		browseService = origBrowse
		verseStore = origStore
		journeyStore = origJourney
	}
}

type mockAskService struct {
	response  string
	lastQuery string
	lastTone  domain.Tone
	lastMode  domain.AskMode
}

func (m *mockAskService) Ask(_ context.Context, query string, tone domain.Tone, _ domain.Language, mode domain.AskMode) string {
	m.lastQuery = query
	m.lastTone = tone
	m.lastMode = mode
	return m.response
}

func (m *mockAskService) AskStream(ctx context.Context, query string, tone domain.Tone, language domain.Language, mode domain.AskMode) <-chan string {
	out := make(chan string, 1)
	out <- m.Ask(ctx, query, tone, language, mode)
	close(out)
	return out
}

type mockIngestService struct {
	report    domain.BuildReport
	err       error
	lastForce bool
}

func (m *mockIngestService) Ingest(_ context.Context, force bool) (domain.BuildReport, error) {
	m.lastForce = force
	return m.report, m.err
}

type mockBrowseService struct {
	verse    *domain.VerseRecord
	verseErr error
}

func (m *mockBrowseService) Chapters() []driving.ChapterInfo {
	return []driving.ChapterInfo{
		{Number: 1, Name: "Arjuna Vishada Yoga", Summary: "Arjuna's despair on the battlefield"},
		{Number: 2, Name: "Sankhya Yoga", Summary: "The yoga of knowledge"},
	}
}

func (m *mockBrowseService) Chapter(n int) (driving.ChapterInfo, error) {
	for _, ch := range m.Chapters() {
		if ch.Number == n {
			return ch, nil
		}
	}
	return driving.ChapterInfo{}, domain.ErrNotFound
}

func (m *mockBrowseService) Verses(chapter int) ([]domain.VerseRecord, error) {
	if m.verse != nil && m.verse.Chapter == chapter {
		return []domain.VerseRecord{*m.verse}, nil
	}
	return nil, nil
}

func (m *mockBrowseService) Verse(_, _ int) (*domain.VerseRecord, error) {
	return m.verse, m.verseErr
}

func (m *mockBrowseService) Themes() []driving.ThemeInfo {
	return []driving.ThemeInfo{
		{Name: "Karma Yoga", Chapters: []int{3, 5}},
	}
}

func (m *mockBrowseService) VerseCount() (int, error) { return 2, nil }

func (m *mockBrowseService) ChapterCount() (int, error) { return 2, nil }

type mockVerseStore struct {
	matches    []domain.VerseMatch
	searchErr  error
	lastTopK   int
	lastFilter domain.SearchFilter
}

func (m *mockVerseStore) Initialize(_ context.Context) error { return nil }

func (m *mockVerseStore) BuildIndex(_ context.Context, _ []domain.EmbeddingInput, _ bool) (domain.BuildReport, error) {
	return domain.BuildReport{}, nil
}

func (m *mockVerseStore) Search(_ context.Context, _ string, topK int, filter domain.SearchFilter) ([]domain.VerseMatch, error) {
	m.lastTopK = topK
	m.lastFilter = filter
	return m.matches, m.searchErr
}

func (m *mockVerseStore) GetByID(_ context.Context, _ string) (*domain.VerseMatch, error) {
	return nil, nil
}

func (m *mockVerseStore) Stats(_ context.Context) (domain.CollectionStats, error) {
	return domain.CollectionStats{TotalVerses: 4, CollectionName: "bhagavad_gita", StoragePath: "memory"}, nil
}

func (m *mockVerseStore) Close() error { return nil }

type mockJourneyStore struct {
	entries    []driven.JourneyEntry
	favourites []driven.FavouriteVerse
}

func (m *mockJourneyStore) Record(_ context.Context, entry driven.JourneyEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockJourneyStore) RecordFavourite(_ context.Context, fav driven.FavouriteVerse) error {
	m.favourites = append(m.favourites, fav)
	return nil
}

func (m *mockJourneyStore) Recent(_ context.Context, limit int) ([]driven.JourneyEntry, error) {
	if limit > len(m.entries) {
		limit = len(m.entries)
	}
	return m.entries[len(m.entries)-limit:], nil
}

func (m *mockJourneyStore) Favourites(_ context.Context) ([]driven.FavouriteVerse, error) {
	return m.favourites, nil
}

func (m *mockJourneyStore) Summary(_ context.Context) (driven.JourneySummary, error) {
	return driven.JourneySummary{
		TotalConversations: len(m.entries),
		TotalFavourites:    len(m.favourites),
	}, nil
}
