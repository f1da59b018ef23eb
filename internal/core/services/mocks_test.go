package services

import (
	"context"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driven"
)

// --- Mock implementations of driven ports ---

// mockCorpusSource implements driven.CorpusSource for testing.
type mockCorpusSource struct {
	verses    []domain.VerseRecord
	err       error
	loadCalls int
}

func (m *mockCorpusSource) Load() ([]domain.VerseRecord, error) {
	m.loadCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.verses, nil
}

func (m *mockCorpusSource) Path() string {
	return "mock://corpus"
}

// mockVerseStore implements driven.VerseStore for testing.
type mockVerseStore struct {
	matches     []domain.VerseMatch
	searchErr   error
	buildReport domain.BuildReport
	buildErr    error
	initErr     error

	initCalls   int
	buildCalls  int
	searchCalls int
	lastQuery   string
	lastTopK    int
	lastForce   bool
}

func (m *mockVerseStore) Initialize(_ context.Context) error {
	m.initCalls++
	return m.initErr
}

func (m *mockVerseStore) BuildIndex(_ context.Context, inputs []domain.EmbeddingInput, force bool) (domain.BuildReport, error) {
	m.buildCalls++
	m.lastForce = force
	if m.buildErr != nil {
		return domain.BuildReport{}, m.buildErr
	}
	return m.buildReport, nil
}

func (m *mockVerseStore) Search(_ context.Context, query string, topK int, _ domain.SearchFilter) ([]domain.VerseMatch, error) {
	m.searchCalls++
	m.lastQuery = query
	m.lastTopK = topK
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if topK < len(m.matches) {
		return m.matches[:topK], nil
	}
	return m.matches, nil
}

func (m *mockVerseStore) GetByID(_ context.Context, id string) (*domain.VerseMatch, error) {
	for i := range m.matches {
		if m.matches[i].ID == id {
			return &m.matches[i], nil
		}
	}
	return nil, nil
}

func (m *mockVerseStore) Stats(_ context.Context) (domain.CollectionStats, error) {
	return domain.CollectionStats{TotalVerses: len(m.matches)}, nil
}

func (m *mockVerseStore) Close() error { return nil }

// mockLLM implements driven.LLMService for testing.
type mockLLM struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockLLM) ModelName() string            { return "mock-llm" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }

// mockPrompts implements driven.PromptStore for testing, serving
// recognisable fixed templates.
type mockPrompts struct{}

func (m *mockPrompts) Load(name string) (string, error) {
	switch name {
	case driven.PromptUniversal:
		return "UNIVERSAL question=%s language=%s", nil
	default:
		return "[" + name + "]", nil
	}
}

func (m *mockPrompts) Reload() {}
