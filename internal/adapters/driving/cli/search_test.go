package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_PrintsMatches(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	verseStore.(*mockVerseStore).matches = []domain.VerseMatch{
		{
			ID:       "2.47",
			Text:     "You have a right to perform your duty",
			Metadata: domain.VerseMeta{Chapter: 2, Verse: 47, VerseID: "2.47"},
			Distance: 0.2,
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "duty"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Bhagavad Gita 2.47")
	assert.Contains(t, buf.String(), "0.80") // similarity = 1 - distance
}

func TestSearchCmd_EmptyResultHint(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "duty"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No matching verses found")
}

func TestSearchCmd_UnconfiguredEmbedderSurfacesError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	verseStore = &mockVerseStore{searchErr: domain.ErrEmbeddingUnavailable}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "duty"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
}

func TestSearchCmd_LimitFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "-n", "3", "duty"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchTopK = 5
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, 3, verseStore.(*mockVerseStore).lastTopK)
}

func TestSearchCmd_ChapterFilter(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--chapter", "12", "devotion"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchChapter = 0
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, domain.SearchFilter{"chapter": 12}, verseStore.(*mockVerseStore).lastFilter)
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	verseStore.(*mockVerseStore).matches = []domain.VerseMatch{
		{ID: "2.47", Metadata: domain.VerseMeta{Chapter: 2, Verse: 47, VerseID: "2.47"}},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--json", "duty"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\"ID\"")
	assert.Contains(t, buf.String(), "\"verse_id\"")
}
