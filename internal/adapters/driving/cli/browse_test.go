package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
)

func TestChaptersCmd_ListsChapters(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"chapters"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Arjuna Vishada Yoga")
	assert.Contains(t, buf.String(), "Sankhya Yoga")
}

func TestChaptersCmd_Themes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"chapters", "themes"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Karma Yoga")
	assert.Contains(t, buf.String(), "3, 5")
}

func TestVerseCmd_PrintsVerse(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	browseService.(*mockBrowseService).verse = &domain.VerseRecord{
		Chapter:  2,
		Verse:    47,
		Sanskrit: "कर्मण्येवाधिकारस्ते",
		English:  "You have a right to perform your duty",
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"verse", "2", "47"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Bhagavad Gita 2.47")
	assert.Contains(t, buf.String(), "कर्मण्येवाधिकारस्ते")
	assert.Contains(t, buf.String(), "You have a right to perform your duty")
}

func TestVerseCmd_AbsentVerse(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"verse", "2", "999"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "not found")
}

func TestVerseCmd_InvalidChapterNumber(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"verse", "two", "47"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid chapter number")
}

func TestVerseChapterCmd_ListsChapterVerses(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	browseService.(*mockBrowseService).verse = &domain.VerseRecord{
		Chapter: 2,
		Verse:   47,
		English: "You have a right to perform your duty",
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"verse", "chapter", "2"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Chapter 2: Sankhya Yoga")
	assert.Contains(t, buf.String(), "Verse 2.47")
}

func TestStatsCmd_ShowsIndexAndCorpus(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"stats"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "bhagavad_gita")
	assert.Contains(t, buf.String(), "Verses: 4")
	assert.Contains(t, buf.String(), "[Corpus]")
}

func TestJourneyCmd_EmptyJourney(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"journey"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Conversations: 0")
	assert.Contains(t, buf.String(), "No conversations yet")
}

func TestJourneyCmd_ShowsRecentQuestions(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	// Seed the journey through an ask run.
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "what is dharma"})
	require.NoError(t, rootCmd.Execute())

	buf.Reset()
	rootCmd.SetArgs([]string{"journey"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Conversations: 1")
	assert.Contains(t, buf.String(), "what is dharma")
}
