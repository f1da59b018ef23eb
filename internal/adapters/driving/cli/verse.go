package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
)

var verseCmd = &cobra.Command{
	Use:   "verse [chapter] [verse]",
	Short: "Show a single verse",
	Long: `Prints one verse of the Bhagavad Gita with its Sanskrit text and
Hindi and English translations.

Examples:
  drishti verse 2 47
  drishti verse chapter 12`,
	Args: cobra.ExactArgs(2),
	RunE: runVerse,
}

var verseChapterCmd = &cobra.Command{
	Use:   "chapter [number]",
	Short: "List all verses of a chapter",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerseChapter,
}

func init() {
	verseCmd.AddCommand(verseChapterCmd)
	rootCmd.AddCommand(verseCmd)
}

func runVerse(cmd *cobra.Command, args []string) error {
	if browseService == nil {
		return errors.New("browse service not configured")
	}

	chapter, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid chapter number %q", args[0])
	}
	verse, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid verse number %q", args[1])
	}

	record, err := browseService.Verse(chapter, verse)
	if err != nil {
		return fmt.Errorf("loading verse: %w", err)
	}
	if record == nil {
		cmd.Printf("Verse %d.%d not found in the corpus.\n", chapter, verse)
		return nil
	}

	printVerse(cmd, *record)
	return nil
}

func runVerseChapter(cmd *cobra.Command, args []string) error {
	if browseService == nil {
		return errors.New("browse service not configured")
	}

	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid chapter number %q", args[0])
	}

	info, err := browseService.Chapter(number)
	if err != nil {
		return fmt.Errorf("chapter %d: %w", number, err)
	}

	verses, err := browseService.Verses(number)
	if err != nil {
		return fmt.Errorf("loading chapter %d: %w", number, err)
	}

	cmd.Printf("Chapter %d: %s\n", info.Number, info.Name)
	cmd.Printf("%s\n\n", info.Summary)
	if len(verses) == 0 {
		cmd.Println("No verses loaded for this chapter.")
		return nil
	}
	for _, v := range verses {
		cmd.Printf("--- Verse %d.%d ---\n", v.Chapter, v.Verse)
		printVerse(cmd, v)
		cmd.Println()
	}
	return nil
}

func printVerse(cmd *cobra.Command, v domain.VerseRecord) {
	cmd.Printf("Bhagavad Gita %d.%d\n\n", v.Chapter, v.Verse)
	if v.Sanskrit != "" {
		cmd.Printf("Sanskrit:\n  %s\n\n", v.Sanskrit)
	}
	if v.Hindi != "" {
		cmd.Printf("Hindi:\n  %s\n\n", v.Hindi)
	}
	if v.English != "" {
		cmd.Printf("English:\n  %s\n", v.English)
	}
}
