package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus and index statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if verseStore == nil {
		return errors.New("verse store not configured")
	}

	stats, err := verseStore.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading index stats: %w", err)
	}

	cmd.Println("[Index]")
	cmd.Printf("  Collection: %s\n", stats.CollectionName)
	cmd.Printf("  Verses: %d\n", stats.TotalVerses)
	cmd.Printf("  Storage: %s\n", stats.StoragePath)
	cmd.Println()

	if browseService == nil {
		return nil
	}

	// The corpus may be absent on a machine that only queries a
	// pre-built index; that is not an error worth failing stats over.
	verses, err := browseService.VerseCount()
	if err != nil {
		cmd.Printf("[Corpus]\n  Unavailable: %v\n", err)
		return nil
	}
	chapters, err := browseService.ChapterCount()
	if err != nil {
		cmd.Printf("[Corpus]\n  Unavailable: %v\n", err)
		return nil
	}

	cmd.Println("[Corpus]")
	cmd.Printf("  Path: %s\n", appSettings.CorpusPath)
	cmd.Printf("  Verses: %d\n", verses)
	cmd.Printf("  Chapters: %d\n", chapters)
	return nil
}
