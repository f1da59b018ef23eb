package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
)

var (
	searchTopK    int
	searchChapter int
	searchJSON    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search verses by meaning",
	Long: `Performs semantic search over the indexed verses and prints the
closest matches with their chapter and verse citations.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchTopK, "limit", "n", 5, "maximum number of results")
	searchCmd.Flags().IntVarP(&searchChapter, "chapter", "c", 0, "restrict results to one chapter")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if verseStore == nil {
		return errors.New("verse store not configured")
	}

	var filter domain.SearchFilter
	if searchChapter > 0 {
		filter = domain.SearchFilter{"chapter": searchChapter}
	}

	matches, err := verseStore.Search(cmd.Context(), args[0], searchTopK, filter)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputMatchesJSON(cmd, matches)
	}
	return outputMatchesText(cmd, matches)
}

func outputMatchesJSON(cmd *cobra.Command, matches []domain.VerseMatch) error {
	data, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputMatchesText(cmd *cobra.Command, matches []domain.VerseMatch) error {
	if len(matches) == 0 {
		cmd.Println("No matching verses found. Run 'drishti ingest' if the index is empty.")
		return nil
	}

	cmd.Println("Matching verses:")
	cmd.Println()
	for i, m := range matches {
		similarity := 1 - m.Distance
		cmd.Printf("  [%d] Bhagavad Gita %d.%d (%.2f)\n", i+1, m.Metadata.Chapter, m.Metadata.Verse, similarity)
		cmd.Printf("      %s\n", m.Text)
		cmd.Println()
	}
	return nil
}
