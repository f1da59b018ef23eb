package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var journeyLimit int

var journeyCmd = &cobra.Command{
	Use:   "journey",
	Short: "Show your spiritual journey",
	Long: `Shows a summary of your conversations with Drishti and the most
recent questions you asked.`,
	RunE: runJourney,
}

var journeyFavouritesCmd = &cobra.Command{
	Use:   "favourites",
	Short: "List favourite verses",
	RunE:  runJourneyFavourites,
}

func init() {
	journeyCmd.Flags().IntVarP(&journeyLimit, "limit", "n", 10, "number of recent conversations to show")
	journeyCmd.AddCommand(journeyFavouritesCmd)
	rootCmd.AddCommand(journeyCmd)
}

func runJourney(cmd *cobra.Command, _ []string) error {
	if journeyStore == nil {
		return errors.New("journey store not configured")
	}

	summary, err := journeyStore.Summary(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading journey summary: %w", err)
	}

	cmd.Println("Your Journey")
	cmd.Println("============")
	cmd.Printf("  Conversations: %d\n", summary.TotalConversations)
	cmd.Printf("  Favourite verses: %d\n", summary.TotalFavourites)
	if !summary.FirstConversation.IsZero() {
		cmd.Printf("  Seeking since: %s\n", summary.FirstConversation.Format("2 January 2006"))
	}
	cmd.Println()

	entries, err := journeyStore.Recent(cmd.Context(), journeyLimit)
	if err != nil {
		return fmt.Errorf("reading recent conversations: %w", err)
	}
	if len(entries) == 0 {
		cmd.Println("No conversations yet. Start with 'drishti ask'.")
		return nil
	}

	cmd.Println("Recent questions:")
	for _, e := range entries {
		cmd.Printf("  %s  %s\n", e.Timestamp.Format("2006-01-02 15:04"), e.Query)
	}
	return nil
}

func runJourneyFavourites(cmd *cobra.Command, _ []string) error {
	if journeyStore == nil {
		return errors.New("journey store not configured")
	}

	favourites, err := journeyStore.Favourites(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading favourites: %w", err)
	}
	if len(favourites) == 0 {
		cmd.Println("No favourite verses yet.")
		return nil
	}

	cmd.Println("Favourite verses:")
	cmd.Println()
	for _, f := range favourites {
		cmd.Printf("  Bhagavad Gita %d.%d\n", f.Chapter, f.Verse)
		if f.Text != "" {
			cmd.Printf("    %s\n", f.Text)
		}
	}
	return nil
}
