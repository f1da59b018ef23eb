package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var ingestForce bool

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Build the verse index",
	Long: `Loads the Bhagavad Gita corpus, embeds every verse and builds the
search index. An already-populated index is left untouched unless
--force is given, in which case it is cleared and rebuilt.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestForce, "force", false, "clear and rebuild an existing index")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	report, err := ingestService.Ingest(cmd.Context(), ingestForce)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	if report.Skipped {
		cmd.Printf("Index already contains %d verses. Use --force to rebuild.\n", report.Total)
		return nil
	}

	cmd.Printf("Embedded %d verses.\n", report.Embedded)
	if report.DuplicatesDropped > 0 {
		cmd.Printf("Dropped %d duplicate verses.\n", report.DuplicatesDropped)
	}
	cmd.Printf("Index now holds %d verses.\n", report.Total)
	return nil
}
