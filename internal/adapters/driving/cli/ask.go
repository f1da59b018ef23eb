package cli

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driven"
	"github.com/drishti-labs/drishti-cli/internal/logger"
)

var (
	askTone      string
	askLanguage  string
	askUniversal bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask for guidance",
	Long: `Asks a question and receives guidance grounded in the Bhagavad Gita,
with verses cited by chapter and verse.

Tones: spiritual, scholarly, modern, devotional
Languages: english, hindi, sanskrit

Use --universal for broader spiritual guidance that is not restricted
to retrieved verses.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askTone, "tone", "t", string(domain.DefaultTone), "response tone")
	askCmd.Flags().StringVarP(&askLanguage, "language", "l", string(domain.DefaultLanguage), "response language")
	askCmd.Flags().BoolVar(&askUniversal, "universal", false, "answer without verse retrieval")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if askService == nil {
		return errors.New("ask service not configured")
	}

	query := strings.Join(args, " ")
	tone := domain.ParseTone(askTone)
	language := domain.ParseLanguage(askLanguage)
	mode := domain.ModeGita
	if askUniversal {
		mode = domain.ModeUniversal
	}

	response := askService.Ask(cmd.Context(), query, tone, language, mode)
	cmd.Println(response)

	recordConversation(cmd, query, response, tone, language, mode)
	return nil
}

// recordConversation appends the turn to the journey log. The journey is
// a best-effort convenience, so failures are logged and swallowed.
func recordConversation(cmd *cobra.Command, query, response string, tone domain.Tone, language domain.Language, mode domain.AskMode) {
	if journeyStore == nil {
		return
	}

	entry := driven.JourneyEntry{
		Timestamp: time.Now().UTC(),
		Query:     query,
		Response:  response,
		Tone:      tone.String(),
		Language:  language.String(),
		Mode:      mode.String(),
	}
	if err := journeyStore.Record(cmd.Context(), entry); err != nil {
		logger.Warn("Recording journey entry failed: %v", err)
	}
}
