package driving

import (
	"context"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
)

// AskService is the single query entry point exposed to the UI layer.
// Parameter validation is limited to enum membership: unknown tone,
// language or mode values fall back to documented defaults rather than
// erroring, since this is a convenience boundary, not a strict API.
type AskService interface {
	// Ask runs the query through the full guidance pipeline and returns
	// the response text. The user always receives some text: policy
	// redirects and generation failures surface as content, not errors.
	Ask(ctx context.Context, query string, tone domain.Tone, language domain.Language, mode domain.AskMode) string

	// AskStream is a placeholder streaming entry point. It currently
	// yields the complete response as a single chunk and then closes the
	// channel.
	AskStream(ctx context.Context, query string, tone domain.Tone, language domain.Language, mode domain.AskMode) <-chan string
}
