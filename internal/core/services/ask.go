package services

import (
	"context"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driving"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// AskService is the thin facade in front of the guidance pipeline.
// It normalises request parameters to members of the enumerated sets,
// falling back to defaults for unknown values.
type AskService struct {
	guidance *GuidanceService
}

// NewAskService creates a new ask service.
func NewAskService(guidance *GuidanceService) *AskService {
	return &AskService{guidance: guidance}
}

// Ask processes one query through the guidance pipeline.
func (s *AskService) Ask(
	ctx context.Context,
	query string,
	tone domain.Tone,
	language domain.Language,
	mode domain.AskMode,
) string {
	tone = domain.ParseTone(tone.String())
	language = domain.ParseLanguage(language.String())
	mode = domain.ParseMode(mode.String())

	return s.guidance.Guide(ctx, query, tone, language, mode)
}

// AskStream yields the complete response as a single chunk.
// True incremental streaming is not implemented; the channel protocol is
// in place so callers do not change when it is.
func (s *AskService) AskStream(
	ctx context.Context,
	query string,
	tone domain.Tone,
	language domain.Language,
	mode domain.AskMode,
) <-chan string {
	out := make(chan string, 1)
	go func() {
		defer close(out)
		select {
		case out <- s.Ask(ctx, query, tone, language, mode):
		case <-ctx.Done():
		}
	}()
	return out
}
