package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driven"
	"github.com/drishti-labs/drishti-cli/internal/logger"
)

// NoContextSentinel is rendered in place of retrieved verses when the
// store returns no matches.
const NoContextSentinel = "No specific verses found for this query."

// retrievalTopK is the number of verses retrieved for a grounded answer.
const retrievalTopK = 5

// apologyFormat wraps a generation failure into user-visible text.
// Generation failures (network, quota) are expected and must never crash
// the caller.
const apologyFormat = "I apologize, but I encountered an error while seeking guidance: %v\n\nPlease try again in a moment."

// GuidanceService sequences classification, retrieval, formatting, prompt
// assembly and the generation call. Each invocation starts fresh at the
// first gate; the service keeps no cross-query state.
type GuidanceService struct {
	classifier *Classifier
	store      driven.VerseStore
	llm        driven.LLMService
	prompts    driven.PromptStore
	genOpts    driven.GenerateOptions
}

// NewGuidanceService creates a new guidance service.
func NewGuidanceService(
	classifier *Classifier,
	store driven.VerseStore,
	llm driven.LLMService,
	prompts driven.PromptStore,
	genOpts driven.GenerateOptions,
) *GuidanceService {
	return &GuidanceService{
		classifier: classifier,
		store:      store,
		llm:        llm,
		prompts:    prompts,
		genOpts:    genOpts,
	}
}

// Guide runs the query through the gate sequence and returns response
// text. The gates are evaluated in order, each a short-circuit over the
// next: off-topic, harmful intent, universal mode, grounded mode.
func (s *GuidanceService) Guide(
	ctx context.Context,
	query string,
	tone domain.Tone,
	language domain.Language,
	mode domain.AskMode,
) string {
	logger.Section("Guidance Pipeline")
	logger.Debug("Query: %q tone=%s language=%s mode=%s", query, tone, language, mode)

	if !s.classifier.InDomain(query) {
		logger.Info("Off-topic query, returning domain redirect")
		return domain.DomainRedirect
	}

	if verdict := s.classifier.ClassifyHarm(query); verdict.IsHarmful {
		logger.Info("Harmful intent detected (%s), returning redirect", verdict.Category)
		return verdict.Redirect
	}

	if mode == domain.ModeUniversal {
		return s.universalAnswer(ctx, query, language)
	}

	return s.groundedAnswer(ctx, query, tone, language)
}

// FormatContext renders ranked matches into a prompt-ready context block.
// Ranked order is preserved; missing metadata renders as empty fields,
// never as an error.
func (s *GuidanceService) FormatContext(results []domain.VerseMatch) string {
	if len(results) == 0 {
		return NoContextSentinel
	}

	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = fmt.Sprintf("Bhagavad Gita %s:\n%s\n", citation(r.Metadata), r.Text)
	}
	return strings.Join(parts, "\n")
}

// citation renders the "{chapter}.{verse}" citation, leaving absent
// fields empty.
func citation(meta domain.VerseMeta) string {
	chapter := ""
	if meta.Chapter != 0 {
		chapter = fmt.Sprintf("%d", meta.Chapter)
	}
	verse := ""
	if meta.Verse != 0 {
		verse = fmt.Sprintf("%d", meta.Verse)
	}
	return chapter + "." + verse
}

// universalAnswer sends the persona prompt directly to generation,
// skipping retrieval.
func (s *GuidanceService) universalAnswer(ctx context.Context, query string, language domain.Language) string {
	template, err := s.prompts.Load(driven.PromptUniversal)
	if err != nil {
		logger.Warn("Loading universal prompt failed: %v", err)
		return fmt.Sprintf(apologyFormat, err)
	}

	prompt := fmt.Sprintf(template, query, language)
	return s.generate(ctx, prompt)
}

// groundedAnswer retrieves context verses and assembles the composite
// prompt: base persona, tone instruction block, formatted context, the
// raw query and the response language.
func (s *GuidanceService) groundedAnswer(ctx context.Context, query string, tone domain.Tone, language domain.Language) string {
	matches, err := s.store.Search(ctx, query, retrievalTopK, nil)
	if err != nil {
		// Retrieval failures degrade to a context-free answer rather
		// than failing the whole query.
		logger.Warn("Retrieval failed, proceeding without context: %v", err)
		matches = nil
	}
	logger.Debug("Retrieved %d context verses", len(matches))

	contextBlock := s.FormatContext(matches)

	base, err := s.prompts.Load(driven.PromptBaseSystem)
	if err != nil {
		logger.Warn("Loading base prompt failed: %v", err)
		return fmt.Sprintf(apologyFormat, err)
	}
	toneBlock, err := s.prompts.Load(tonePromptName(tone))
	if err != nil {
		logger.Warn("Loading tone prompt failed: %v", err)
		return fmt.Sprintf(apologyFormat, err)
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString("\n\n")
	b.WriteString(toneBlock)
	b.WriteString("\n\n**Context from Bhagavad Gita**:\n")
	b.WriteString(contextBlock)
	b.WriteString("\n\n**Seeker's Question**: ")
	b.WriteString(query)
	b.WriteString("\n\n**Response Language**: ")
	b.WriteString(language.String())
	b.WriteString("\n\nProvide divine guidance that addresses the question with wisdom and compassion, cites relevant verses with chapter and verse numbers, connects the teachings to the seeker's situation, maintains the selected tone throughout, and responds in the requested language.")

	return s.generate(ctx, b.String())
}

// generate invokes the generation operation, recovering failures into a
// user-facing apology instead of propagating a hard error.
func (s *GuidanceService) generate(ctx context.Context, prompt string) string {
	if s.llm == nil {
		return fmt.Sprintf(apologyFormat, domain.ErrLLMUnavailable)
	}

	text, err := s.llm.Generate(ctx, prompt, s.genOpts)
	if err != nil {
		logger.Warn("Generation failed: %v", err)
		return fmt.Sprintf(apologyFormat, err)
	}
	return text
}

// tonePromptName maps a tone to its prompt store name.
func tonePromptName(tone domain.Tone) string {
	switch tone {
	case domain.ToneSpiritual:
		return driven.PromptToneSpiritual
	case domain.ToneScholarly:
		return driven.PromptToneScholarly
	case domain.ToneDevotional:
		return driven.PromptToneDevotional
	default:
		return driven.PromptToneModern
	}
}
