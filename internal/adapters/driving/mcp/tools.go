package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to ask for guidance on"`
	Tone     string `json:"tone,omitempty" jsonschema:"response tone: spiritual, scholarly, modern or devotional (default modern)"`
	Language string `json:"language,omitempty" jsonschema:"response language: english, hindi or sanskrit (default english)"`
	Mode     string `json:"mode,omitempty" jsonschema:"gita for verse-grounded answers, universal for broader guidance (default gita)"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Guidance string `json:"guidance"`
}

// SearchVersesInput is the input schema for the search_verses tool.
type SearchVersesInput struct {
	Query   string `json:"query" jsonschema:"text to find semantically similar verses for"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum number of verses to return (default 5)"`
	Chapter int    `json:"chapter,omitempty" jsonschema:"restrict results to one chapter"`
}

// SearchVersesOutput is the output schema for the search_verses tool.
type SearchVersesOutput struct {
	Verses []VerseMatchOutput `json:"verses"`
	Count  int                `json:"count"`
}

// VerseMatchOutput represents a single verse search result.
type VerseMatchOutput struct {
	Citation   string  `json:"citation"`
	Chapter    int     `json:"chapter"`
	Verse      int     `json:"verse"`
	Text       string  `json:"text"`
	Similarity float64 `json:"similarity"`
}

// GetVerseInput is the input schema for the get_verse tool.
type GetVerseInput struct {
	Chapter int `json:"chapter" jsonschema:"chapter number (1-18)"`
	Verse   int `json:"verse" jsonschema:"verse number within the chapter"`
}

// GetVerseOutput is the output schema for the get_verse tool.
type GetVerseOutput struct {
	Found    bool   `json:"found"`
	Citation string `json:"citation,omitempty"`
	Sanskrit string `json:"sanskrit,omitempty"`
	Hindi    string `json:"hindi,omitempty"`
	English  string `json:"english,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Ask for guidance grounded in the Bhagavad Gita",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_verses",
		Description: "Search Bhagavad Gita verses by semantic similarity",
	}, s.handleSearchVerses)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_verse",
		Description: "Retrieve one Bhagavad Gita verse by chapter and verse number",
	}, s.handleGetVerse)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	guidance := s.ports.Ask.Ask(
		ctx,
		input.Question,
		domain.ParseTone(input.Tone),
		domain.ParseLanguage(input.Language),
		domain.ParseMode(input.Mode),
	)
	return nil, AskOutput{Guidance: guidance}, nil
}

// handleSearchVerses handles the search_verses tool invocation.
func (s *Server) handleSearchVerses(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchVersesInput,
) (*mcp.CallToolResult, SearchVersesOutput, error) {
	if s.ports.Store == nil {
		return nil, SearchVersesOutput{Verses: []VerseMatchOutput{}}, nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 5
	}

	var filter domain.SearchFilter
	if input.Chapter > 0 {
		filter = domain.SearchFilter{"chapter": input.Chapter}
	}

	matches, err := s.ports.Store.Search(ctx, input.Query, limit, filter)
	if err != nil {
		return nil, SearchVersesOutput{}, err
	}

	output := SearchVersesOutput{
		Verses: make([]VerseMatchOutput, len(matches)),
		Count:  len(matches),
	}
	for i := range matches {
		output.Verses[i] = VerseMatchOutput{
			Citation:   fmt.Sprintf("Bhagavad Gita %d.%d", matches[i].Metadata.Chapter, matches[i].Metadata.Verse),
			Chapter:    matches[i].Metadata.Chapter,
			Verse:      matches[i].Metadata.Verse,
			Text:       matches[i].Text,
			Similarity: 1 - matches[i].Distance,
		}
	}

	return nil, output, nil
}

// handleGetVerse handles the get_verse tool invocation.
func (s *Server) handleGetVerse(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetVerseInput,
) (*mcp.CallToolResult, GetVerseOutput, error) {
	if s.ports.Browse == nil {
		return nil, GetVerseOutput{}, nil
	}

	record, err := s.ports.Browse.Verse(input.Chapter, input.Verse)
	if err != nil {
		return nil, GetVerseOutput{}, err
	}
	if record == nil {
		return nil, GetVerseOutput{Found: false}, nil
	}

	return nil, GetVerseOutput{
		Found:    true,
		Citation: fmt.Sprintf("Bhagavad Gita %d.%d", record.Chapter, record.Verse),
		Sanskrit: record.Sanskrit,
		Hindi:    record.Hindi,
		English:  record.English,
	}, nil
}
