package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for drishti resources.
const uriScheme = "drishti://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource listing the eighteen chapters.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "chapters",
		Name:        "chapters",
		Description: "The chapters of the Bhagavad Gita with names and summaries",
		MIMEType:    "application/json",
	}, s.handleChaptersResource)

	// Static resource listing the theme table.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "themes",
		Name:        "themes",
		Description: "Recurring themes and the chapters that cover them",
		MIMEType:    "application/json",
	}, s.handleThemesResource)
}

// handleChaptersResource returns the chapter metadata table.
func (s *Server) handleChaptersResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Browse == nil {
		return emptyJSONResource(req), nil
	}

	type chapterInfo struct {
		Number  int    `json:"number"`
		Name    string `json:"name"`
		Summary string `json:"summary"`
	}

	chapters := s.ports.Browse.Chapters()
	infos := make([]chapterInfo, len(chapters))
	for i, ch := range chapters {
		infos[i] = chapterInfo{Number: ch.Number, Name: ch.Name, Summary: ch.Summary}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling chapters: %w", err)
	}

	return jsonResource(req, string(data)), nil
}

// handleThemesResource returns the theme-to-chapters table.
func (s *Server) handleThemesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Browse == nil {
		return emptyJSONResource(req), nil
	}

	type themeInfo struct {
		Name     string `json:"name"`
		Chapters []int  `json:"chapters"`
	}

	themes := s.ports.Browse.Themes()
	infos := make([]themeInfo, len(themes))
	for i, th := range themes {
		infos[i] = themeInfo{Name: th.Name, Chapters: th.Chapters}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling themes: %w", err)
	}

	return jsonResource(req, string(data)), nil
}

func jsonResource(req *mcp.ReadResourceRequest, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

func emptyJSONResource(req *mcp.ReadResourceRequest) *mcp.ReadResourceResult {
	return jsonResource(req, "[]")
}
