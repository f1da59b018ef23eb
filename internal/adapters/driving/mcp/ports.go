package mcp

import (
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driven"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ask answers questions through the guidance pipeline.
	Ask driving.AskService

	// Store provides direct verse search. Optional; the search tool
	// returns empty results without it.
	Store driven.VerseStore

	// Browse provides chapter and verse lookups. Optional.
	Browse driving.BrowseService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ask == nil {
		return ErrMissingAskService
	}
	// Store and Browse are optional
	return nil
}
