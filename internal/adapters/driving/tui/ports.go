// Package tui provides the interactive chat interface for drishti.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driven"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the chat.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ask answers questions through the guidance pipeline.
	Ask driving.AskService

	// Journey records conversation turns. Optional; nil disables
	// journey logging.
	Journey driven.JourneyStore
}
