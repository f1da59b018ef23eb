package driven

import (
	"context"
	"time"
)

// JourneyStore records the user's conversation journey. It is an optional
// collaborator appended to AFTER an answer is produced; the core never
// reads history back into prompts.
type JourneyStore interface {
	// Record appends a conversation entry.
	Record(ctx context.Context, entry JourneyEntry) error

	// RecordFavourite marks a verse as a favourite.
	RecordFavourite(ctx context.Context, fav FavouriteVerse) error

	// Recent returns up to limit entries, newest last.
	Recent(ctx context.Context, limit int) ([]JourneyEntry, error)

	// Favourites returns all favourite verses.
	Favourites(ctx context.Context) ([]FavouriteVerse, error)

	// Summary returns aggregate counts for the journey.
	Summary(ctx context.Context) (JourneySummary, error)
}

// JourneyEntry is one recorded conversation turn.
type JourneyEntry struct {
	// ID is a unique identifier for the entry.
	ID string `json:"id"`

	// Timestamp is when the conversation happened.
	Timestamp time.Time `json:"timestamp"`

	// Query is the user's question.
	Query string `json:"query"`

	// Response is the text returned to the user.
	Response string `json:"response"`

	// Tone, Language and Mode record the request parameters.
	Tone     string `json:"tone,omitempty"`
	Language string `json:"language,omitempty"`
	Mode     string `json:"mode,omitempty"`
}

// FavouriteVerse is a verse the user marked as a favourite.
type FavouriteVerse struct {
	// Chapter and Verse identify the verse.
	Chapter int `json:"chapter"`
	Verse   int `json:"verse"`

	// Text is the verse text at the time it was favourited.
	Text string `json:"text"`

	// AddedAt is when the verse was favourited.
	AddedAt time.Time `json:"added_at"`
}

// JourneySummary aggregates the journey for display.
type JourneySummary struct {
	// TotalConversations is the number of recorded turns.
	TotalConversations int `json:"total_conversations"`

	// TotalFavourites is the number of favourite verses.
	TotalFavourites int `json:"total_favourites"`

	// FirstConversation is the timestamp of the earliest entry, zero when
	// the journey is empty.
	FirstConversation time.Time `json:"first_conversation,omitzero"`
}
