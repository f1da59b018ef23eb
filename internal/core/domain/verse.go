package domain

import (
	"fmt"
	"strings"
)

// VerseRecord represents one verse of the Bhagavad Gita corpus.
// Records are created once at ingestion and are immutable thereafter.
type VerseRecord struct {
	// Chapter is the chapter number (1-18, always positive).
	Chapter int

	// Verse is the verse number within the chapter (always positive).
	Verse int

	// Sanskrit is the original Sanskrit text.
	Sanskrit string

	// Hindi is the Hindi verse text and translation combined.
	Hindi string

	// English is the English verse text and translation combined.
	English string
}

// CompositeID returns the unique identifier "{chapter}.{verse}".
// It is unique across the corpus after deduplication.
func (v VerseRecord) CompositeID() string {
	return fmt.Sprintf("%d.%d", v.Chapter, v.Verse)
}

// EmbeddingText returns the deterministic concatenation of chapter, verse
// and all three language fields. It is used only for embedding and is
// never parsed back.
func (v VerseRecord) EmbeddingText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Chapter %d, Verse %d\n\n", v.Chapter, v.Verse)
	fmt.Fprintf(&b, "Sanskrit: %s\n", v.Sanskrit)
	fmt.Fprintf(&b, "Hindi: %s\n", v.Hindi)
	fmt.Fprintf(&b, "English: %s", v.English)
	return b.String()
}

// Metadata returns the metadata stored alongside the verse embedding.
func (v VerseRecord) Metadata() VerseMeta {
	return VerseMeta{
		Chapter: v.Chapter,
		Verse:   v.Verse,
		VerseID: v.CompositeID(),
	}
}

// EmbeddingInput returns the record in the form fed into the verse store
// build step.
func (v VerseRecord) EmbeddingInput() EmbeddingInput {
	return EmbeddingInput{
		ID:       v.CompositeID(),
		Text:     v.EmbeddingText(),
		Metadata: v.Metadata(),
	}
}

// VerseMeta is the metadata carried by every stored verse embedding.
type VerseMeta struct {
	// Chapter is the chapter number.
	Chapter int `json:"chapter"`

	// Verse is the verse number.
	Verse int `json:"verse"`

	// VerseID is the composite identifier "{chapter}.{verse}".
	VerseID string `json:"verse_id"`
}

// EmbeddingInput is the sole feed into the verse store build step.
type EmbeddingInput struct {
	// ID is the verse composite identifier.
	ID string

	// Text is the embedding text for the verse.
	Text string

	// Metadata is stored verbatim alongside the vector.
	Metadata VerseMeta
}
