package domain

// VerseMatch represents a single retrieval hit.
// Matches are constructed per query and never persisted.
type VerseMatch struct {
	// ID is the verse composite identifier.
	ID string

	// Text is the stored embedding text of the verse.
	Text string

	// Metadata carries the chapter/verse identity of the match.
	Metadata VerseMeta

	// Distance is the cosine distance (1 - cosine similarity).
	// Lower is more similar; conceptually in [0, 2].
	Distance float64
}

// SearchFilter is an optional exact-equality filter on verse metadata.
// Recognised keys are "chapter", "verse" and "verse_id".
type SearchFilter map[string]any

// Matches reports whether the given metadata satisfies every filter entry.
func (f SearchFilter) Matches(meta VerseMeta) bool {
	for key, want := range f {
		switch key {
		case "chapter":
			if !intEqual(want, meta.Chapter) {
				return false
			}
		case "verse":
			if !intEqual(want, meta.Verse) {
				return false
			}
		case "verse_id":
			s, ok := want.(string)
			if !ok || s != meta.VerseID {
				return false
			}
		default:
			// Unknown keys never match anything.
			return false
		}
	}
	return true
}

// intEqual compares a filter value against an int metadata field,
// tolerating the numeric types JSON and TOML decoders produce.
func intEqual(want any, have int) bool {
	switch v := want.(type) {
	case int:
		return v == have
	case int64:
		return int(v) == have
	case float64:
		return int(v) == have && v == float64(int(v))
	default:
		return false
	}
}

// CollectionStats is a read-only projection of the verse store's state.
type CollectionStats struct {
	// TotalVerses is the number of stored verse embeddings.
	TotalVerses int

	// CollectionName is the logical collection name.
	CollectionName string

	// StoragePath is the backing location ("memory" for the ephemeral store).
	StoragePath string
}

// BuildReport summarises a verse store build run.
type BuildReport struct {
	// Embedded is the number of verses embedded and inserted in this run.
	Embedded int

	// DuplicatesDropped is the number of inputs discarded because an
	// earlier input carried the same ID.
	DuplicatesDropped int

	// Skipped is true when the store was already populated and the build
	// was a no-op.
	Skipped bool

	// Total is the number of verses in the store after the run.
	Total int
}
