package driven

import "github.com/drishti-labs/drishti-cli/internal/core/domain"

// CorpusSource parses the raw tabular verse data into VerseRecords.
// Load is a pure transform: it has no side effects and may be called
// repeatedly.
type CorpusSource interface {
	// Load parses the backing data into an ordered sequence of verse
	// records. It fails with domain.ErrSourceNotFound when the backing
	// data is absent and domain.ErrMalformedSchema when required columns
	// are missing or a verse locator cannot be parsed.
	Load() ([]domain.VerseRecord, error)

	// Path returns the location of the backing data, for diagnostics.
	Path() string
}
