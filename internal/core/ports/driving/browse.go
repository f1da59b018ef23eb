package driving

import "github.com/drishti-labs/drishti-cli/internal/core/domain"

// BrowseService exposes the static chapter and theme tables together with
// corpus lookups for the browsing UI.
type BrowseService interface {
	// Chapters returns metadata for all eighteen chapters in order.
	Chapters() []ChapterInfo

	// Chapter returns metadata for one chapter, or domain.ErrNotFound.
	Chapter(n int) (ChapterInfo, error)

	// Verses returns all verses of a chapter in verse order.
	Verses(chapter int) ([]domain.VerseRecord, error)

	// Verse returns a single verse, or nil when it does not exist.
	// Absence is not an error.
	Verse(chapter, verse int) (*domain.VerseRecord, error)

	// Themes returns the theme-to-chapters table.
	Themes() []ThemeInfo

	// VerseCount returns the total number of loaded verses.
	VerseCount() (int, error)

	// ChapterCount returns the number of distinct chapters in the corpus.
	ChapterCount() (int, error)
}

// ChapterInfo describes one chapter of the Bhagavad Gita.
type ChapterInfo struct {
	// Number is the chapter number (1-18).
	Number int

	// Name is the Sanskrit chapter name.
	Name string

	// Summary is a short English synopsis.
	Summary string
}

// ThemeInfo maps a recurring theme to the chapters that treat it.
type ThemeInfo struct {
	// Name is the theme name.
	Name string

	// Chapters lists the chapters covering the theme.
	Chapters []int
}
