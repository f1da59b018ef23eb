// Package csv provides a corpus source adapter reading the tabular
// Bhagavad Gita dataset.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CorpusSource = (*Source)(nil)

// locatorPattern parses the combined chapter/verse locator column,
// e.g. "Chapter 2, Verse 47".
var locatorPattern = regexp.MustCompile(`Chapter (\d+), Verse (\d+)`)

// Column names recognised in the source file. The locator column is
// required; per-language verse and translation columns are optional but
// at least one language must be present.
const (
	colLocator            = "verse_number"
	colSanskrit           = "verse_in_sanskrit"
	colVerseHindi         = "verse_in_hindi"
	colTranslationHindi   = "translation_in_hindi"
	colVerseEnglish       = "verse_in_english"
	colTranslationEnglish = "translation_in_english"
)

// Source reads verse records from a CSV file.
type Source struct {
	path string
}

// NewSource creates a new CSV corpus source for the given file path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path returns the backing file path.
func (s *Source) Path() string {
	return s.path
}

// Load parses the file into verse records, in file order.
// Per-language verse text and translation columns are concatenated
// (verse first, then translation, space-separated) into one working
// field per language.
func (s *Source) Load() ([]domain.VerseRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, s.path)
		}
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSchema, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty file", domain.ErrMalformedSchema)
	}

	cols := indexColumns(rows[0])
	if err := validateSchema(cols); err != nil {
		return nil, err
	}

	verses := make([]domain.VerseRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		chapter, verse, err := parseLocator(cell(row, cols, colLocator))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", domain.ErrMalformedSchema, i+2, err)
		}

		verses = append(verses, domain.VerseRecord{
			Chapter:  chapter,
			Verse:    verse,
			Sanskrit: cell(row, cols, colSanskrit),
			Hindi:    joinFields(cell(row, cols, colVerseHindi), cell(row, cols, colTranslationHindi)),
			English:  joinFields(cell(row, cols, colVerseEnglish), cell(row, cols, colTranslationEnglish)),
		})
	}
	return verses, nil
}

// indexColumns maps header names to their positions.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

// validateSchema requires the locator column and at least one language
// column.
func validateSchema(cols map[string]int) error {
	if _, ok := cols[colLocator]; !ok {
		return fmt.Errorf("%w: missing column %q", domain.ErrMalformedSchema, colLocator)
	}
	for _, name := range []string{colSanskrit, colVerseHindi, colTranslationHindi, colVerseEnglish, colTranslationEnglish} {
		if _, ok := cols[name]; ok {
			return nil
		}
	}
	return fmt.Errorf("%w: no language columns present", domain.ErrMalformedSchema)
}

// parseLocator extracts the chapter and verse numbers from the combined
// locator field.
func parseLocator(locator string) (int, int, error) {
	m := locatorPattern.FindStringSubmatch(locator)
	if m == nil {
		return 0, 0, fmt.Errorf("unparseable locator %q", locator)
	}
	chapter, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, fmt.Errorf("chapter in %q: %w", locator, err)
	}
	verse, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, fmt.Errorf("verse in %q: %w", locator, err)
	}
	if chapter < 1 || verse < 1 {
		return 0, 0, fmt.Errorf("non-positive locator %q", locator)
	}
	return chapter, verse, nil
}

// cell returns the named column of a row, or "" when the column is
// absent or the row is short.
func cell(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// joinFields concatenates verse text and translation, dropping empty
// parts.
func joinFields(verse, translation string) string {
	switch {
	case verse == "":
		return translation
	case translation == "":
		return verse
	default:
		return verse + " " + translation
	}
}
