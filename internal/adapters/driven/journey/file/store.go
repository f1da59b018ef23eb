// Package file provides a JSON-file-backed journey store.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/drishti-labs/drishti-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.JourneyStore = (*Store)(nil)

// journeyFile is the on-disk layout.
type journeyFile struct {
	Entries    []driven.JourneyEntry   `json:"entries"`
	Favourites []driven.FavouriteVerse `json:"favourites"`
}

// Store records the conversation journey in a single JSON file.
// The whole file is rewritten on each append; journeys are small and the
// simple layout keeps the file hand-readable.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a journey store backed by the given file path.
// If path is empty, defaults to ~/.drishti/journey.json.
func NewStore(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".drishti", "journey.json")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating journey directory: %w", err)
	}

	return &Store{path: path}, nil
}

// Path returns the journey file path.
func (s *Store) Path() string {
	return s.path
}

// Record appends a conversation entry. A missing ID or timestamp is
// filled in.
func (s *Store) Record(_ context.Context, entry driven.JourneyEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	data, err := s.load()
	if err != nil {
		return err
	}
	data.Entries = append(data.Entries, entry)
	return s.save(data)
}

// RecordFavourite marks a verse as a favourite.
func (s *Store) RecordFavourite(_ context.Context, fav driven.FavouriteVerse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fav.AddedAt.IsZero() {
		fav.AddedAt = time.Now().UTC()
	}

	data, err := s.load()
	if err != nil {
		return err
	}

	// Favouriting the same verse twice keeps one entry.
	for _, existing := range data.Favourites {
		if existing.Chapter == fav.Chapter && existing.Verse == fav.Verse {
			return nil
		}
	}

	data.Favourites = append(data.Favourites, fav)
	return s.save(data)
}

// Recent returns up to limit entries, newest last.
func (s *Store) Recent(_ context.Context, limit int) ([]driven.JourneyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	entries := data.Entries
	if limit > 0 && limit < len(entries) {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// Favourites returns all favourite verses.
func (s *Store) Favourites(_ context.Context) ([]driven.FavouriteVerse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	return data.Favourites, nil
}

// Summary returns aggregate counts for the journey.
func (s *Store) Summary(_ context.Context) (driven.JourneySummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return driven.JourneySummary{}, err
	}

	summary := driven.JourneySummary{
		TotalConversations: len(data.Entries),
		TotalFavourites:    len(data.Favourites),
	}
	if len(data.Entries) > 0 {
		summary.FirstConversation = data.Entries[0].Timestamp
	}
	return summary, nil
}

// load reads the journey file, returning an empty journey when the file
// does not exist yet.
func (s *Store) load() (journeyFile, error) {
	var data journeyFile

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, nil
		}
		return data, fmt.Errorf("reading journey: %w", err)
	}

	if err := json.Unmarshal(raw, &data); err != nil {
		return journeyFile{}, fmt.Errorf("parsing journey: %w", err)
	}
	return data, nil
}

// save writes the journey file atomically.
func (s *Store) save(data journeyFile) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding journey: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0600); err != nil {
		return fmt.Errorf("writing journey: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing journey: %w", err)
	}
	return nil
}
