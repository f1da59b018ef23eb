package services

import (
	"github.com/drishti-labs/drishti-cli/internal/core/domain"
	"github.com/drishti-labs/drishti-cli/internal/core/ports/driving"
)

// Ensure BrowseService implements the interface.
var _ driving.BrowseService = (*BrowseService)(nil)

// chapterTable holds the static chapter metadata, indexed by chapter
// number. The Bhagavad Gita has exactly eighteen chapters.
var chapterTable = []driving.ChapterInfo{
	{Number: 1, Name: "Arjuna Vishada Yoga", Summary: "Arjuna's Dilemma"},
	{Number: 2, Name: "Sankhya Yoga", Summary: "Transcendental Knowledge"},
	{Number: 3, Name: "Karma Yoga", Summary: "Path of Action"},
	{Number: 4, Name: "Jnana Karma Sanyasa Yoga", Summary: "Knowledge and Renunciation"},
	{Number: 5, Name: "Karma Sanyasa Yoga", Summary: "Renunciation of Action"},
	{Number: 6, Name: "Dhyana Yoga", Summary: "Meditation"},
	{Number: 7, Name: "Jnana Vijnana Yoga", Summary: "Knowledge and Wisdom"},
	{Number: 8, Name: "Aksara Brahma Yoga", Summary: "Imperishable Brahman"},
	{Number: 9, Name: "Raja Vidya Yoga", Summary: "Royal Knowledge"},
	{Number: 10, Name: "Vibhuti Yoga", Summary: "Divine Glories"},
	{Number: 11, Name: "Vishvarupa Darshana Yoga", Summary: "Universal Form"},
	{Number: 12, Name: "Bhakti Yoga", Summary: "Path of Devotion"},
	{Number: 13, Name: "Kshetra Kshetrajna Vibhaga Yoga", Summary: "Field and Knower"},
	{Number: 14, Name: "Gunatraya Vibhaga Yoga", Summary: "Three Gunas"},
	{Number: 15, Name: "Purushottama Yoga", Summary: "Supreme Person"},
	{Number: 16, Name: "Daivasura Sampad Vibhaga Yoga", Summary: "Divine and Demonic"},
	{Number: 17, Name: "Shraddhatraya Vibhaga Yoga", Summary: "Three Types of Faith"},
	{Number: 18, Name: "Moksha Sanyasa Yoga", Summary: "Liberation and Renunciation"},
}

// themeTable maps recurring themes to the chapters that treat them.
var themeTable = []driving.ThemeInfo{
	{Name: "Karma Yoga", Chapters: []int{2, 3, 5, 18}},
	{Name: "Dharma", Chapters: []int{1, 2, 16}},
	{Name: "Bhakti", Chapters: []int{7, 9, 12, 18}},
	{Name: "Jnana", Chapters: []int{2, 4, 7, 13, 15}},
	{Name: "Detachment", Chapters: []int{2, 5, 6, 12}},
	{Name: "Self-Realization", Chapters: []int{6, 13, 15}},
	{Name: "Meditation", Chapters: []int{6, 8, 12}},
	{Name: "Universal Form", Chapters: []int{11}},
}

// BrowseService serves the chapter and theme browsing boundary over the
// loaded corpus.
type BrowseService struct {
	corpus *CorpusService
}

// NewBrowseService creates a new browse service.
func NewBrowseService(corpus *CorpusService) *BrowseService {
	return &BrowseService{corpus: corpus}
}

// Chapters returns metadata for all chapters in order.
func (s *BrowseService) Chapters() []driving.ChapterInfo {
	chapters := make([]driving.ChapterInfo, len(chapterTable))
	copy(chapters, chapterTable)
	return chapters
}

// Chapter returns metadata for one chapter.
func (s *BrowseService) Chapter(n int) (driving.ChapterInfo, error) {
	if n < 1 || n > len(chapterTable) {
		return driving.ChapterInfo{}, domain.ErrNotFound
	}
	return chapterTable[n-1], nil
}

// Verses returns all verses of a chapter in corpus order.
func (s *BrowseService) Verses(chapter int) ([]domain.VerseRecord, error) {
	return s.corpus.VersesForChapter(chapter)
}

// Verse returns a single verse; absence is (nil, nil).
func (s *BrowseService) Verse(chapter, verse int) (*domain.VerseRecord, error) {
	return s.corpus.Verse(chapter, verse)
}

// Themes returns the theme table.
func (s *BrowseService) Themes() []driving.ThemeInfo {
	themes := make([]driving.ThemeInfo, len(themeTable))
	copy(themes, themeTable)
	return themes
}

// VerseCount returns the total number of loaded verses.
func (s *BrowseService) VerseCount() (int, error) {
	return s.corpus.VerseCount()
}

// ChapterCount returns the number of distinct chapters in the corpus.
func (s *BrowseService) ChapterCount() (int, error) {
	return s.corpus.ChapterCount()
}
