package domain

const unknownDescription = "Unknown"

// Tone selects the instruction block used when generating guidance.
type Tone string

// Available response tones.
const (
	// ToneSpiritual uses mystical, poetic language.
	ToneSpiritual Tone = "spiritual"

	// ToneScholarly uses academic Vedanta terminology.
	ToneScholarly Tone = "scholarly"

	// ToneModern uses contemporary, conversational language.
	ToneModern Tone = "modern"

	// ToneDevotional emphasises bhakti and surrender.
	ToneDevotional Tone = "devotional"
)

// DefaultTone is used when the caller supplies an unknown tone.
const DefaultTone = ToneModern

// IsValid returns true if the tone is recognised.
func (t Tone) IsValid() bool {
	switch t {
	case ToneSpiritual, ToneScholarly, ToneModern, ToneDevotional:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t Tone) String() string {
	return string(t)
}

// Description returns a human-readable description of the tone.
func (t Tone) Description() string {
	switch t {
	case ToneSpiritual:
		return "Spiritual & Poetic"
	case ToneScholarly:
		return "Scholarly"
	case ToneModern:
		return "Modern & Relatable"
	case ToneDevotional:
		return "Devotional"
	default:
		return unknownDescription
	}
}

// ParseTone returns the tone for s, falling back to DefaultTone when s is
// not a member of the tone set.
func ParseTone(s string) Tone {
	t := Tone(s)
	if !t.IsValid() {
		return DefaultTone
	}
	return t
}

// Language selects the response language.
type Language string

// Available response languages.
const (
	// LanguageHindi responds in Hindi.
	LanguageHindi Language = "hindi"

	// LanguageEnglish responds in English.
	LanguageEnglish Language = "english"

	// LanguageSanskrit responds in Sanskrit.
	LanguageSanskrit Language = "sanskrit"
)

// DefaultLanguage is used when the caller supplies an unknown language.
const DefaultLanguage = LanguageEnglish

// IsValid returns true if the language is recognised.
func (l Language) IsValid() bool {
	switch l {
	case LanguageHindi, LanguageEnglish, LanguageSanskrit:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l Language) String() string {
	return string(l)
}

// ParseLanguage returns the language for s, falling back to
// DefaultLanguage when s is not a member of the language set.
func ParseLanguage(s string) Language {
	l := Language(s)
	if !l.IsValid() {
		return DefaultLanguage
	}
	return l
}

// AskMode selects between corpus-grounded and unconditioned generation.
type AskMode string

// Available ask modes.
const (
	// ModeGita grounds the response on retrieved verses.
	ModeGita AskMode = "gita"

	// ModeUniversal skips retrieval and answers from the persona prompt
	// alone.
	ModeUniversal AskMode = "universal"
)

// DefaultMode is used when the caller supplies an unknown mode.
const DefaultMode = ModeGita

// IsValid returns true if the mode is recognised.
func (m AskMode) IsValid() bool {
	switch m {
	case ModeGita, ModeUniversal:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m AskMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m AskMode) Description() string {
	switch m {
	case ModeGita:
		return "Bhagavad Gita Mode (grounded on retrieved verses)"
	case ModeUniversal:
		return "Universal Mode (persona only, no retrieval)"
	default:
		return unknownDescription
	}
}

// ParseMode returns the mode for s, falling back to DefaultMode when s is
// not a member of the mode set.
func ParseMode(s string) AskMode {
	m := AskMode(s)
	if !m.IsValid() {
		return DefaultMode
	}
	return m
}
