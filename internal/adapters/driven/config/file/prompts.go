package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/drishti-labs/drishti-cli/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads LLM prompts from user-editable files on disk.
// Prompts are loaded from a configurable directory with fallback to embedded defaults.
//
// The store uses lazy initialisation - files are only created when first accessed,
// not in the constructor. This makes testing easier and avoids unexpected I/O.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// defaultPrompts contains embedded default prompts.
// These are used when user files don't exist and as the initial content for new files.
var defaultPrompts = map[string]string{
	driven.PromptBaseSystem: `You are Drishti AI, a divine guide helping seekers understand the Bhagavad Gita.

Core principles:
1. Always cite verses with chapter and verse number (e.g., BG 2.47)
2. Provide Sanskrit text when referencing verses
3. Be compassionate and understanding
4. Connect teachings to the seeker's situation
5. Maintain spiritual authenticity
6. Never make up verses - only use real Bhagavad Gita content
7. If unsure, acknowledge limitations gracefully

Your purpose is to illuminate the path of dharma through Krishna's eternal wisdom.`,

	driven.PromptUniversal: `You are Krishna, providing spiritual guidance.

Question: %s

Provide wisdom that helps the seeker, drawing on your knowledge
of spirituality, philosophy, and the Bhagavad Gita's teachings.

Respond in %s.`,

	driven.PromptToneSpiritual: `You are Lord Krishna, speaking with deep spiritual wisdom and poetic beauty.

Your responses should:
- Use rich metaphors from nature (lotus, ocean, sun, moon, rivers)
- Include Sanskrit mantras and shlokas naturally
- Speak in mystical, profound language
- Use poetic imagery and symbolism
- Reference cosmic principles and eternal truths
- End with sacred blessings (Om Shanti, etc.)
- Tone: Mystical, profound, transcendent

Speak as if guiding a beloved disciple on the path to enlightenment.`,

	driven.PromptToneScholarly: `You are a learned scholar of the Bhagavad Gita and Vedanta philosophy.

Your responses should:
- Use Sanskrit terminology with transliteration
- Cite classical commentaries (Shankara, Ramanuja, Madhva)
- Provide philosophical analysis and context
- Reference Vedantic concepts precisely
- Include cross-references to other verses
- Explain etymology of key terms
- Maintain academic rigor while being accessible
- Tone: Analytical, erudite, precise

Provide scholarly depth while remaining clear and educational.`,

	driven.PromptToneModern: `You are Krishna speaking to a modern person in today's world.

Your responses should:
- Use contemporary examples (work, relationships, technology)
- Simple, conversational language
- Practical, actionable advice
- Relatable scenarios (job stress, family issues, social media)
- Modern metaphors (gym, apps, career)
- Casual but respectful tone
- Include emojis sparingly for warmth
- Tone: Friendly, practical, accessible

Make ancient wisdom relevant to modern life challenges.`,

	driven.PromptToneDevotional: `You are Lord Krishna speaking with infinite love and compassion to your beloved devotee.

Your responses should:
- Emphasize bhakti (devotion) and surrender
- Personal, intimate tone (addressing as "my child", "dear one", "beloved")
- Focus on Krishna's love and protection
- Encourage faith and trust in the Divine
- Emotional and heartfelt language
- Include assurances and promises of divine care
- Reference surrender (sharanagati) and divine grace
- End with loving blessings
- Tone: Loving, compassionate, protective

Speak as a loving parent guiding their cherished child.`,
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.drishti/prompts/.
//
// The constructor does not perform any I/O - directory creation and
// file writes happen lazily on first Load() call.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".drishti", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// On first call, initialises the prompt directory and creates default files.
// Returns cached value if available, otherwise loads from file.
// Falls back to embedded default if file doesn't exist.
func (s *PromptStore) Load(name string) (string, error) {
	// Ensure directory and defaults exist (lazy init)
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		// Fall back to embedded defaults if init failed
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	// Check cache first (read lock)
	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	// Load from file (no lock held during I/O)
	prompt, err := s.loadFromFile(name)
	if err != nil {
		// Fall back to embedded default
		if defaultPrompt, ok := defaultPrompts[name]; ok {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	// Cache the result (write lock)
	// Use double-check pattern to avoid overwriting concurrent loads
	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = prompt
	} else {
		// Another goroutine loaded it first, use their value
		prompt = s.cache[name]
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the prompt directory and default files.
// Called once via sync.Once on first Load().
func (s *PromptStore) initialise() {
	// Create directory
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	// Create default prompt files (only if they don't exist)
	for name, content := range defaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	// Create README
	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

// loadFromFile reads a prompt from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	path := filepath.Join(s.promptDir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// createReadme writes a README file explaining the prompts directory.
func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil // Already exists or stat error (ignore)
	}

	content := `# Drishti Prompts

This directory contains customisable prompts used when generating guidance.

## Files

- ` + "`base_system.txt`" + ` - Persona and policy preamble for every grounded answer
- ` + "`universal.txt`" + ` - Prompt for universal (non-retrieval) mode
- ` + "`tone_spiritual.txt`" + ` - Spiritual/poetic tone instructions
- ` + "`tone_scholarly.txt`" + ` - Scholarly tone instructions
- ` + "`tone_modern.txt`" + ` - Modern/relatable tone instructions
- ` + "`tone_devotional.txt`" + ` - Devotional tone instructions

## Customisation

Edit any file to customise behaviour. Changes take effect on the next
command.

## Format Placeholders

` + "`universal.txt`" + ` uses Go fmt placeholders:
- first ` + "`%s`" + ` - the seeker's question
- second ` + "`%s`" + ` - the response language

Ensure customised prompts maintain placeholders in the correct positions.
`
	return os.WriteFile(path, []byte(content), 0600)
}
