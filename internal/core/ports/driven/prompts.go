package driven

// PromptStore provides access to the persona and tone prompt templates.
// Implementations may load prompts from user-editable files, embed them in
// the binary, or both.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// Implementations fall back to an embedded default when a user file
	// is missing or unreadable.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	// Useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptBaseSystem is the fixed persona/policy preamble prepended to
	// every grounded prompt. No format placeholders.
	PromptBaseSystem = "base_system"

	// PromptUniversal is the persona prompt for universal mode. The
	// template expects %s (query) and %s (language) placeholders.
	PromptUniversal = "universal"

	// Tone instruction blocks, one per member of the tone set.
	// None of them has format placeholders.
	PromptToneSpiritual  = "tone_spiritual"
	PromptToneScholarly  = "tone_scholarly"
	PromptToneModern     = "tone_modern"
	PromptToneDevotional = "tone_devotional"
)
