package domain

// HarmCategory classifies the kind of harmful intent detected in a query.
type HarmCategory string

// Harm categories, in detection priority order.
const (
	// HarmNone indicates no harmful intent was detected.
	HarmNone HarmCategory = "none"

	// HarmViolence indicates the query seeks justification for violence.
	HarmViolence HarmCategory = "violence"

	// HarmDiscrimination indicates the query seeks justification for
	// discrimination.
	HarmDiscrimination HarmCategory = "discrimination"
)

// Verdict is the outcome of safety/intent classification for one query.
// Verdicts are computed per query and never persisted.
type Verdict struct {
	// IsSpiritual is true when the query is in-domain.
	IsSpiritual bool

	// IsHarmful is true when the query matched a harm keyword set.
	IsHarmful bool

	// Category is the harm category, HarmNone when IsHarmful is false.
	Category HarmCategory

	// Redirect is the fixed policy text to return instead of generating,
	// empty when IsHarmful is false.
	Redirect string
}

// Keyword tables for the policy gates. These are deliberately coarse
// lowercase substring matches, a documented design choice traded for zero
// latency and zero cost, not NLP classification.
var (
	// OffTopicKeywords mark a query as out of domain.
	OffTopicKeywords = []string{
		"weather", "joke", "recipe", "sports", "politics",
		"hack", "cheat", "stock", "pizza", "movie",
	}

	// ViolenceKeywords mark a query as seeking justification for violence.
	ViolenceKeywords = []string{
		"justify violence", "kill", "harm others", "attack", "destroy", "revenge",
	}

	// DiscriminationKeywords mark a query as seeking justification for
	// discrimination.
	DiscriminationKeywords = []string{
		"justify caste", "superiority", "inferior", "discriminate",
	}
)

// Fixed policy texts returned by the gates. These terminate the pipeline
// as normal, successful outcomes, not errors.
const (
	// DomainRedirect is returned for off-topic queries.
	DomainRedirect = `This sacred knowledge is for divine purpose. सत्यमेव जयते (Satyameva Jayate).

As a warrior of Krishna, ask topics to conquer the world and self.

I'm here to guide you through the Bhagavad Gita's wisdom on:
- Life's purpose and meaning
- Overcoming challenges and obstacles
- Spiritual growth and self-realization
- Finding peace and clarity
- Understanding dharma and karma

What spiritual question can I help you with today?`

	// ViolenceRedirect is returned when a query matches the violence set.
	ViolenceRedirect = `🙏 The Bhagavad Gita teaches clarity, not conquest. While spoken on a battlefield,
its message is about inner warfare - conquering the ego, anger, and ignorance, not harming others.

Krishna teaches ahimsa (non-violence) and compassion:
"अहिंसा सत्यमक्रोधः" (Ahimsa, truth, absence of anger - BG 16.2)

Let's talk about duty with compassion, not violence with justification.

How can I help you understand dharma in a way that brings peace?`

	// DiscriminationRedirect is returned when a query matches the
	// discrimination set.
	DiscriminationRedirect = `🙏 The Gita teaches equality of the soul. All beings carry the same divine essence.

"विद्याविनयसम्पन्ने ब्राह्मणे गवि हस्तिनि"
(The wise see the same Self in all beings - BG 5.18)

The Gita speaks of guna (qualities) and karma (actions), not birth-based hierarchy.

Let's explore the Gita's teachings on universal love and equality.`
)
