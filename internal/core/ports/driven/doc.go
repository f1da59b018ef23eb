// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - CorpusSource: Parses the raw verse data into VerseRecords
//   - VerseStore: Verse embedding persistence and similarity search
//   - EmbeddingService: Produces document and query vectors
//   - LLMService: Produces freeform generated text
//   - ConfigStore: Application configuration
//   - PromptStore: Persona, tone and policy prompt templates
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - JourneyStore: Conversation journal. Without it, no history is kept.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
