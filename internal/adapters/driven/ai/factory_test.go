package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
)

func TestCreateEmbeddingService_Gemini(t *testing.T) {
	svc, err := CreateEmbeddingService(&domain.EmbeddingSettings{
		Provider: domain.AIProviderGemini,
		Model:    "text-embedding-004",
		APIKey:   "test-key",
	})

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, "text-embedding-004", svc.ModelName())
}

func TestCreateEmbeddingService_Ollama(t *testing.T) {
	svc, err := CreateEmbeddingService(&domain.EmbeddingSettings{
		Provider: domain.AIProviderOllama,
		Model:    "nomic-embed-text",
	})

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, "nomic-embed-text", svc.ModelName())
}

func TestCreateEmbeddingService_NotConfigured(t *testing.T) {
	// Gemini without an API key is not configured; nil is not an error.
	svc, err := CreateEmbeddingService(&domain.EmbeddingSettings{
		Provider: domain.AIProviderGemini,
	})

	require.NoError(t, err)
	assert.Nil(t, svc)
}

func TestCreateEmbeddingService_NilSettings(t *testing.T) {
	svc, err := CreateEmbeddingService(nil)

	require.NoError(t, err)
	assert.Nil(t, svc)
}

func TestCreateLLMService_Gemini(t *testing.T) {
	svc, err := CreateLLMService(&domain.LLMSettings{
		Provider: domain.AIProviderGemini,
		Model:    "gemini-2.5-pro",
		APIKey:   "test-key",
	})

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, "gemini-2.5-pro", svc.ModelName())
}

func TestCreateLLMService_Ollama(t *testing.T) {
	svc, err := CreateLLMService(&domain.LLMSettings{
		Provider: domain.AIProviderOllama,
		Model:    "llama3.2",
	})

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, "llama3.2", svc.ModelName())
}

func TestCreateLLMService_UnsupportedProvider(t *testing.T) {
	// An invalid provider fails IsConfigured and returns nil, nil.
	svc, err := CreateLLMService(&domain.LLMSettings{Provider: "mystery"})

	require.NoError(t, err)
	assert.Nil(t, svc)
}
