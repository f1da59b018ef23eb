package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	store, err := NewConfigStore("")

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(home, ".drishti", "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("ai.provider", "gemini")
	require.NoError(t, err)

	val, ok := store.Get("ai.provider")
	assert.True(t, ok)
	assert.Equal(t, "gemini", val)
}

func TestConfigStore_GetString(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("guidance.language", "hindi")
	require.NoError(t, err)

	assert.Equal(t, "hindi", store.GetString("guidance.language"))

	// Non-existent and wrong-type keys return the zero value
	assert.Equal(t, "", store.GetString("nonexistent"))

	err = store.Set("retrieval.top_k", 5)
	require.NoError(t, err)
	assert.Equal(t, "", store.GetString("retrieval.top_k"))
}

func TestConfigStore_GetInt(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("retrieval.top_k", 5)
	require.NoError(t, err)

	assert.Equal(t, 5, store.GetInt("retrieval.top_k"))
	assert.Equal(t, 0, store.GetInt("nonexistent"))

	err = store.Set("guidance.tone", "modern")
	require.NoError(t, err)
	assert.Equal(t, 0, store.GetInt("guidance.tone"))
}

func TestConfigStore_GetInt_Int64FromTOML(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	// TOML unmarshal produces int64
	store.mu.Lock()
	store.data["retrieval.top_k"] = int64(7)
	store.mu.Unlock()

	assert.Equal(t, 7, store.GetInt("retrieval.top_k"))
}

func TestConfigStore_GetFloat(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("guidance.temperature", 0.7)
	require.NoError(t, err)

	assert.InDelta(t, 0.7, store.GetFloat("guidance.temperature"), 0.0001)
	assert.Equal(t, 0.0, store.GetFloat("nonexistent"))

	// Integer values are promoted to float
	store.mu.Lock()
	store.data["int.value"] = int64(2)
	store.mu.Unlock()
	assert.InDelta(t, 2.0, store.GetFloat("int.value"), 0.0001)

	// Wrong type returns zero
	err = store.Set("ai.provider", "ollama")
	require.NoError(t, err)
	assert.Equal(t, 0.0, store.GetFloat("ai.provider"))
}

func TestConfigStore_GetBool(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("verbose", true)
	require.NoError(t, err)
	assert.True(t, store.GetBool("verbose"))

	err = store.Set("universal", false)
	require.NoError(t, err)
	assert.False(t, store.GetBool("universal"))

	assert.False(t, store.GetBool("nonexistent"))

	// Wrong type returns false
	err = store.Set("stringy", "true")
	require.NoError(t, err)
	assert.False(t, store.GetBool("stringy"))
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store1.Set("ai.provider", "gemini"))
	require.NoError(t, store1.Set("retrieval.top_k", 5))
	require.NoError(t, store1.Set("verbose", true))
	require.NoError(t, store1.Set("guidance.temperature", 0.7))

	// New store instance loads from file
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "gemini", store2.GetString("ai.provider"))
	assert.Equal(t, 5, store2.GetInt("retrieval.top_k"))
	assert.True(t, store2.GetBool("verbose"))
	assert.InDelta(t, 0.7, store2.GetFloat("guidance.temperature"), 0.0001)
}

func TestConfigStore_Load_NonExistent(t *testing.T) {
	tmpDir := t.TempDir()

	// No config file exists yet
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, ok := store.Get("any_key")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_SetPersistsImmediately(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("guidance.tone", "devotional")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(tmpDir, "config.toml"))
	assert.NoError(t, err)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("test", "value")
	require.NoError(t, err)

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()

	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, ok := store.Get("any_key")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_OverwriteValue(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("guidance.tone", "spiritual"))
	assert.Equal(t, "spiritual", store.GetString("guidance.tone"))

	require.NoError(t, store.Set("guidance.tone", "scholarly"))
	assert.Equal(t, "scholarly", store.GetString("guidance.tone"))
}

func TestConfigStore_NestedSectionsFlattened(t *testing.T) {
	tmpDir := t.TempDir()

	// TOML sections should surface as dot-notation keys
	content := []byte("[ai]\nprovider = \"ollama\"\n\n[retrieval]\ntop_k = 5\n")
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), content, 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "ollama", store.GetString("ai.provider"))
	assert.Equal(t, 5, store.GetInt("retrieval.top_k"))
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()

	corruptedContent := []byte("this is not valid TOML {{{[[")
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), corruptedContent, 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	// A path under /dev/null cannot be created
	invalidPath := "/dev/null/cannot/create/dirs"

	store, err := NewConfigStore(invalidPath)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Concurrency(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetString(key)
			_, _ = store.Get(key)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
