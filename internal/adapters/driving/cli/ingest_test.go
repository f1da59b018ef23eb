package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drishti-labs/drishti-cli/internal/core/domain"
)

func TestIngestCmd_Use(t *testing.T) {
	assert.Equal(t, "ingest", ingestCmd.Use)
}

func TestIngestCmd_ReportsEmbedded(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Embedded 4 verses")
	assert.False(t, ingestService.(*mockIngestService).lastForce)
}

func TestIngestCmd_ForceFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest", "--force"})
	defer func() {
		rootCmd.SetArgs(nil)
		ingestForce = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.True(t, ingestService.(*mockIngestService).lastForce)
}

func TestIngestCmd_SkippedReport(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	ingestService.(*mockIngestService).report = domain.BuildReport{Skipped: true, Total: 700}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "already contains 700 verses")
	assert.Contains(t, buf.String(), "--force")
}

func TestIngestCmd_DuplicatesReported(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	ingestService.(*mockIngestService).report = domain.BuildReport{Embedded: 3, DuplicatesDropped: 1, Total: 3}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Dropped 1 duplicate")
}

func TestIngestCmd_PropagatesError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	ingestService.(*mockIngestService).err = errors.New("corpus missing")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "corpus missing")
}
