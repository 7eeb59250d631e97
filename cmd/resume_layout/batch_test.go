package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-layout/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetBatchFlags() {
	batchDir = ""
	batchOutDir = "."
	batchTemplate = ""
	batchFormat = config.FormatTree
	batchConcurrency = 4
	batchTimeout = 0
}

func TestRunBatch_RendersEveryFile(t *testing.T) {
	resetBatchFlags()
	inDir := t.TempDir()
	outDir := t.TempDir()

	for i := 0; i < 3; i++ {
		doc := fmt.Sprintf(`{
			"title": "Candidate %d",
			"personalInfo": {"fullName": "Candidate %d"},
			"sections": [{"id": "s1", "type": "skills", "title": "Skills", "items": [{"id": "i1", "title": "Go"}]}]
		}`, i, i)
		path := filepath.Join(inDir, fmt.Sprintf("resume%d.json", i))
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	}
	// Non-JSON files in the directory are skipped.
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "notes.txt"), []byte("ignore"), 0644))

	batchDir = inDir
	batchOutDir = outDir
	batchFormat = config.FormatTree

	require.NoError(t, runBatch(nil, nil))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	for _, entry := range entries {
		assert.Contains(t, entry.Name(), "Candidate_")
		assert.Contains(t, entry.Name(), ".tree.json")
	}
}

func TestRunBatch_NoInputs(t *testing.T) {
	resetBatchFlags()
	assert.Error(t, runBatch(nil, nil))
}

func TestRunBatch_FailsOnInvalidDocument(t *testing.T) {
	resetBatchFlags()
	inDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "bad.json"), []byte(`{"sections": 42}`), 0644))

	batchDir = inDir
	batchOutDir = t.TempDir()

	assert.Error(t, runBatch(nil, nil))
}
