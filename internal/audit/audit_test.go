package audit

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuditor(t *testing.T) *Auditor {
	t.Helper()
	a := NewAuditor(filepath.Join(t.TempDir(), "audit.db"))
	t.Cleanup(a.Close)
	return a
}

func TestAuditor_LogAndGetLogs(t *testing.T) {
	a := newTestAuditor(t)

	a.Log("id-1", "/analyze", "", "HIGH", 17, nil)
	a.Log("id-2", "/analyze-file", "contract.pdf", "LOW", 5, nil)

	entries, err := a.GetLogs(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byID := make(map[string]Entry)
	for _, e := range entries {
		byID[e.AnalysisID] = e
	}
	assert.Equal(t, "/analyze", byID["id-1"].Endpoint)
	assert.Equal(t, "HIGH", byID["id-1"].RiskLevel)
	assert.Equal(t, 17, byID["id-1"].RiskScore)
	assert.Empty(t, byID["id-1"].Error)
	assert.Equal(t, "contract.pdf", byID["id-2"].Filename)
	assert.False(t, byID["id-2"].Timestamp.IsZero())
}

func TestAuditor_LogError(t *testing.T) {
	a := newTestAuditor(t)

	a.Log("id-3", "/analyze-file", "bad.bin", "", 0, errors.New("Unsupported file type"))

	entries, err := a.GetLogs(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Unsupported file type", entries[0].Error)
}

func TestAuditor_Limit(t *testing.T) {
	a := newTestAuditor(t)

	for i := 0; i < 5; i++ {
		a.Log("id", "/analyze", "", "MINIMAL", 0, nil)
	}

	entries, err := a.GetLogs(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestAuditor_NilDBIsSafe(t *testing.T) {
	a := &Auditor{}

	a.Log("id", "/analyze", "", "LOW", 5, nil)
	entries, err := a.GetLogs(10)

	assert.NoError(t, err)
	assert.Nil(t, entries)
	a.Close()
}
