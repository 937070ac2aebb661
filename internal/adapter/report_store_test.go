package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/stdinfuzz/internal/model"
)

func failedReport(id string, started time.Time) m.Report {
	return m.Report{
		ID:       id,
		Command:  "./target.sh",
		Dir:      "/work",
		Seed:     m.DefaultSeed,
		RandSeed: 42,
		MaxTests: 150,
		Total:    130,
		Executed: 3,
		Verdict:  m.VerdictFailed,
		Failure: &m.Result{
			Number: 3,
			Mutation: m.Mutation{
				ID:        3,
				Position:  0,
				PoolIndex: 2,
				Category:  m.CategorySymbol,
				Candidate: "%",
				Input:     `%html a="value">...</html>`,
			},
			Outcome: m.Outcome{
				Input:    `%html a="value">...</html>`,
				Stdout:   "parse error\n",
				Output:   "parse error\n",
				ExitCode: 2,
			},
			Status: m.Failed,
		},
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
	}
}

func TestLocalReportStore_SaveAndLoadLatest(t *testing.T) {
	t.Parallel()

	dir := m.Path(filepath.Join(t.TempDir(), "reports"))
	rs := NewReportStore()
	started := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	report := failedReport("abc", started)

	path, err := rs.SaveReport(dir, report)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(path), "-abc.yaml"), "unexpected path %s", path)

	_, err = os.Stat(string(path))
	require.NoError(t, err)

	loaded, err := rs.LoadLatest(dir)
	require.NoError(t, err)

	assert.Equal(t, report.ID, loaded.ID)
	assert.Equal(t, report.Verdict, loaded.Verdict)
	assert.True(t, report.StartedAt.Equal(loaded.StartedAt))
	require.NotNil(t, loaded.Failure)
	assert.Equal(t, report.Failure.Outcome, loaded.Failure.Outcome)
	assert.Equal(t, report.Failure.Mutation, loaded.Failure.Mutation)
	assert.Equal(t, 2, loaded.ExitCode())
}

func TestLocalReportStore_WritesReadableYAML(t *testing.T) {
	t.Parallel()

	dir := m.Path(t.TempDir())
	rs := NewReportStore()

	path, err := rs.SaveReport(dir, failedReport("yaml", time.Now()))
	require.NoError(t, err)

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))

	assert.Equal(t, "failed", raw["verdict"])
	assert.Equal(t, "./target.sh", raw["command"])
	assert.Contains(t, raw, "failure")
}

func TestLocalReportStore_LatestIsOverwritten(t *testing.T) {
	t.Parallel()

	dir := m.Path(t.TempDir())
	rs := NewReportStore()
	started := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := rs.SaveReport(dir, failedReport("first", started))
	require.NoError(t, err)

	second := failedReport("second", started.Add(time.Minute))
	second.Verdict = m.VerdictPassed
	second.Failure = nil

	_, err = rs.SaveReport(dir, second)
	require.NoError(t, err)

	loaded, err := rs.LoadLatest(dir)
	require.NoError(t, err)
	assert.Equal(t, "second", loaded.ID)
	assert.Nil(t, loaded.Failure)

	entries, err := os.ReadDir(string(dir))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Contains(t, entries[0].Name(), "first")
	assert.Contains(t, entries[1].Name(), "second")
	assert.Equal(t, latestReportName, entries[2].Name())
}

func TestLocalReportStore_LoadLatest_Empty(t *testing.T) {
	t.Parallel()

	rs := NewReportStore()

	_, err := rs.LoadLatest(m.Path(t.TempDir()))
	require.ErrorIs(t, err, ErrNoReports)
}

func TestLocalReportStore_SaveReport_EmptyDir(t *testing.T) {
	t.Parallel()

	rs := NewReportStore()

	_, err := rs.SaveReport("", failedReport("x", time.Now()))
	require.Error(t, err)
}

func TestLocalReportStore_LoadLatest_Corrupt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, latestReportName), []byte("verdict: [unterminated"), 0o600))

	rs := NewReportStore()

	_, err := rs.LoadLatest(m.Path(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
