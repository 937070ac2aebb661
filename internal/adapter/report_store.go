package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/stdinfuzz/internal/model"
)

const (
	reportExt        = ".yaml"
	latestReportName = "latest" + reportExt
)

// ErrNoReports is returned when a reports directory holds no run report.
var ErrNoReports = errors.New("no reports found")

// ReportStore persists and retrieves run reports.
type ReportStore interface {
	// SaveReport writes report into dir and marks it as the latest one.
	SaveReport(dir m.Path, report m.Report) (m.Path, error)
	// LoadLatest returns the most recently saved report in dir.
	LoadLatest(dir m.Path) (m.Report, error)
}

// LocalReportStore keeps one YAML file per run plus a copy of the latest run.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveReport implements ReportStore.
func (rs *LocalReportStore) SaveReport(dir m.Path, report m.Report) (m.Path, error) {
	if dir == "" {
		return "", fmt.Errorf("reports directory is empty")
	}

	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	path := filepath.Join(string(dir), reportFileName(report))
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", path, err)
	}

	latest := filepath.Join(string(dir), latestReportName)
	if err := atomic.WriteFile(latest, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", latest, err)
	}

	return m.Path(path), nil
}

// LoadLatest implements ReportStore.
func (rs *LocalReportStore) LoadLatest(dir m.Path) (m.Report, error) {
	path := filepath.Join(string(dir), latestReportName)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return m.Report{}, fmt.Errorf("%w in %s", ErrNoReports, dir)
	}

	if err != nil {
		return m.Report{}, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("failed to decode report %s: %w", path, err)
	}

	return report, nil
}

// reportFileName sorts chronologically: start time first, then the run id.
func reportFileName(report m.Report) string {
	stamp := report.StartedAt.UTC().Format("20060102T150405.000000000Z")

	id := report.ID
	if id == "" {
		id = "run"
	}

	return stamp + "-" + id + reportExt
}
