package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"demoqa_automation/domain/entities"
	"demoqa_automation/domain/interfaces"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for report formats other than json and yaml
var ErrUnsupportedFormat = errors.New("unsupported report format")

const reportTimeLayout = "20060102-150405"

type reportStore struct {
	dir    string
	format string
	now    func() time.Time
}

// NewReportStore - creates a store writing reports of format ("json" or "yaml") into dir
func NewReportStore(dir, format string) (interfaces.ReportStorage, error) {
	format = strings.ToLower(format)
	if _, err := extension(format); err != nil {
		return nil, err
	}
	return &reportStore{
		dir:    dir,
		format: format,
		now:    time.Now,
	}, nil
}

// Save - writes the report to <dir>/report-<timestamp>.<format>
func (s *reportStore) Save(report *entities.Report) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	ext, _ := extension(s.format)
	stamp := report.StartedAt
	if stamp.IsZero() {
		stamp = s.now()
	}
	path := filepath.Join(s.dir, "report-"+stamp.UTC().Format(reportTimeLayout)+ext)

	data, err := encode(s.format, report)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// Load - reads a report, choosing the decoder from the file extension
func (s *reportStore) Load(path string) (*entities.Report, error) {
	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = "json"
	case ".yaml", ".yml":
		format = "yaml"
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	var report entities.Report
	if format == "json" {
		err = json.Unmarshal(data, &report)
	} else {
		err = yaml.Unmarshal(data, &report)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", path, err)
	}
	return &report, nil
}

func extension(format string) (string, error) {
	switch format {
	case "json":
		return ".json", nil
	case "yaml":
		return ".yaml", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func encode(format string, report *entities.Report) ([]byte, error) {
	if format == "yaml" {
		return yaml.Marshal(report)
	}
	return json.MarshalIndent(report, "", "  ")
}
