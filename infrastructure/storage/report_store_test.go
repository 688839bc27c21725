package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"demoqa_automation/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *entities.Report {
	started := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &entities.Report{
		Suite:      "demoqa",
		BaseURL:    "https://demoqa.com",
		Browser:    "chromium",
		StartedAt:  started,
		FinishedAt: started.Add(42 * time.Second),
		Tests: []*entities.TestResult{
			{
				ID:       "t1",
				Name:     "should be able to delete webtable record",
				Tags:     []string{"@elements", "@webtables", "@TC05"},
				Status:   entities.StepStatusPassed,
				Duration: 3 * time.Second,
				Steps: []*entities.StepResult{
					{
						ID:         "s1",
						Title:      `WHEN User deletes "a.b01@autotest.com" record from the webtable`,
						Status:     entities.StepStatusPassed,
						StartedAt:  started,
						FinishedAt: started.Add(time.Second),
						Duration:   time.Second,
					},
				},
			},
			{
				ID:         "t2",
				Name:       "should be able to submit the form with complete data",
				Status:     entities.StepStatusFailed,
				Error:      "Student Name should be Ada Lovelace: timeout",
				Screenshot: "test-results/screenshots/TC11.png",
				Duration:   1500 * time.Millisecond,
			},
		},
	}
}

func TestReportStore_RoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml", "YAML"} {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			store, err := NewReportStore(dir, format)
			require.NoError(t, err)

			report := sampleReport()
			path, err := store.Save(report)
			require.NoError(t, err)

			ext := ".json"
			if format != "json" {
				ext = ".yaml"
			}
			assert.Equal(t, filepath.Join(dir, "report-20240501-100000"+ext), path)

			loaded, err := store.Load(path)
			require.NoError(t, err)
			assert.Equal(t, report, loaded)
			assert.Equal(t, 1, loaded.Failed())
		})
	}
}

func TestReportStore_SaveUsesClockWithoutStart(t *testing.T) {
	dir := t.TempDir()
	store, err := NewReportStore(dir, "json")
	require.NoError(t, err)
	store.(*reportStore).now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	path, err := store.Save(&entities.Report{Tests: []*entities.TestResult{}})
	require.NoError(t, err)

	assert.Equal(t, "report-20240102-030405.json", filepath.Base(path))
}

func TestReportStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	store, err := NewReportStore(dir, "yaml")
	require.NoError(t, err)

	path, err := store.Save(sampleReport())
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestReportStore_UnsupportedFormat(t *testing.T) {
	_, err := NewReportStore(t.TempDir(), "xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	store, err := NewReportStore(t.TempDir(), "json")
	require.NoError(t, err)
	_, err = store.Load("report.xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReportStore_LoadYmlExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.yml")
	require.NoError(t, os.WriteFile(path, []byte("suite: demoqa\nbrowser: webkit\ntests: []\n"), 0644))

	store, err := NewReportStore(dir, "json")
	require.NoError(t, err)

	report, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "webkit", report.Browser)
	assert.Empty(t, report.Tests)
}

func TestReportStore_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	store, err := NewReportStore(dir, "json")
	require.NoError(t, err)

	_, err = store.Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0644))
	_, err = store.Load(broken)
	assert.ErrorContains(t, err, "failed to decode report")
}
