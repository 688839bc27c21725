package interfaces

import "demoqa_automation/domain/entities"

// ReportStorage defines persistence of run reports
type ReportStorage interface {
	// Save writes the report and returns the path it was written to
	Save(report *entities.Report) (string, error)

	// Load reads a report previously written by Save
	Load(path string) (*entities.Report, error)
}
