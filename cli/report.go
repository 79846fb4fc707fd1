package cli

import (
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"sampan/sef/serr"
)

type (
	FileReport struct {
		Input          string    `json:"input"`
		Output         string    `json:"output,omitempty"`
		Status         string    `json:"status"`
		Kind           serr.Kind `json:"kind,omitempty"`
		Error          string    `json:"error,omitempty"`
		Entries        int64     `json:"entries"`
		TotalBytes     int64     `json:"total_bytes"`
		ExtractedBytes int64     `json:"extracted_bytes"`
	}
	Report struct {
		RunID          string       `json:"run_id"`
		StartedAt      time.Time    `json:"started_at"`
		Duration       string       `json:"duration"`
		Files          []FileReport `json:"files"`
		TotalBytes     int64        `json:"total_bytes"`
		ExtractedBytes int64        `json:"extracted_bytes"`
	}
)

const (
	StatusStripped = "stripped"
	StatusDryRun   = "dry_run"
	StatusSkipped  = "skipped"
)

func CreateFileReport(result FileResult, _ int) FileReport {
	report := FileReport{
		Input:          result.Input,
		Output:         result.Output,
		Status:         StatusStripped,
		Entries:        result.NumEntries,
		TotalBytes:     result.Total,
		ExtractedBytes: result.Extracted,
	}
	switch {
	case result.Err != nil:
		report.Status = StatusSkipped
		report.Output = ""
		report.Kind = serr.KindOf(result.Err)
		report.Error = serr.Message(result.Err)
	case !result.Written:
		report.Status = StatusDryRun
	}
	return report
}

func CreateReport(startedAt time.Time, elapsed time.Duration, results []FileResult) Report {
	totals := Fold(results)
	return Report{
		RunID:          uuid.NewString(),
		StartedAt:      startedAt.UTC(),
		Duration:       elapsed.Round(time.Millisecond).String(),
		Files:          lo.Map(results, CreateFileReport),
		TotalBytes:     totals.Total,
		ExtractedBytes: totals.Extracted,
	}
}

func SaveReport(report Report, path string) error {
	bs, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return errors.Wrap(err, "SaveReport error")
	}
	return errors.Wrap(os.WriteFile(path, bs, 0644), "SaveReport error")
}
