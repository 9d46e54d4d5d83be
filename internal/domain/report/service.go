package report

import "context"

// ReportService defines the reporting/export surface.
type ReportService interface {
	// ListReports returns catalog metadata for every report without
	// executing any query.
	ListReports(ctx context.Context) []Info

	// Export runs one report and renders it to the requested file type.
	Export(ctx context.Context, req ExportRequest) (ExportResult, error)
}
