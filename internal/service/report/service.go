package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pdks-app/pdks-backend-go/internal/domain/report"
	"github.com/pdks-app/pdks-backend-go/internal/pkg/export"
	"github.com/pdks-app/pdks-backend-go/internal/repository/postgresql"
)

type ReportServiceImpl struct {
	reportRepo   postgresql.ReportRepository
	logger       *slog.Logger
	queryTimeout time.Duration

	// now is swapped for a fixed clock in tests.
	now func() time.Time

	defs []definition
	byID map[string]*definition
}

func NewReportService(reportRepo postgresql.ReportRepository, logger *slog.Logger, queryTimeout time.Duration) report.ReportService {
	s := &ReportServiceImpl{
		reportRepo:   reportRepo,
		logger:       logger,
		queryTimeout: queryTimeout,
		now:          time.Now,
	}

	s.defs = s.buildCatalog()
	s.byID = make(map[string]*definition, len(s.defs))
	for i := range s.defs {
		s.byID[s.defs[i].info.ID] = &s.defs[i]
	}

	return s
}

// ListReports returns catalog metadata without executing any query.
func (s *ReportServiceImpl) ListReports(ctx context.Context) []report.Info {
	infos := make([]report.Info, 0, len(s.defs))
	for _, def := range s.defs {
		infos = append(infos, def.info)
	}
	return infos
}

// Export resolves the report, normalizes parameters, runs the query under a
// timeout, and renders the rows in the requested file type. The result is
// fully buffered; nothing is streamed before rendering succeeded.
func (s *ReportServiceImpl) Export(ctx context.Context, req report.ExportRequest) (report.ExportResult, error) {
	def, ok := s.byID[req.ReportID]
	if !ok {
		return report.ExportResult{}, fmt.Errorf("%w: %q", report.ErrUnknownReport, req.ReportID)
	}

	fileType, err := report.ParseFileType(req.FileType)
	if err != nil {
		return report.ExportResult{}, err
	}

	params := normalizeParams(def.info.Params, req.Params, s.now())

	exportID := uuid.NewString()

	queryCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	ds, err := def.run(queryCtx, params)
	if err != nil {
		s.logger.Error("report query failed",
			slog.String("export_id", exportID),
			slog.String("report_id", req.ReportID),
			slog.Any("error", err),
		)
		return report.ExportResult{}, fmt.Errorf("%w: %v", report.ErrQueryFailed, err)
	}

	var buf bytes.Buffer
	switch fileType {
	case report.FileTypeCSV:
		err = export.WriteCSV(&buf, ds)
	case report.FileTypeXLSX:
		err = export.WriteXLSX(&buf, ds, def.info.Title)
	case report.FileTypePDF:
		err = export.WritePDF(&buf, ds, def.info.Title)
	}
	if err != nil {
		s.logger.Error("report rendering failed",
			slog.String("export_id", exportID),
			slog.String("report_id", req.ReportID),
			slog.String("file_type", string(fileType)),
			slog.Any("error", err),
		)
		return report.ExportResult{}, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	return report.ExportResult{
		Filename:    fmt.Sprintf("%s_%s.%s", req.ReportID, s.now().Format("2006-01-02"), fileType),
		ContentType: fileType.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}
