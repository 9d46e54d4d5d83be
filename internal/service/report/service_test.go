package report

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdks-app/pdks-backend-go/internal/domain/report"
)

// stubReportRepo serves canned rows and counts queries so tests can prove
// the dispatcher short-circuits before touching the data store.
type stubReportRepo struct {
	calls      int
	err        error
	lastParams report.Params
}

func (s *stubReportRepo) GetDailyAttendance(ctx context.Context, p report.Params) ([]report.DailyAttendanceRow, error) {
	s.calls++
	s.lastParams = p
	if s.err != nil {
		return nil, s.err
	}
	checkout := "17:05:00"
	checkin := "08:55:00"
	return []report.DailyAttendanceRow{
		{PerID: 1, FullName: "Şükrü Çelik", Department: "Yazılım", Date: "2025-01-10", CheckIn: &checkin, CheckOut: &checkout},
	}, nil
}

func (s *stubReportRepo) GetEmployeeHours(ctx context.Context, p report.Params) ([]report.EmployeeHoursRow, error) {
	s.calls++
	s.lastParams = p
	if s.err != nil {
		return nil, s.err
	}
	return []report.EmployeeHoursRow{
		{PerID: 1, FullName: "Şükrü Çelik", Department: "Yazılım", TotalHours: 41.5},
		{PerID: 2, FullName: "Ayşe Öztürk", Department: "İnsan Kaynakları", TotalHours: 38.25},
	}, nil
}

func (s *stubReportRepo) GetDepartmentHours(ctx context.Context, p report.Params) ([]report.DepartmentHoursRow, error) {
	s.calls++
	s.lastParams = p
	return []report.DepartmentHoursRow{{Department: "Yazılım", TotalHours: 120.75}}, s.err
}

func (s *stubReportRepo) GetPresence(ctx context.Context, p report.Params) ([]report.PresenceRow, error) {
	s.calls++
	s.lastParams = p
	return []report.PresenceRow{{PerID: 1, FullName: "Şükrü Çelik", Department: "Yazılım", Status: "Present"}}, s.err
}

func (s *stubReportRepo) GetLeaveSummary(ctx context.Context, p report.Params) ([]report.LeaveSummaryRow, error) {
	s.calls++
	s.lastParams = p
	return nil, s.err
}

func (s *stubReportRepo) GetRoster(ctx context.Context, p report.Params) ([]report.RosterRow, error) {
	s.calls++
	s.lastParams = p
	return []report.RosterRow{{ID: 1, FirstName: "Şükrü", LastName: "Çelik", Department: "Yazılım", Role: "admin", Status: "aktif"}}, s.err
}

func newTestService(t *testing.T, repo *stubReportRepo) *ReportServiceImpl {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewReportService(repo, logger, 5*time.Second).(*ReportServiceImpl)
	svc.now = func() time.Time {
		return time.Date(2025, time.March, 14, 10, 30, 0, 0, time.Local)
	}
	return svc
}

func TestListReports_CatalogEntries(t *testing.T) {
	svc := newTestService(t, &stubReportRepo{})

	infos := svc.ListReports(context.Background())
	require.Len(t, infos, 6)

	recognized := make(map[report.ParamKind]bool)
	for _, kind := range report.ParamKinds {
		recognized[kind] = true
	}

	seen := make(map[string]bool)
	for _, info := range infos {
		assert.NotEmpty(t, info.ID)
		assert.NotEmpty(t, info.Title)
		assert.False(t, seen[info.ID], "duplicate report id %q", info.ID)
		seen[info.ID] = true
		for _, kind := range info.Params {
			assert.True(t, recognized[kind], "report %q declares unrecognized param kind %q", info.ID, kind)
		}
	}
}

func TestExport_UnknownReport(t *testing.T) {
	repo := &stubReportRepo{}
	svc := newTestService(t, repo)

	_, err := svc.Export(context.Background(), report.ExportRequest{
		ReportID: "no-such-report",
		FileType: "csv",
	})

	require.ErrorIs(t, err, report.ErrUnknownReport)
	assert.Zero(t, repo.calls, "unknown report must not execute any query")
}

func TestExport_UnsupportedFileType(t *testing.T) {
	repo := &stubReportRepo{}
	svc := newTestService(t, repo)

	_, err := svc.Export(context.Background(), report.ExportRequest{
		ReportID: "personnel-roster",
		FileType: "docx",
	})

	require.ErrorIs(t, err, report.ErrUnsupportedFileType)
	assert.Zero(t, repo.calls)
}

func TestExport_QueryFailureWrapped(t *testing.T) {
	repo := &stubReportRepo{err: errors.New("connection refused")}
	svc := newTestService(t, repo)

	_, err := svc.Export(context.Background(), report.ExportRequest{
		ReportID: "employee-hours",
		FileType: "csv",
	})

	require.ErrorIs(t, err, report.ErrQueryFailed)
}

func TestExport_CSVResult(t *testing.T) {
	repo := &stubReportRepo{}
	svc := newTestService(t, repo)

	result, err := svc.Export(context.Background(), report.ExportRequest{
		ReportID: "employee-hours",
		FileType: "csv",
	})
	require.NoError(t, err)

	assert.Equal(t, "employee-hours_2025-03-14.csv", result.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", result.ContentType)
	assert.Contains(t, string(result.Content), "Şükrü Çelik")
	assert.Contains(t, string(result.Content), "41.5")
}

func TestExport_Idempotent(t *testing.T) {
	repo := &stubReportRepo{}
	svc := newTestService(t, repo)

	req := report.ExportRequest{ReportID: "daily-attendance", FileType: "csv"}

	first, err := svc.Export(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Export(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first.Content, second.Content), "identical requests yield byte-identical CSV")
	assert.Equal(t, first.Filename, second.Filename)
}

func TestExport_FileTypesProduceContent(t *testing.T) {
	for _, fileType := range []string{"csv", "xlsx", "pdf"} {
		t.Run(fileType, func(t *testing.T) {
			svc := newTestService(t, &stubReportRepo{})

			result, err := svc.Export(context.Background(), report.ExportRequest{
				ReportID: "presence",
				FileType: fileType,
			})
			require.NoError(t, err)
			assert.NotZero(t, len(result.Content))
			assert.Equal(t, "presence_2025-03-14."+fileType, result.Filename)
		})
	}
}

func TestExport_NormalizesDatesBeforeQuery(t *testing.T) {
	repo := &stubReportRepo{}
	svc := newTestService(t, repo)

	_, err := svc.Export(context.Background(), report.ExportRequest{
		ReportID: "daily-attendance",
		FileType: "csv",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-14", repo.lastParams.DateFrom)
	assert.Equal(t, "2025-03-14", repo.lastParams.DateTo)
}
