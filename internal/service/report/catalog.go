package report

import (
	"context"

	"github.com/pdks-app/pdks-backend-go/internal/domain/report"
)

// definition binds one catalog entry to its query-and-convert function.
// The catalog is built once at construction and never mutated.
type definition struct {
	info report.Info
	run  func(ctx context.Context, p report.Params) (report.Dataset, error)
}

func (s *ReportServiceImpl) buildCatalog() []definition {
	return []definition{
		{
			info: report.Info{
				ID:          "daily-attendance",
				Title:       "Daily Attendance",
				Description: "Check-in and check-out records per person per day.",
				Params: []report.ParamKind{
					report.ParamDateRange, report.ParamDepartment, report.ParamPersonnel,
				},
			},
			run: s.runDailyAttendance,
		},
		{
			info: report.Info{
				ID:          "employee-hours",
				Title:       "Hours per Employee",
				Description: "Total worked hours per person, highest first.",
				Params: []report.ParamKind{
					report.ParamDateRange, report.ParamDepartment, report.ParamPersonnel,
				},
			},
			run: s.runEmployeeHours,
		},
		{
			info: report.Info{
				ID:          "department-hours",
				Title:       "Hours per Department",
				Description: "Total worked hours per department, highest first.",
				Params: []report.ParamKind{
					report.ParamDateRange, report.ParamDepartment,
				},
			},
			run: s.runDepartmentHours,
		},
		{
			info: report.Info{
				ID:          "presence",
				Title:       "Present vs Absent",
				Description: "Presence status of every person on a single date.",
				Params: []report.ParamKind{
					report.ParamSingleDate, report.ParamDepartment,
				},
			},
			run: s.runPresence,
		},
		{
			info: report.Info{
				ID:          "leave-summary",
				Title:       "Leave Requests Summary",
				Description: "Leave requests overlapping the requested date range.",
				Params: []report.ParamKind{
					report.ParamDateRange, report.ParamLeaveStatus, report.ParamLeaveType,
					report.ParamDepartment, report.ParamPersonnel,
				},
			},
			run: s.runLeaveSummary,
		},
		{
			info: report.Info{
				ID:          "personnel-roster",
				Title:       "Personnel Roster",
				Description: "Personnel listing with department, role and status.",
				Params: []report.ParamKind{
					report.ParamDepartment,
				},
			},
			run: s.runRoster,
		},
	}
}

func (s *ReportServiceImpl) runDailyAttendance(ctx context.Context, p report.Params) (report.Dataset, error) {
	rows, err := s.reportRepo.GetDailyAttendance(ctx, p)
	if err != nil {
		return report.Dataset{}, err
	}

	ds := report.Dataset{
		Columns: []string{"per_id", "full_name", "department", "date", "checkin", "checkout"},
		Rows:    make([][]any, 0, len(rows)),
	}
	for _, row := range rows {
		ds.Rows = append(ds.Rows, []any{
			row.PerID, row.FullName, row.Department, row.Date, row.CheckIn, row.CheckOut,
		})
	}
	return ds, nil
}

func (s *ReportServiceImpl) runEmployeeHours(ctx context.Context, p report.Params) (report.Dataset, error) {
	rows, err := s.reportRepo.GetEmployeeHours(ctx, p)
	if err != nil {
		return report.Dataset{}, err
	}

	ds := report.Dataset{
		Columns: []string{"per_id", "full_name", "department", "total_hours"},
		Rows:    make([][]any, 0, len(rows)),
	}
	for _, row := range rows {
		ds.Rows = append(ds.Rows, []any{row.PerID, row.FullName, row.Department, row.TotalHours})
	}
	return ds, nil
}

func (s *ReportServiceImpl) runDepartmentHours(ctx context.Context, p report.Params) (report.Dataset, error) {
	rows, err := s.reportRepo.GetDepartmentHours(ctx, p)
	if err != nil {
		return report.Dataset{}, err
	}

	ds := report.Dataset{
		Columns: []string{"department", "total_hours"},
		Rows:    make([][]any, 0, len(rows)),
	}
	for _, row := range rows {
		ds.Rows = append(ds.Rows, []any{row.Department, row.TotalHours})
	}
	return ds, nil
}

func (s *ReportServiceImpl) runPresence(ctx context.Context, p report.Params) (report.Dataset, error) {
	rows, err := s.reportRepo.GetPresence(ctx, p)
	if err != nil {
		return report.Dataset{}, err
	}

	ds := report.Dataset{
		Columns: []string{"per_id", "full_name", "department", "status"},
		Rows:    make([][]any, 0, len(rows)),
	}
	for _, row := range rows {
		ds.Rows = append(ds.Rows, []any{row.PerID, row.FullName, row.Department, row.Status})
	}
	return ds, nil
}

func (s *ReportServiceImpl) runLeaveSummary(ctx context.Context, p report.Params) (report.Dataset, error) {
	rows, err := s.reportRepo.GetLeaveSummary(ctx, p)
	if err != nil {
		return report.Dataset{}, err
	}

	ds := report.Dataset{
		Columns: []string{
			"id", "per_id", "full_name", "department", "leave_type",
			"status", "start_date", "end_date", "other_reason", "submitted_at",
		},
		Rows: make([][]any, 0, len(rows)),
	}
	for _, row := range rows {
		ds.Rows = append(ds.Rows, []any{
			row.ID, row.PerID, row.FullName, row.Department, row.LeaveType,
			row.Status, row.StartDate, row.EndDate, row.OtherReason, row.SubmittedAt,
		})
	}
	return ds, nil
}

func (s *ReportServiceImpl) runRoster(ctx context.Context, p report.Params) (report.Dataset, error) {
	rows, err := s.reportRepo.GetRoster(ctx, p)
	if err != nil {
		return report.Dataset{}, err
	}

	ds := report.Dataset{
		Columns: []string{"id", "first_name", "last_name", "department", "role", "status"},
		Rows:    make([][]any, 0, len(rows)),
	}
	for _, row := range rows {
		ds.Rows = append(ds.Rows, []any{
			row.ID, row.FirstName, row.LastName, row.Department, row.Role, row.Status,
		})
	}
	return ds, nil
}
