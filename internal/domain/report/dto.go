package report

import "fmt"

// ParamKind tags a filter parameter that a report accepts. The set of kinds
// is closed; catalog entries declare a subset of it.
type ParamKind string

const (
	ParamDateRange   ParamKind = "dateRange"
	ParamSingleDate  ParamKind = "singleDate"
	ParamDepartment  ParamKind = "department"
	ParamPersonnel   ParamKind = "personnel"
	ParamLeaveStatus ParamKind = "leaveStatus"
	ParamLeaveType   ParamKind = "leaveType"
)

// ParamKinds lists every recognized parameter kind.
var ParamKinds = []ParamKind{
	ParamDateRange,
	ParamSingleDate,
	ParamDepartment,
	ParamPersonnel,
	ParamLeaveStatus,
	ParamLeaveType,
}

// Params carries caller-supplied filter values. An empty string means
// "no filter" for that key; date fields are filled by the normalizer when
// the report accepts them.
type Params struct {
	DateFrom    string `json:"dateFrom"`
	DateTo      string `json:"dateTo"`
	Date        string `json:"date"`
	Department  string `json:"department"`
	PerID       string `json:"perId"`
	LeaveStatus string `json:"leaveStatus"`
	LeaveType   string `json:"leaveType"`
}

// Info is the catalog metadata for one report, returned by ListReports
// without touching the data store.
type Info struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Params      []ParamKind `json:"params"`
}

// FileType selects the export serializer.
type FileType string

const (
	FileTypeCSV  FileType = "csv"
	FileTypeXLSX FileType = "xlsx"
	FileTypePDF  FileType = "pdf"
)

// ParseFileType validates a caller-supplied file type string.
func ParseFileType(s string) (FileType, error) {
	switch FileType(s) {
	case FileTypeCSV, FileTypeXLSX, FileTypePDF:
		return FileType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, s)
	}
}

// ContentType returns the MIME type sent with the exported file.
func (f FileType) ContentType() string {
	switch f {
	case FileTypeCSV:
		return "text/csv; charset=utf-8"
	case FileTypeXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FileTypePDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// Dataset is the serializer-facing shape of a report result: an ordered
// column list plus rows of scalar values (string, number, nil). Column sets
// differ report-to-report but are uniform within one result. Row order is
// the query's order; serializers never re-sort.
type Dataset struct {
	Columns []string
	Rows    [][]any
}

// ExportRequest is one export call. Transient, never persisted.
type ExportRequest struct {
	ReportID string
	FileType string
	Params   Params
}

// ExportResult is a fully buffered export artifact. Content is complete
// before the result is returned, so the transport never streams a partial
// file with a success status.
type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ========================================
// PER-REPORT ROW SHAPES
// ========================================

// DailyAttendanceRow is one raw check-in/check-out record.
type DailyAttendanceRow struct {
	PerID      int64
	FullName   string
	Department string
	Date       string
	CheckIn    *string
	CheckOut   *string
}

// EmployeeHoursRow is the summed work duration for one person, in hours
// rounded to two decimals.
type EmployeeHoursRow struct {
	PerID      int64
	FullName   string
	Department string
	TotalHours float64
}

// DepartmentHoursRow is the unweighted sum of per-person hours for one
// department.
type DepartmentHoursRow struct {
	Department string
	TotalHours float64
}

// PresenceRow marks one person as Present or Absent on a single date.
type PresenceRow struct {
	PerID      int64
	FullName   string
	Department string
	Status     string
}

// LeaveSummaryRow is one leave request whose interval overlaps the
// requested date range.
type LeaveSummaryRow struct {
	ID          int64
	PerID       int64
	FullName    string
	Department  string
	LeaveType   string
	Status      string
	StartDate   string
	EndDate     string
	OtherReason string
	SubmittedAt string
}

// RosterRow is one personnel listing entry.
type RosterRow struct {
	ID         int64
	FirstName  string
	LastName   string
	Department string
	Role       string
	Status     string
}
