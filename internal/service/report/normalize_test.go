package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pdks-app/pdks-backend-go/internal/domain/report"
)

func TestNormalizeParams(t *testing.T) {
	today := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		kinds []report.ParamKind
		in    report.Params
		want  report.Params
	}{
		{
			name:  "date range defaults to today",
			kinds: []report.ParamKind{report.ParamDateRange},
			in:    report.Params{},
			want:  report.Params{DateFrom: "2025-06-02", DateTo: "2025-06-02"},
		},
		{
			name:  "partial range fills only the gap",
			kinds: []report.ParamKind{report.ParamDateRange},
			in:    report.Params{DateFrom: "2025-05-01"},
			want:  report.Params{DateFrom: "2025-05-01", DateTo: "2025-06-02"},
		},
		{
			name:  "single date defaults to today",
			kinds: []report.ParamKind{report.ParamSingleDate, report.ParamDepartment},
			in:    report.Params{Department: "Muhasebe"},
			want:  report.Params{Date: "2025-06-02", Department: "Muhasebe"},
		},
		{
			name:  "explicit values survive",
			kinds: []report.ParamKind{report.ParamDateRange},
			in:    report.Params{DateFrom: "2025-01-01", DateTo: "2025-01-31"},
			want:  report.Params{DateFrom: "2025-01-01", DateTo: "2025-01-31"},
		},
		{
			name:  "no date kinds means no defaulting",
			kinds: []report.ParamKind{report.ParamDepartment},
			in:    report.Params{},
			want:  report.Params{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeParams(tt.kinds, tt.in, today))
		})
	}
}
