package report

import (
	"time"

	"github.com/pdks-app/pdks-backend-go/internal/domain/report"
)

// normalizeParams fills missing date parameters with the given day. A
// dateRange report with no dates becomes a single-day range; a singleDate
// report defaults to the same day. Everything else is left untouched:
// absent filters mean "no filter", never an error.
func normalizeParams(kinds []report.ParamKind, p report.Params, today time.Time) report.Params {
	day := today.Format("2006-01-02")
	for _, kind := range kinds {
		switch kind {
		case report.ParamDateRange:
			if p.DateFrom == "" {
				p.DateFrom = day
			}
			if p.DateTo == "" {
				p.DateTo = day
			}
		case report.ParamSingleDate:
			if p.Date == "" {
				p.Date = day
			}
		}
	}
	return p
}
