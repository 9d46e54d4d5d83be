package response

import (
	"errors"
	"net/http"

	"github.com/pdks-app/pdks-backend-go/internal/domain/report"
	"github.com/pdks-app/pdks-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Internal failures are
// collapsed to a generic message; details stay in the server log.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, report.ErrUnknownReport):
		BadRequest(w, "Unknown reportId", nil)
	case errors.Is(err, report.ErrUnsupportedFileType):
		BadRequest(w, "Unsupported fileType", nil)
	case errors.Is(err, report.ErrQueryFailed), errors.Is(err, report.ErrExportFailed):
		InternalServerError(w, "Export failed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
