package report

import "errors"

var (
	ErrUnknownReport       = errors.New("unknown reportId")
	ErrUnsupportedFileType = errors.New("unsupported fileType")
	ErrQueryFailed         = errors.New("report query failed")
	ErrExportFailed        = errors.New("export rendering failed")
)
