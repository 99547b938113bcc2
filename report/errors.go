package report

import "errors"

// ErrReportWrite indicates the report destination could not be created or
// written. A failed write aborts the run; partial reports are not kept.
var ErrReportWrite = errors.New("report: write failed")
