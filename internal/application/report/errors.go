package report

import (
	"fmt"

	"github.com/shoplytics/backend/internal/domain/report"
)

// GenerationError wraps any failure while producing a sales report
type GenerationError struct {
	ReportType report.ReportType
	Err        error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate %s sales report: %v", e.ReportType, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
