package reports

import (
	"fmt"

	"request-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidFormat = "RPT_1000"

	codeInternalRenderFailed = "RPT_9000"
)

// errInvalidFormat returns an error for an unsupported export format.
func errInvalidFormat(format string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidFormat,
		fmt.Sprintf("unsupported report format: %q (expected json or pdf)", format), nil)
}

// errRenderFailed returns an error when serializing a report fails. The
// failure is terminal for the export call only.
func errRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRenderFailed, fmt.Errorf("renderFailed: %w", cause))
}
