package ingestors

import (
	"fmt"

	"request-analytics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed = "LOGS_1000"

	codeInternalLogStoreFailed = "LOGS_9000"
)

// errValidationFailed returns an error for malformed or invalid log payloads.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errInternalLogStoreFailed returns an error when a log store insert fails.
func errInternalLogStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogStoreFailed, fmt.Errorf("logStoreFailed: %w", cause))
}
