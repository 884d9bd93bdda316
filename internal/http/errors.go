package http

import (
	"fmt"

	"request-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidQueryParams = "HTTP_1000"
	codeInvalidRequestBody = "HTTP_1001"

	codeInternalLogListFailed = "HTTP_9000"
)

// errInvalidQueryParams returns an error for malformed query parameters.
func errInvalidQueryParams(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParams, msg, cause)
}

// errInvalidRequestBody returns an error for undecodable request bodies.
func errInvalidRequestBody(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequestBody, "invalid request body", cause)
}

// errInternalListFailed returns an error when a raw-log listing fails.
func errInternalListFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogListFailed, fmt.Errorf("logListFailed: %w", cause))
}
