package aggregators

import (
	"fmt"

	"request-analytics/internal/shared/svcerrors"
)

const (
	codeInternalLogStoreFailed = "DASH_9000"
)

// errInternalLogStoreFailed returns an error when an aggregate query fails.
func errInternalLogStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogStoreFailed, fmt.Errorf("logStoreFailed: %w", cause))
}
