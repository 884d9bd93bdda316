package auth

import (
	"fmt"

	"request-analytics/internal/shared/svcerrors"
)

const (
	codeMissingAPIKey       = "AUTH_1000"
	codeInvalidAPIKey       = "AUTH_1001"
	codeInvalidCredentials  = "AUTH_1002"
	codeInvalidToken        = "AUTH_1003"
	codeUsernameTaken       = "AUTH_1004"
	codeCredentialsRequired = "AUTH_1005"

	codeInternalKeyStoreFailed = "AUTH_9000"
)

func errMissingAPIKey() *svcerrors.ServiceError {
	return svcerrors.NewUnauthorizedError(codeMissingAPIKey, "Missing API Key", nil)
}

func errInvalidAPIKey(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnauthorizedError(codeInvalidAPIKey, "Invalid API Key", cause)
}

func errInvalidCredentials(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnauthorizedError(codeInvalidCredentials, "incorrect username or password", cause)
}

func errInvalidToken(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnauthorizedError(codeInvalidToken, "invalid or expired token", cause)
}

func errUsernameTaken(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeUsernameTaken, "username already registered", cause)
}

func errCredentialsRequired() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeCredentialsRequired, "username and password are required", nil)
}

// errInternalKeyStoreFailed returns an error when a key store operation fails.
func errInternalKeyStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalKeyStoreFailed, fmt.Errorf("keyStoreFailed: %w", cause))
}
