package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authmocks "request-analytics/internal/auth/mocks"
	ingmocks "request-analytics/internal/ingestors/mocks"
	"request-analytics/internal/models"
	"request-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func errUnauthorized() *svcerrors.ServiceError {
	return svcerrors.NewUnauthorizedError("AUTH_1001", "Invalid API Key", nil)
}

func TestTrackLogHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := authmocks.NewMockAuthService(ctrl)
	mockIngestion := ingmocks.NewMockIngestionService(ctrl)
	handler := NewTrackLogHandler(mockAuth, mockIngestion)

	mockAuth.EXPECT().
		ResolveKey(gomock.Any(), "valid-key").
		Return(&models.APIKey{ID: 7, Key: "valid-key"}, nil)
	mockIngestion.EXPECT().
		Ingest(gomock.Any(), int64(7), gomock.Any()).
		Return(&models.LogRecord{ID: 1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/track", strings.NewReader(`{}`))
	req.Header.Set("x-api-key", "valid-key")
	recorder := httptest.NewRecorder()

	err := handler.Handle(recorder, req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

func TestTrackLogHandler_Handle_RejectedKey(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Ingestion never runs when the key is rejected.
	mockAuth := authmocks.NewMockAuthService(ctrl)
	mockIngestion := ingmocks.NewMockIngestionService(ctrl)
	handler := NewTrackLogHandler(mockAuth, mockIngestion)

	mockAuth.EXPECT().
		ResolveKey(gomock.Any(), "bad-key").
		Return(nil, errUnauthorized())

	req := httptest.NewRequest(http.MethodPost, "/track", strings.NewReader(`{}`))
	req.Header.Set("x-api-key", "bad-key")

	err := handler.Handle(httptest.NewRecorder(), req)
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, 401, svcErr.HttpStatusCode)
}

func TestTrackLogHandler_Handle_IngestionError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := authmocks.NewMockAuthService(ctrl)
	mockIngestion := ingmocks.NewMockIngestionService(ctrl)
	handler := NewTrackLogHandler(mockAuth, mockIngestion)

	mockAuth.EXPECT().
		ResolveKey(gomock.Any(), gomock.Any()).
		Return(&models.APIKey{ID: 7}, nil)
	mockIngestion.EXPECT().
		Ingest(gomock.Any(), int64(7), gomock.Any()).
		Return(nil, svcerrors.NewInvalidArgumentError("LOGS_1000", "invalid fields: method", nil))

	req := httptest.NewRequest(http.MethodPost, "/track", strings.NewReader(`{}`))
	req.Header.Set("x-api-key", "valid-key")

	err := handler.Handle(httptest.NewRecorder(), req)
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "LOGS_1000", svcErr.Code)
}
