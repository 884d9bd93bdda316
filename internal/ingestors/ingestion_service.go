package ingestors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"request-analytics/internal/models"
	"request-analytics/internal/shared/loggers"
	"request-analytics/internal/shared/metrics"
	"request-analytics/internal/shared/svcerrors"
	"request-analytics/internal/shared/validators"
	"request-analytics/internal/stores"
)

const maxPayloadBytes = 64 * 1024

// Sentinel strings that normalize an optional field to absent.
var nullableValues = map[string]struct{}{
	"":     {},
	" ":    {},
	"null": {},
	"NULL": {},
	"None": {},
}

// LogPayload is one inbound request record before normalization. Unknown
// fields are rejected by the decoder.
type LogPayload struct {
	CreatedAt   string   `json:"created_at"`
	Method      string   `json:"method"`
	Endpoint    string   `json:"endpoint"`
	IP          *string  `json:"ip"`
	ProcessTime *float64 `json:"process_time"`
	StatusCode  *int     `json:"status_code"`
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// Ingest normalizes and validates one log payload and persists it tagged
	// with the owning API key. Nothing is persisted on validation failure.
	Ingest(ctx context.Context, apiKeyID int64, r io.Reader) (*models.LogRecord, error)
}

type ingestionService struct {
	logStore stores.LogStore
	validate *validators.Validate
}

func NewIngestionService(logStore stores.LogStore) IngestionService {
	return &ingestionService{
		logStore: logStore,
		validate: validators.New(),
	}
}

// validatedLog carries the normalized fields checked by struct tags. Method
// and created_at need custom handling and are validated by hand.
type validatedLog struct {
	Endpoint    string  `validate:"required,max=200"`
	IP          *string `validate:"omitempty,min=7,max=45"`
	ProcessTime float64 `validate:"gte=0"`
	StatusCode  int     `validate:"gte=100,lte=599"`
}

func (s *ingestionService) Ingest(ctx context.Context, apiKeyID int64, r io.Reader) (*models.LogRecord, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Int64("api_key_id", apiKeyID).Msg("started ingesting log record")

	record, err := s.decodeAndValidate(apiKeyID, r)
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			metricLogIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		}
		return nil, err
	}

	id, err := s.logStore.Insert(ctx, record)
	if err != nil {
		svcErr := errInternalLogStoreFailed(err)
		metricLogIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}
	record.ID = id

	metricLogIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return record, nil
}

func (s *ingestionService) decodeAndValidate(apiKeyID int64, r io.Reader) (*models.LogRecord, error) {
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	decoder := json.NewDecoder(io.LimitReader(r, maxPayloadBytes))
	decoder.DisallowUnknownFields()

	var payload LogPayload
	if err := decoder.Decode(&payload); err != nil {
		return nil, errValidationFailed("invalid json payload", err)
	}

	var violations []string

	createdAt, err := parseCreatedAt(payload.CreatedAt)
	if err != nil {
		violations = append(violations, "created_at")
	}

	method := cleanString(payload.Method)
	if method == "" || !models.IsAllowedMethod(method) {
		violations = append(violations, "method")
	}

	endpoint := strings.ToLower(cleanString(payload.Endpoint))

	var ip *string
	if payload.IP != nil {
		if cleaned := cleanString(*payload.IP); cleaned != "" {
			ip = &cleaned
		}
	}

	checked := validatedLog{Endpoint: endpoint, IP: ip}
	if payload.ProcessTime == nil {
		violations = append(violations, "process_time")
	} else {
		checked.ProcessTime = *payload.ProcessTime
	}
	if payload.StatusCode == nil {
		violations = append(violations, "status_code")
	} else {
		checked.StatusCode = *payload.StatusCode
	}

	if err := s.validate.Struct(&checked); err != nil {
		fieldErrors, ok := err.(validators.ValidationErrors)
		if !ok {
			return nil, errValidationFailed("validation failed", err)
		}
		for _, fe := range fieldErrors {
			violations = append(violations, payloadFieldName(fe.Field()))
		}
	}

	if len(violations) > 0 {
		return nil, errValidationFailed(
			fmt.Sprintf("invalid fields: %s", strings.Join(violations, ", ")), nil)
	}

	return &models.LogRecord{
		CreatedAt:   createdAt,
		Method:      method,
		Endpoint:    endpoint,
		IP:          ip,
		ProcessTime: *payload.ProcessTime,
		StatusCode:  *payload.StatusCode,
		APIKeyID:    apiKeyID,
	}, nil
}

// cleanString strips control characters and surrounding whitespace, then
// collapses the nullable sentinels ("", " ", "null", "NULL", "None") to "".
func cleanString(s string) string {
	if _, isNullable := nullableValues[s]; isNullable {
		return ""
	}
	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, s)
	cleaned = strings.TrimSpace(cleaned)
	if _, isNullable := nullableValues[cleaned]; isNullable {
		return ""
	}
	return cleaned
}

// parseCreatedAt accepts RFC3339 timestamps as well as zone-less ISO-8601
// forms, which are interpreted as UTC. The result is UTC-normalized.
func parseCreatedAt(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("created_at is required")
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid created_at: %q", value)
}

// payloadFieldName maps validated struct field names back to payload names.
func payloadFieldName(structField string) string {
	switch structField {
	case "Endpoint":
		return "endpoint"
	case "IP":
		return "ip"
	case "ProcessTime":
		return "process_time"
	case "StatusCode":
		return "status_code"
	default:
		return strings.ToLower(structField)
	}
}
