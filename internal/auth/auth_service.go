package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"request-analytics/internal/models"
	"request-analytics/internal/shared/loggers"
	"request-analytics/internal/shared/metrics"
	"request-analytics/internal/shared/svcerrors"
	"request-analytics/internal/stores"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MaxAPIKeyLen bounds presented keys; anything longer is treated as missing.
const MaxAPIKeyLen = 64

// AuthService is the credential gate in front of the core: it resolves
// presented API keys to owners and handles user registration, token login
// and key issuance.
//
//go:generate mockgen -source=auth_service.go -destination=./mocks/auth_service_mock.go -package=mocks
type AuthService interface {
	// ResolveKey maps a presented API key to its stored identity. It fails
	// with an authorization error on missing, oversized or unknown keys.
	ResolveKey(ctx context.Context, presentedKey string) (*models.APIKey, error)

	Register(ctx context.Context, username, password string) (*models.User, error)
	// Login verifies the credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, error)
	// VerifyToken validates a bearer token and returns the subject username.
	VerifyToken(tokenString string) (string, error)
	// GenerateKey issues a fresh API key owned by the named user.
	GenerateKey(ctx context.Context, username string) (string, error)
}

type authService struct {
	keyStore  stores.KeyStore
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(keyStore stores.KeyStore, jwtSecret string, tokenTTL time.Duration) AuthService {
	return &authService{
		keyStore:  keyStore,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

func (s *authService) ResolveKey(ctx context.Context, presentedKey string) (*models.APIKey, error) {
	if presentedKey == "" || len(presentedKey) > MaxAPIKeyLen {
		return nil, s.rejected(errMissingAPIKey())
	}

	apiKey, err := s.keyStore.FindByKey(ctx, presentedKey)
	if err != nil {
		if errors.Is(err, stores.ErrKeyNotFound) {
			return nil, s.rejected(errInvalidAPIKey(err))
		}
		return nil, s.rejected(errInternalKeyStoreFailed(err))
	}

	metricKeyResolvedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return apiKey, nil
}

func (s *authService) rejected(svcErr *svcerrors.ServiceError) error {
	metricKeyResolvedTotal.WithLabelValues(svcErr.Code).Inc()
	return svcErr
}

func (s *authService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, errCredentialsRequired()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errInternalKeyStoreFailed(fmt.Errorf("failed to hash password: %w", err))
	}

	user, err := s.keyStore.CreateUser(ctx, username, string(hashed))
	if err != nil {
		if errors.Is(err, stores.ErrUserAlreadyExists) {
			return nil, errUsernameTaken(err)
		}
		return nil, errInternalKeyStoreFailed(err)
	}

	loggers.Ctx(ctx).Info().Str("username", username).Msg("user registered")
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.keyStore.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, stores.ErrUserNotFound) {
			return "", errInvalidCredentials(err)
		}
		return "", errInternalKeyStoreFailed(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", errInvalidCredentials(err)
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   user.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", errInternalKeyStoreFailed(fmt.Errorf("failed to sign token: %w", err))
	}
	return token, nil
}

func (s *authService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errInvalidToken(err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errInvalidToken(nil)
	}
	return claims.Subject, nil
}

func (s *authService) GenerateKey(ctx context.Context, username string) (string, error) {
	user, err := s.keyStore.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, stores.ErrUserNotFound) {
			return "", errInvalidToken(err)
		}
		return "", errInternalKeyStoreFailed(err)
	}

	key := uuid.NewString()
	if _, err := s.keyStore.CreateKey(ctx, key, &user.ID); err != nil {
		return "", errInternalKeyStoreFailed(err)
	}

	loggers.Ctx(ctx).Info().Str("username", username).Msg("api key issued")
	return key, nil
}
