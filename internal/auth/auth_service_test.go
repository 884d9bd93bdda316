package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"request-analytics/internal/models"
	"request-analytics/internal/shared/svcerrors"
	"request-analytics/internal/stores"
	"request-analytics/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "unit-test-signing-secret"

func newTestService(t *testing.T) (AuthService, *mocks.MockKeyStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockKeyStore := mocks.NewMockKeyStore(ctrl)
	return NewAuthService(mockKeyStore, testSecret, 30*time.Minute), mockKeyStore
}

func assertAuthError(t *testing.T, err error, code string, status int) {
	t.Helper()

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, code, svcErr.Code)
	assert.Equal(t, status, svcErr.HttpStatusCode)
}

func TestAuthService_ResolveKey_Success(t *testing.T) {
	t.Parallel()

	service, mockKeyStore := newTestService(t)
	userID := int64(3)
	mockKeyStore.EXPECT().
		FindByKey(gomock.Any(), "known-key").
		Return(&models.APIKey{ID: 9, Key: "known-key", UserID: &userID}, nil)

	apiKey, err := service.ResolveKey(context.Background(), "known-key")
	require.NoError(t, err)
	assert.Equal(t, int64(9), apiKey.ID)
}

func TestAuthService_ResolveKey_MissingOrOversized(t *testing.T) {
	t.Parallel()

	// The store is never consulted for empty or oversized keys.
	service, _ := newTestService(t)

	_, err := service.ResolveKey(context.Background(), "")
	assertAuthError(t, err, "AUTH_1000", 401)
	assert.Contains(t, err.Error(), "Missing API Key")

	_, err = service.ResolveKey(context.Background(), strings.Repeat("k", MaxAPIKeyLen+1))
	assertAuthError(t, err, "AUTH_1000", 401)
}

func TestAuthService_ResolveKey_Unknown(t *testing.T) {
	t.Parallel()

	service, mockKeyStore := newTestService(t)
	mockKeyStore.EXPECT().
		FindByKey(gomock.Any(), "unknown").
		Return(nil, stores.ErrKeyNotFound)

	_, err := service.ResolveKey(context.Background(), "unknown")
	assertAuthError(t, err, "AUTH_1001", 401)
	assert.Contains(t, err.Error(), "Invalid API Key")
}

func TestAuthService_ResolveKey_StoreFailure(t *testing.T) {
	t.Parallel()

	service, mockKeyStore := newTestService(t)
	mockKeyStore.EXPECT().
		FindByKey(gomock.Any(), "key").
		Return(nil, errors.New("database locked"))

	_, err := service.ResolveKey(context.Background(), "key")
	assertAuthError(t, err, "AUTH_9000", 500)
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	t.Parallel()

	service, mockKeyStore := newTestService(t)

	var storedHash string
	mockKeyStore.EXPECT().
		CreateUser(gomock.Any(), "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, username, hashedPassword string) (*models.User, error) {
			storedHash = hashedPassword
			return &models.User{ID: 1, Username: username, HashedPassword: hashedPassword}, nil
		})

	user, err := service.Register(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	assert.NotEqual(t, "s3cret", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("s3cret")))
}

func TestAuthService_Register_Invalid(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(t)

	_, err := service.Register(context.Background(), "", "pw")
	assertAuthError(t, err, "AUTH_1005", 400)

	_, err = service.Register(context.Background(), "alice", "")
	assertAuthError(t, err, "AUTH_1005", 400)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	t.Parallel()

	service, mockKeyStore := newTestService(t)
	mockKeyStore.EXPECT().
		CreateUser(gomock.Any(), "alice", gomock.Any()).
		Return(nil, stores.ErrUserAlreadyExists)

	_, err := service.Register(context.Background(), "alice", "pw")
	assertAuthError(t, err, "AUTH_1004", 409)
}

func TestAuthService_LoginAndVerifyToken_RoundTrip(t *testing.T) {
	t.Parallel()

	service, mockKeyStore := newTestService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	mockKeyStore.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(&models.User{ID: 1, Username: "alice", HashedPassword: string(hash)}, nil)

	token, err := service.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	service, mockKeyStore := newTestService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	mockKeyStore.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(&models.User{ID: 1, Username: "alice", HashedPassword: string(hash)}, nil)

	_, err = service.Login(context.Background(), "alice", "wrong")
	assertAuthError(t, err, "AUTH_1002", 401)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	t.Parallel()

	service, mockKeyStore := newTestService(t)
	mockKeyStore.EXPECT().
		FindUserByUsername(gomock.Any(), "nobody").
		Return(nil, stores.ErrUserNotFound)

	_, err := service.Login(context.Background(), "nobody", "pw")
	assertAuthError(t, err, "AUTH_1002", 401)
}

func TestAuthService_VerifyToken_Invalid(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(t)

	_, err := service.VerifyToken("not-a-token")
	assertAuthError(t, err, "AUTH_1003", 401)

	_, err = service.VerifyToken("")
	assertAuthError(t, err, "AUTH_1003", 401)
}

func TestAuthService_VerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockKeyStore := mocks.NewMockKeyStore(ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	mockKeyStore.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(&models.User{ID: 1, Username: "alice", HashedPassword: string(hash)}, nil)

	issuer := NewAuthService(mockKeyStore, "issuer-signing-secret", 30*time.Minute)
	token, err := issuer.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)

	verifier := NewAuthService(mockKeyStore, "different-signing-secret", 30*time.Minute)
	_, err = verifier.VerifyToken(token)
	assertAuthError(t, err, "AUTH_1003", 401)
}

func TestAuthService_VerifyToken_Expired(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockKeyStore := mocks.NewMockKeyStore(ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	mockKeyStore.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(&models.User{ID: 1, Username: "alice", HashedPassword: string(hash)}, nil)

	service := NewAuthService(mockKeyStore, testSecret, -time.Minute)
	token, err := service.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assertAuthError(t, err, "AUTH_1003", 401)
}

func TestAuthService_GenerateKey(t *testing.T) {
	t.Parallel()

	service, mockKeyStore := newTestService(t)

	mockKeyStore.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(&models.User{ID: 5, Username: "alice"}, nil)
	mockKeyStore.EXPECT().
		CreateKey(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, userID *int64) (*models.APIKey, error) {
			require.NotNil(t, userID)
			assert.Equal(t, int64(5), *userID)
			assert.NotEmpty(t, key)
			assert.LessOrEqual(t, len(key), MaxAPIKeyLen)
			return &models.APIKey{ID: 1, Key: key, UserID: userID}, nil
		})

	key, err := service.GenerateKey(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, key)
}

func TestAuthService_GenerateKey_UnknownUser(t *testing.T) {
	t.Parallel()

	service, mockKeyStore := newTestService(t)
	mockKeyStore.EXPECT().
		FindUserByUsername(gomock.Any(), "ghost").
		Return(nil, stores.ErrUserNotFound)

	_, err := service.GenerateKey(context.Background(), "ghost")
	assertAuthError(t, err, "AUTH_1003", 401)
}
