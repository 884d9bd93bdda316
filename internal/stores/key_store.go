package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"request-analytics/internal/models"
)

var (
	ErrKeyNotFound       = errors.New("api key not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// KeyStore persists users and the API keys that own log records. Deleting a
// key cascades to its logs (enforced by the schema).
//
//go:generate mockgen -source=key_store.go -destination=./mocks/key_store_mock.go -package=mocks
type KeyStore interface {
	CreateUser(ctx context.Context, username, hashedPassword string) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateKey(ctx context.Context, key string, userID *int64) (*models.APIKey, error)
	FindByKey(ctx context.Context, key string) (*models.APIKey, error)
	DeleteKey(ctx context.Context, id int64) error
}

type sqliteKeyStore struct {
	db *sql.DB
}

func NewKeyStore(db *sql.DB) KeyStore {
	return &sqliteKeyStore{db: db}
}

func (s *sqliteKeyStore) CreateUser(ctx context.Context, username, hashedPassword string) (*models.User, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, hashed_password) VALUES (?, ?)`,
		username, hashedPassword)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read created user id: %w", err)
	}
	return &models.User{ID: id, Username: username, HashedPassword: hashedPassword}, nil
}

func (s *sqliteKeyStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, hashed_password FROM users WHERE username = ?`, username).
		Scan(&user.ID, &user.Username, &user.HashedPassword)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (s *sqliteKeyStore) CreateKey(ctx context.Context, key string, userID *int64) (*models.APIKey, error) {
	var uid any
	if userID != nil {
		uid = *userID
	}
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO api_keys (api_key, user_id) VALUES (?, ?)`, key, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to create api key: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read created key id: %w", err)
	}
	return &models.APIKey{ID: id, Key: key, UserID: userID}, nil
}

func (s *sqliteKeyStore) FindByKey(ctx context.Context, key string) (*models.APIKey, error) {
	var (
		apiKey models.APIKey
		userID sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, api_key, user_id FROM api_keys WHERE api_key = ?`, key).
		Scan(&apiKey.ID, &apiKey.Key, &userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to find api key: %w", err)
	}
	if userID.Valid {
		apiKey.UserID = &userID.Int64
	}
	return &apiKey, nil
}

func (s *sqliteKeyStore) DeleteKey(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM api_keys WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete api key: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrKeyNotFound
	}
	return nil
}
