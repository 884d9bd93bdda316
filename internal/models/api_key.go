package models

// APIKey is an opaque bearer credential identifying a caller. It owns zero or
// more LogRecords; deleting a key cascades to its logs.
type APIKey struct {
	ID     int64
	Key    string
	UserID *int64
}

// User is an account that may own API keys.
type User struct {
	ID             int64
	Username       string
	HashedPassword string
}
