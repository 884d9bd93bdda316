package stores

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Timestamps are stored as UTC text in this layout so that lexicographic
// comparison matches chronological order and strftime bucketing works.
const timeLayout = "2006-01-02 15:04:05"

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	hashed_password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS api_keys (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	api_key TEXT NOT NULL UNIQUE,
	user_id INTEGER REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS api_logs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TEXT NOT NULL,
	method TEXT NOT NULL,
	endpoint TEXT NOT NULL,
	ip TEXT,
	process_time REAL NOT NULL CHECK (process_time >= 0),
	status_code INTEGER NOT NULL CHECK (status_code BETWEEN 100 AND 599),
	api_key_id INTEGER NOT NULL REFERENCES api_keys(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_api_logs_owner_created ON api_logs(api_key_id, created_at);
CREATE INDEX IF NOT EXISTS idx_api_logs_status ON api_logs(status_code);
CREATE INDEX IF NOT EXISTS idx_api_logs_endpoint ON api_logs(endpoint);
CREATE INDEX IF NOT EXISTS idx_api_logs_ip ON api_logs(ip);
`

// OpenSQLite opens (creating if needed) the database at path and applies the
// schema. The caller owns the returned handle.
//
// foreign_keys is a per-connection pragma, so it goes into the DSN: the
// driver then applies it to every connection the pool opens, not just the
// one that happens to run the schema.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return db, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.ParseInLocation(timeLayout, s, time.UTC)
}
