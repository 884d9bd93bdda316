package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"request-analytics/internal/models"
	"request-analytics/internal/shared/configs"
	"request-analytics/internal/stores"
)

const (
	seedUsername = "test_user"
	seedPassword = "testpassword"
	seedAPIKey   = "test_key"

	csvTimeLayout = "2006-01-02 15:04:05"
)

// seed creates a demo user, a demo API key, and loads log fixtures from a CSV
// file with a created_at,method,endpoint,ip,process_time,status_code header.
func main() {
	configPath := flag.String("config", "./configs/configs.yml", "path to the config file")
	csvPath := flag.String("csv", "./fixtures/logs.csv", "path to the log fixtures CSV")
	flag.Parse()

	if err := run(*configPath, *csvPath); err != nil {
		fmt.Fprintf(os.Stderr, "Seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, csvPath string) error {
	cfg, err := configs.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := stores.OpenSQLite(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	keyStore := stores.NewKeyStore(db)
	logStore := stores.NewLogStore(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := keyStore.CreateUser(ctx, seedUsername, string(hash))
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	fmt.Println("Test user created")

	key, err := keyStore.CreateKey(ctx, seedAPIKey, &user.ID)
	if err != nil {
		return fmt.Errorf("failed to create api key: %w", err)
	}
	fmt.Println("Test API key created")

	count, err := loadLogs(ctx, logStore, key.ID, csvPath)
	if err != nil {
		return err
	}
	fmt.Printf("%d test logs created\n", count)

	return nil
}

func loadLogs(ctx context.Context, logStore stores.LogStore, apiKeyID int64, csvPath string) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open fixtures file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"created_at", "method", "endpoint", "ip", "process_time", "status_code"} {
		if _, ok := col[required]; !ok {
			return 0, fmt.Errorf("fixtures file missing column %q", required)
		}
	}

	count := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("failed to read csv row: %w", err)
		}

		record, err := recordFromRow(row, col, apiKeyID)
		if err != nil {
			return count, fmt.Errorf("row %d: %w", count+1, err)
		}
		if _, err := logStore.Insert(ctx, record); err != nil {
			return count, fmt.Errorf("row %d: %w", count+1, err)
		}
		count++
	}
	return count, nil
}

func recordFromRow(row []string, col map[string]int, apiKeyID int64) (*models.LogRecord, error) {
	createdAt, err := time.ParseInLocation(csvTimeLayout, row[col["created_at"]], time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at: %w", err)
	}
	processTime, err := strconv.ParseFloat(row[col["process_time"]], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid process_time: %w", err)
	}
	statusCode, err := strconv.Atoi(row[col["status_code"]])
	if err != nil {
		return nil, fmt.Errorf("invalid status_code: %w", err)
	}

	record := &models.LogRecord{
		CreatedAt:   createdAt,
		Method:      row[col["method"]],
		Endpoint:    row[col["endpoint"]],
		ProcessTime: processTime,
		StatusCode:  statusCode,
		APIKeyID:    apiKeyID,
	}
	if ip := row[col["ip"]]; ip != "" {
		record.IP = &ip
	}
	return record, nil
}
