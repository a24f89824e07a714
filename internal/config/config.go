package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process configuration, read once at startup.
//
// Supported env vars (local-friendly):
//   - PORT (default: 8080)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - DB_NAME (default: crewlo) namespace used as table name prefix
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_AUTO_CREATE_TABLES (default: true)
//   - LOG_LEVEL (default: info), LOG_FORMAT (json|text, default: json)
//   - SHUTDOWN_TIMEOUT (default: 10s)
type Config struct {
	Port            int
	ShutdownTimeout time.Duration
	DynamoDB        DynamoDBConfig
	Log             LogConfig
}

type DynamoDBConfig struct {
	Endpoint         string
	Namespace        string
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	AutoCreateTables bool
}

type LogConfig struct {
	Level  string
	Format string
}

// TableName returns the namespaced table for a record kind, e.g. crewlo_projects.
func (c DynamoDBConfig) TableName(kind string) string {
	if c.Namespace == "" {
		return kind
	}
	return c.Namespace + "_" + kind
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil || port <= 0 {
		return Config{}, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}

	shutdown, err := time.ParseDuration(getenvDefault("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	autoCreate, err := strconv.ParseBool(getenvDefault("DYNAMODB_AUTO_CREATE_TABLES", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DYNAMODB_AUTO_CREATE_TABLES: %w", err)
	}

	return Config{
		Port:            port,
		ShutdownTimeout: shutdown,
		DynamoDB: DynamoDBConfig{
			Endpoint:         strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
			Namespace:        strings.TrimSpace(getenvDefault("DB_NAME", "crewlo")),
			Region:           getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:      getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			AutoCreateTables: autoCreate,
		},
		Log: LogConfig{
			Level:  strings.ToLower(getenvDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getenvDefault("LOG_FORMAT", "json")),
		},
	}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
