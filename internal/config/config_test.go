package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "SHUTDOWN_TIMEOUT", "DYNAMODB_ENDPOINT", "DB_NAME", "AWS_REGION", "DYNAMODB_AUTO_CREATE_TABLES", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected server defaults: %+v", cfg)
	}
	if cfg.DynamoDB.Namespace != "crewlo" || cfg.DynamoDB.Region != "us-east-1" || !cfg.DynamoDB.AutoCreateTables {
		t.Fatalf("unexpected dynamodb defaults: %+v", cfg.DynamoDB)
	}
	if cfg.DynamoDB.Endpoint != "" {
		t.Fatalf("expected no endpoint, got %q", cfg.DynamoDB.Endpoint)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log defaults: %+v", cfg.Log)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DYNAMODB_ENDPOINT", " http://localhost:8000 ")
	t.Setenv("DB_NAME", "test_db")
	t.Setenv("DYNAMODB_AUTO_CREATE_TABLES", "false")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9090 || cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("unexpected server config: %+v", cfg)
	}
	if cfg.DynamoDB.Endpoint != "http://localhost:8000" || cfg.DynamoDB.AutoCreateTables {
		t.Fatalf("unexpected dynamodb config: %+v", cfg.DynamoDB)
	}
	if got := cfg.DynamoDB.TableName("projects"); got != "test_db_projects" {
		t.Fatalf("expected test_db_projects, got %q", got)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected lower-cased level, got %q", cfg.Log.Level)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"port":        {"PORT", "abc"},
		"timeout":     {"SHUTDOWN_TIMEOUT", "soon"},
		"auto create": {"DYNAMODB_AUTO_CREATE_TABLES", "maybe"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", kv[0], kv[1])
			}
		})
	}
}

func TestTableName_EmptyNamespace(t *testing.T) {
	if got := (DynamoDBConfig{}).TableName("leads"); got != "leads" {
		t.Fatalf("expected leads, got %q", got)
	}
}
