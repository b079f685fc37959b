package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "ledger",
		},
		"secretKey": map[string]any{
			"token": "",
		},
		"auth": map[string]any{
			"tokenTTL": "24h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_DBNAME", want: "postgres.dbName"},
		{envKey: "SECRETKEY_TOKEN", want: "secretKey.token"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()

	if cfg.Postgres.Host != "localhost" || cfg.Postgres.Port != 5432 {
		t.Fatalf("unexpected postgres defaults: %s:%d", cfg.Postgres.Host, cfg.Postgres.Port)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Fatalf("unexpected bcrypt cost default: %d", cfg.Auth.BcryptCost)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Fatalf("unexpected token TTL default: %s", cfg.Auth.TokenTTL)
	}
	if cfg.SecretKey.Token != "" {
		t.Fatalf("secret must not receive a default, got %q", cfg.SecretKey.Token)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	var cfg Config
	cfg.Postgres.Host = "db.internal"
	cfg.Auth.TokenTTL = time.Hour
	cfg.applyDefaults()

	if cfg.Postgres.Host != "db.internal" {
		t.Fatalf("explicit host overwritten: %s", cfg.Postgres.Host)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Fatalf("explicit token TTL overwritten: %s", cfg.Auth.TokenTTL)
	}
}
