package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("VACATION_ALLOW_OVERLAP", "true")
	t.Setenv("JWT_TTL", "90m")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %s", cfg.Port)
	}
	if !cfg.Vacations.AllowOverlap {
		t.Error("AllowOverlap should be read from the environment")
	}
	if cfg.Auth.JWTTTL != 90*time.Minute {
		t.Errorf("JWTTTL = %v", cfg.Auth.JWTTTL)
	}
	if cfg.Holidays.Timeout != 10*time.Second || cfg.Holidays.CacheTTL != 24*time.Hour {
		t.Errorf("Holidays = %+v", cfg.Holidays)
	}
	if cfg.DB.SSLMode != "disable" {
		t.Errorf("SSLMode = %s", cfg.DB.SSLMode)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("LABORAL_TEST_ONLY=1\nAWS_PREFIX=contracts-test\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("LABORAL_TEST_ONLY")
		os.Unsetenv("AWS_PREFIX")
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AWS.Prefix != "contracts-test" {
		t.Errorf("AWS.Prefix = %s, want value from env file", cfg.AWS.Prefix)
	}
	if cfg.AWS.Enabled() {
		t.Error("S3 should be disabled without a bucket")
	}
}

func TestValidate(t *testing.T) {
	t.Setenv("HOLIDAYS_TIMEOUT", "0s")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("Load() should reject a zero holiday timeout")
	}
}

func TestDSN(t *testing.T) {
	c := DBConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "laboral", SSLMode: "disable"}
	want := "host=db port=5432 user=u password=p dbname=laboral sslmode=disable"
	if got := c.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

func TestJWTSecretOrDefault(t *testing.T) {
	if _, insecure := (AuthConfig{}).JWTSecretOrDefault(); !insecure {
		t.Error("empty secret should report the insecure fallback")
	}
	if s, insecure := (AuthConfig{JWTSecret: "s3cret"}).JWTSecretOrDefault(); insecure || s != "s3cret" {
		t.Errorf("JWTSecretOrDefault() = %q, %v", s, insecure)
	}
}
