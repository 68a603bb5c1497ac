package auth

import (
	"testing"
	"time"

	"github.com/Abraxas-365/laboral/pkg/errx"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.GenerateAccessToken("user-1", "ana@example.cl")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "ana@example.cl" {
		t.Errorf("claims = %+v", claims)
	}
	if time.Until(claims.ExpiresAt) <= 0 {
		t.Errorf("ExpiresAt = %v, want in the future", claims.ExpiresAt)
	}
}

func TestJWTService_Rejects(t *testing.T) {
	good := NewJWTService("test-secret", time.Hour)
	expired := NewJWTService("test-secret", time.Nanosecond)
	other := NewJWTService("other-secret", time.Hour)

	expiredToken, _ := expired.GenerateAccessToken("user-1", "a@b.cl")
	foreignToken, _ := other.GenerateAccessToken("user-1", "a@b.cl")
	time.Sleep(10 * time.Millisecond)

	tests := map[string]string{
		"garbage":      "not-a-token",
		"expired":      expiredToken,
		"wrong secret": foreignToken,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := good.ValidateAccessToken(token)
			if !errx.IsCode(err, CodeInvalidToken) {
				t.Errorf("error = %v, want %s", err, CodeInvalidToken)
			}
		})
	}
}

func TestNewJWTService_DefaultTTL(t *testing.T) {
	if got := NewJWTService("s", 0).ttl; got != DefaultTokenTTL {
		t.Errorf("ttl = %v, want %v", got, DefaultTokenTTL)
	}
}
