package config

import (
	"os"
	"strings"
	"testing"
)

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name       string
		bcryptCost string
		wantCost   int
		wantErr    bool
	}{
		{name: "default cost", bcryptCost: "", wantCost: 12},
		{name: "valid cost", bcryptCost: "12", wantCost: 12},
		{name: "minimum cost", bcryptCost: "10", wantCost: 10},
		{name: "maximum cost", bcryptCost: "14", wantCost: 14},
		{name: "cost too low", bcryptCost: "9", wantErr: true},
		{name: "cost too high", bcryptCost: "15", wantErr: true},
		{name: "negative cost", bcryptCost: "-5", wantErr: true},
		{name: "zero cost", bcryptCost: "0", wantErr: true},
		{name: "non-numeric cost", bcryptCost: "invalid", wantErr: true},
		{name: "float cost", bcryptCost: "12.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalCost := os.Getenv("BCRYPT_COST")
			defer os.Setenv("BCRYPT_COST", originalCost)

			if tt.bcryptCost != "" {
				os.Setenv("BCRYPT_COST", tt.bcryptCost)
			} else {
				os.Unsetenv("BCRYPT_COST")
			}

			config, err := NewPasswordConfig()
			if (err != nil) != tt.wantErr {
				t.Errorf("NewPasswordConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && config.BcryptCost != tt.wantCost {
				t.Errorf("NewPasswordConfig() BcryptCost = %v, want %v", config.BcryptCost, tt.wantCost)
			}
		})
	}
}

func TestPasswordConfig_HashPassword(t *testing.T) {
	config, err := NewPasswordConfig()
	if err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}

	password := "test-password-123"
	hash, err := config.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "" {
		t.Error("HashPassword() returned empty hash")
	}

	// Hash should be different each time (bcrypt includes salt)
	hash2, err := config.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == hash2 {
		t.Error("HashPassword() should produce different hashes for same password (salt)")
	}
}

func TestPasswordConfig_VerifyPassword(t *testing.T) {
	config, err := NewPasswordConfig()
	if err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}

	password := "test-password-123"
	hash, err := config.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !config.VerifyPassword(password, hash) {
		t.Error("VerifyPassword() should return true for correct password")
	}

	if config.VerifyPassword("wrong-password", hash) {
		t.Error("VerifyPassword() should return false for incorrect password")
	}
}

func TestPasswordConfig_EmptyPassword(t *testing.T) {
	config, err := NewPasswordConfig()
	if err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}

	hash, err := config.HashPassword("")
	if err != nil {
		t.Fatalf("HashPassword() with empty password should not error: %v", err)
	}

	if !config.VerifyPassword("", hash) {
		t.Error("VerifyPassword() should return true for empty password with correct hash")
	}

	if config.VerifyPassword("not-empty", hash) {
		t.Error("VerifyPassword() should return false for non-empty password against empty password hash")
	}
}

func TestPasswordConfig_PasswordExceeding72Bytes(t *testing.T) {
	config, err := NewPasswordConfig()
	if err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}

	// Bcrypt errors when password exceeds 72 bytes (does not truncate)
	veryLongPassword := strings.Repeat("a", 100)
	hash, err := config.HashPassword(veryLongPassword)
	if err == nil {
		t.Error("HashPassword() should error when password exceeds 72 bytes")
	}
	if hash != "" {
		t.Error("HashPassword() should return empty hash when password exceeds 72 bytes")
	}
}

func TestPasswordConfig_MalformedHashes(t *testing.T) {
	config, err := NewPasswordConfig()
	if err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}

	malformedHashes := []string{
		"",
		"not-a-hash",
		"$2a$12$invalid",
		"invalid$format",
	}

	for _, malformed := range malformedHashes {
		if config.VerifyPassword("test", malformed) {
			t.Errorf("VerifyPassword() should return false for malformed hash: %q", malformed)
		}
	}
}

func BenchmarkHashPassword_Cost12(b *testing.B) {
	originalCost := os.Getenv("BCRYPT_COST")
	defer os.Setenv("BCRYPT_COST", originalCost)

	os.Setenv("BCRYPT_COST", "12")
	config, _ := NewPasswordConfig()
	password := "benchmark-password-123"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = config.HashPassword(password)
	}
}

func BenchmarkVerifyPassword(b *testing.B) {
	config, _ := NewPasswordConfig()
	password := "benchmark-password-123"
	hash, _ := config.HashPassword(password)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = config.VerifyPassword(password, hash)
	}
}
