package password

import (
	"strings"
	"testing"
)

func TestGetHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "regular password",
			password: "password123",
			wantErr:  false,
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  false,
		},
		{
			name:     "password with spaces",
			password: "my secret password",
			wantErr:  false,
		},
		{
			name:     "unicode password",
			password: "пароль密码",
			wantErr:  false,
		},
		{
			name:     "too long password",
			password: strings.Repeat("a", 100),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := GetHash(tt.password)
			if tt.wantErr {
				if err == nil {
					t.Errorf("GetHash() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("GetHash() unexpected error: %v", err)
				return
			}
			if hash == "" {
				t.Errorf("GetHash() returned empty hash")
			}
			if hash == tt.password {
				t.Errorf("GetHash() returned plaintext password")
			}
		})
	}
}

func TestCompareHash(t *testing.T) {
	hash, err := GetHash("correct-password")
	if err != nil {
		t.Fatalf("GetHash() failed: %v", err)
	}

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  bool
	}{
		{
			name:     "matching password",
			hash:     hash,
			password: "correct-password",
			wantErr:  false,
		},
		{
			name:     "wrong password",
			hash:     hash,
			password: "wrong-password",
			wantErr:  true,
		},
		{
			name:     "empty password against real hash",
			hash:     hash,
			password: "",
			wantErr:  true,
		},
		{
			name:     "invalid hash",
			hash:     "not-a-bcrypt-hash",
			password: "correct-password",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareHash(tt.hash, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("CompareHash() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetHash_DifferentHashesForSamePassword(t *testing.T) {
	first, err := GetHash("same-password")
	if err != nil {
		t.Fatalf("GetHash() failed: %v", err)
	}
	second, err := GetHash("same-password")
	if err != nil {
		t.Fatalf("GetHash() failed: %v", err)
	}
	// bcrypt использует случайную соль, хэши не должны совпадать
	if first == second {
		t.Errorf("GetHash() returned identical hashes for two calls")
	}
	if err := CompareHash(first, "same-password"); err != nil {
		t.Errorf("CompareHash() failed for first hash: %v", err)
	}
	if err := CompareHash(second, "same-password"); err != nil {
		t.Errorf("CompareHash() failed for second hash: %v", err)
	}
}
