package sealbox

import (
	"errors"
	"testing"
)

func TestValidatePlaintext(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
		maxSize   int
		wantErr   error
	}{
		{name: "ok", plaintext: []byte("x"), maxSize: 10},
		{name: "no limit", plaintext: make([]byte, 1000), maxSize: 0},
		{name: "at limit", plaintext: make([]byte, 10), maxSize: 10},
		{name: "over limit", plaintext: make([]byte, 11), maxSize: 10, wantErr: ErrPlaintextTooLarge},
		{name: "nil", plaintext: nil, maxSize: 10, wantErr: ErrEmptyPlaintext},
		{name: "empty", plaintext: []byte{}, maxSize: 10, wantErr: ErrEmptyPlaintext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlaintext(tt.plaintext, tt.maxSize)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePlaintext() error = %v", err)
				}
				return
			}
			if !IsValidationError(err) || !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePlaintext() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSizes(t *testing.T) {
	tests := []struct {
		name     string
		validate func([]byte) error
		size     int
		sentinel error
	}{
		{name: "salt", validate: ValidateSalt, size: SaltSize, sentinel: ErrInvalidSalt},
		{name: "nonce", validate: ValidateNonce, size: NonceSize, sentinel: ErrInvalidNonce},
		{name: "key", validate: ValidateKey, size: KeySize, sentinel: ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.validate(make([]byte, tt.size)); err != nil {
				t.Errorf("correct size rejected: %v", err)
			}
			for _, n := range []int{0, tt.size - 1, tt.size + 1} {
				err := tt.validate(make([]byte, n))
				var ve *ValidationError
				if !errors.As(err, &ve) || !errors.Is(err, tt.sentinel) {
					t.Errorf("size %d: error = %v, want %v", n, err, tt.sentinel)
					continue
				}
				if ve.Field != tt.name {
					t.Errorf("Field = %q, want %q", ve.Field, tt.name)
				}
				if ve.Value != n {
					t.Errorf("Value = %v, want %d", ve.Value, n)
				}
			}
			if err := tt.validate(nil); err == nil {
				t.Error("nil must be rejected")
			}
		})
	}
}

func TestValidatePassphrase(t *testing.T) {
	if err := ValidatePassphrase([]byte("x")); err != nil {
		t.Errorf("ValidatePassphrase() error = %v", err)
	}

	err := ValidatePassphrase(nil)
	var ve *ValidationError
	if !errors.As(err, &ve) || !errors.Is(err, ErrEmptyPassphrase) {
		t.Fatalf("ValidatePassphrase(nil) = %v", err)
	}
	if ve.Value != nil {
		t.Error("passphrase validation must not record the value")
	}
}

func TestValidateFilePath(t *testing.T) {
	if err := ValidateFilePath("/a.box"); err != nil {
		t.Errorf("ValidateFilePath() error = %v", err)
	}
	if err := ValidateFilePath(""); !IsValidationError(err) {
		t.Errorf("ValidateFilePath(\"\") = %v, want ValidationError", err)
	}
}
