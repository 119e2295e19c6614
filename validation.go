package sealbox

import (
	"fmt"
)

// Input validation helpers. Each returns a *ValidationError wrapping the matching sentinel.

// ValidatePassphrase checks that a passphrase is present
func ValidatePassphrase(passphrase []byte) error {
	if len(passphrase) == 0 {
		return &ValidationError{
			Field:   "passphrase",
			Message: ErrEmptyPassphrase.Error(),
			Err:     ErrEmptyPassphrase,
		}
	}
	return nil
}

// ValidatePlaintext checks that a payload is non-empty and no larger than maxSize.
// A maxSize of zero disables the upper bound.
func ValidatePlaintext(plaintext []byte, maxSize int) error {
	if len(plaintext) == 0 {
		return &ValidationError{
			Field:   "plaintext",
			Message: ErrEmptyPlaintext.Error(),
			Err:     ErrEmptyPlaintext,
		}
	}
	if maxSize > 0 && len(plaintext) > maxSize {
		return &ValidationError{
			Field:   "plaintext",
			Value:   len(plaintext),
			Message: fmt.Sprintf("size too large: got %d bytes, maximum is %d", len(plaintext), maxSize),
			Err:     ErrPlaintextTooLarge,
		}
	}
	return nil
}

// ValidateSalt checks that a salt is exactly SaltSize bytes
func ValidateSalt(salt []byte) error {
	if len(salt) != SaltSize {
		return &ValidationError{
			Field:   "salt",
			Value:   len(salt),
			Message: sizeMismatch("salt", len(salt), SaltSize),
			Err:     ErrInvalidSalt,
		}
	}
	return nil
}

// ValidateNonce checks that a nonce is exactly NonceSize bytes
func ValidateNonce(nonce []byte) error {
	if len(nonce) != NonceSize {
		return &ValidationError{
			Field:   "nonce",
			Value:   len(nonce),
			Message: sizeMismatch("nonce", len(nonce), NonceSize),
			Err:     ErrInvalidNonce,
		}
	}
	return nil
}

// ValidateKey checks that a key is exactly KeySize bytes
func ValidateKey(key []byte) error {
	if len(key) != KeySize {
		return &ValidationError{
			Field:   "key",
			Value:   len(key),
			Message: sizeMismatch("key", len(key), KeySize),
			Err:     ErrInvalidKey,
		}
	}
	return nil
}

// ValidateFilePath checks if a file path is valid (not empty)
func ValidateFilePath(path string) error {
	if path == "" {
		return &ValidationError{
			Field:   "path",
			Message: "file path cannot be empty",
		}
	}
	return nil
}
