package sealbox

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// CipherEngine provides AEAD encryption/decryption under a single key
type CipherEngine interface {
	// Seal encrypts and authenticates plaintext, returning ciphertext with the tag appended
	Seal(nonce, plaintext, associatedData []byte) ([]byte, error)

	// Open verifies and decrypts ciphertext in one step.
	// On failure no plaintext is returned.
	Open(nonce, ciphertext, associatedData []byte) ([]byte, error)

	// NonceSize returns the size of nonces in bytes
	NonceSize() int

	// Overhead returns the authentication tag size
	Overhead() int
}

// AESGCMEngine implements CipherEngine using AES-256-GCM
type AESGCMEngine struct {
	aead cipher.AEAD
}

// NewAESGCMEngine creates a new AES-256-GCM cipher engine
func NewAESGCMEngine(key []byte) (*AESGCMEngine, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMEngine{aead: aead}, nil
}

// Seal encrypts plaintext using AES-256-GCM
func (e *AESGCMEngine) Seal(nonce, plaintext, associatedData []byte) ([]byte, error) {
	if err := ValidateNonce(nonce); err != nil {
		return nil, err
	}

	return e.aead.Seal(nil, nonce, plaintext, associatedData), nil
}

// Open decrypts ciphertext using AES-256-GCM
func (e *AESGCMEngine) Open(nonce, ciphertext, associatedData []byte) ([]byte, error) {
	if err := ValidateNonce(nonce); err != nil {
		return nil, err
	}
	if len(ciphertext) < e.Overhead() {
		return nil, NewAuthenticationError("")
	}

	plaintext, err := e.aead.Open(nil, nonce, ciphertext, associatedData)
	if err != nil {
		return nil, NewAuthenticationError("")
	}

	return plaintext, nil
}

// NonceSize returns the nonce size for AES-GCM (12 bytes)
func (e *AESGCMEngine) NonceSize() int {
	return e.aead.NonceSize()
}

// Overhead returns the authentication tag size (16 bytes)
func (e *AESGCMEngine) Overhead() int {
	return e.aead.Overhead()
}
