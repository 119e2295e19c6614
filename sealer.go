package sealbox

import (
	"fmt"
)

// Sealer encrypts payloads into self-describing containers under a passphrase.
//
// A Sealer holds no mutable state after construction and is safe for
// concurrent use. Every call derives a fresh key from a fresh salt, so a
// (key, nonce) pair is never reused.
type Sealer struct {
	config Config
}

// New creates a Sealer from config. Zero fields take their defaults.
func New(config *Config) (*Sealer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Sealer{config: config.withDefaults()}, nil
}

var defaultSealer = &Sealer{config: *DefaultConfig()}

// Default returns the shared Sealer used by the package-level functions
func Default() *Sealer {
	return defaultSealer
}

// Encrypt seals plaintext under passphrase and returns the raw container bytes
func (s *Sealer) Encrypt(plaintext []byte, passphrase string) ([]byte, error) {
	return s.EncryptWithAssociatedData(plaintext, passphrase, nil)
}

// Decrypt opens a container produced by Encrypt
func (s *Sealer) Decrypt(container []byte, passphrase string) ([]byte, error) {
	return s.DecryptWithAssociatedData(container, passphrase, nil)
}

// EncryptWithAssociatedData is Encrypt with additional authenticated data.
// The associated data is not stored in the container; the same bytes must be
// supplied to DecryptWithAssociatedData.
func (s *Sealer) EncryptWithAssociatedData(plaintext []byte, passphrase string, associatedData []byte) ([]byte, error) {
	if err := ValidatePlaintext(plaintext, s.config.MaxPlaintextSize); err != nil {
		return nil, err
	}

	pass := passphraseBytes(passphrase)
	defer wipe(pass)
	if err := ValidatePassphrase(pass); err != nil {
		return nil, err
	}

	salt, nonce, err := generateSaltAndNonce(s.config.Random)
	if err != nil {
		return nil, err
	}

	key, err := DeriveKey(pass, salt)
	if err != nil {
		return nil, err
	}
	defer wipe(key)

	engine, err := NewAESGCMEngine(key)
	if err != nil {
		return nil, err
	}

	ciphertext, err := engine.Seal(nonce, plaintext, associatedData)
	if err != nil {
		return nil, err
	}

	return EncodeContainer(salt, nonce, ciphertext)
}

// DecryptWithAssociatedData opens a container sealed with EncryptWithAssociatedData
func (s *Sealer) DecryptWithAssociatedData(container []byte, passphrase string, associatedData []byte) ([]byte, error) {
	pass := passphraseBytes(passphrase)
	defer wipe(pass)
	if err := ValidatePassphrase(pass); err != nil {
		return nil, err
	}

	c, err := DecodeContainer(container)
	if err != nil {
		return nil, err
	}

	key, err := DeriveKey(pass, c.Salt[:])
	if err != nil {
		return nil, err
	}
	defer wipe(key)

	engine, err := NewAESGCMEngine(key)
	if err != nil {
		return nil, err
	}

	return engine.Open(c.Nonce[:], c.Ciphertext, associatedData)
}

// EncryptToString is Encrypt followed by EncodeToString
func (s *Sealer) EncryptToString(plaintext []byte, passphrase string) (string, error) {
	container, err := s.Encrypt(plaintext, passphrase)
	if err != nil {
		return "", err
	}
	return EncodeToString(container), nil
}

// DecryptString is DecodeString followed by Decrypt
func (s *Sealer) DecryptString(text string, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ValidatePassphrase(nil)
	}
	container, err := DecodeString(text)
	if err != nil {
		return nil, err
	}
	return s.Decrypt(container, passphrase)
}

// Encrypt seals plaintext with the default Sealer
func Encrypt(plaintext []byte, passphrase string) ([]byte, error) {
	return defaultSealer.Encrypt(plaintext, passphrase)
}

// Decrypt opens a container with the default Sealer
func Decrypt(container []byte, passphrase string) ([]byte, error) {
	return defaultSealer.Decrypt(container, passphrase)
}

// EncryptToString seals plaintext with the default Sealer and returns base64 text
func EncryptToString(plaintext []byte, passphrase string) (string, error) {
	return defaultSealer.EncryptToString(plaintext, passphrase)
}

// DecryptString opens base64 text produced by EncryptToString
func DecryptString(text string, passphrase string) ([]byte, error) {
	return defaultSealer.DecryptString(text, passphrase)
}
