package sealbox

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey stretches a passphrase and a 16-byte salt into a 32-byte AES-256 key
// using PBKDF2-HMAC-SHA256 with PBKDF2Iterations rounds.
//
// The result is deterministic for a given passphrase and salt. Callers own the
// returned key and should wipe it when done.
func DeriveKey(passphrase, salt []byte) ([]byte, error) {
	if err := ValidatePassphrase(passphrase); err != nil {
		return nil, err
	}
	if err := ValidateSalt(salt); err != nil {
		return nil, err
	}
	return pbkdf2Key(passphrase, salt, PBKDF2Iterations, KeySize), nil
}

func pbkdf2Key(passphrase, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key(passphrase, salt, iterations, keyLen, sha256.New)
}
