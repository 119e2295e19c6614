// Package sealbox provides password-based authenticated encryption of byte
// payloads into small, self-describing containers.
//
// # Overview
//
// Encrypt takes a payload and a passphrase and returns one opaque blob that
// can be stored or transmitted. Decrypt returns the original payload only if
// the passphrase is correct and the blob has not been altered.
//
//	container, err := sealbox.Encrypt([]byte("Hello, World!"), "correct horse battery staple")
//	if err != nil {
//	    return err
//	}
//
//	plaintext, err := sealbox.Decrypt(container, "correct horse battery staple")
//
// EncryptToString and DecryptString do the same with a base64 text form for
// storage in text contexts.
//
// # Algorithms
//
// The algorithm set is fixed and not negotiable through the container:
//   - PBKDF2-HMAC-SHA256, 210,000 iterations, 16-byte random salt, 32-byte key
//   - AES-256-GCM, 12-byte random nonce, 16-byte tag
//
// Every call to Encrypt draws a new salt and therefore a new key, so a
// (key, nonce) pair is never used twice.
//
// # Container Format
//
//	Offset  Length  Field
//	0       4       Magic "ENC1" (0x45 0x4E 0x43 0x31)
//	4       1       Version (0x01)
//	5       16      Salt
//	21      12      Nonce
//	33      n+16    Ciphertext followed by the GCM tag
//
// A container is at least 49 bytes. Shorter input, a different magic or any
// version other than 1 is rejected before key derivation.
//
// # Errors
//
// Failures are reported with distinct types so callers never need to parse
// messages:
//   - *ValidationError: empty passphrase, empty or oversized payload
//   - *FormatError: truncated container, bad magic, unknown version, bad base64
//   - *AuthenticationError: wrong passphrase, modified container or wrong
//     associated data; these cases are deliberately indistinguishable
//   - *EntropyError: the random source failed; not retryable
//
// # Storage
//
// Store writes and reads containers on any absfs.FileSystem, using a
// temporary file and rename so a reader never sees a partial container.
//
// # Security Considerations
//
// The passphrase copy and the derived key are wiped before every return.
// The caller's own passphrase string and plaintext buffers are outside this
// package's control.
package sealbox
