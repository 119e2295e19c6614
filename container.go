package sealbox

import (
	"bytes"
)

// Container is a parsed sealbox blob.
//
// Layout (all offsets fixed, no length fields):
//
//	0   4   magic "ENC1"
//	4   1   version
//	5   16  salt
//	21  12  nonce
//	33  -   ciphertext || 16-byte GCM tag
type Container struct {
	Version    uint8           // Container format version
	Salt       [SaltSize]byte  // Salt for key derivation
	Nonce      [NonceSize]byte // Nonce for AES-GCM
	Ciphertext []byte          // Ciphertext with the tag appended
}

// NewContainer creates a version 1 container from its parts.
// The inputs are copied.
func NewContainer(salt, nonce, ciphertext []byte) (*Container, error) {
	if err := ValidateSalt(salt); err != nil {
		return nil, err
	}
	if err := ValidateNonce(nonce); err != nil {
		return nil, err
	}
	if len(ciphertext) < TagSize {
		return nil, &ValidationError{
			Field:   "ciphertext",
			Value:   len(ciphertext),
			Message: "ciphertext shorter than authentication tag",
			Err:     ErrInvalidCiphertext,
		}
	}

	c := &Container{
		Version:    CurrentVersion,
		Ciphertext: bytes.Clone(ciphertext),
	}
	copy(c.Salt[:], salt)
	copy(c.Nonce[:], nonce)
	return c, nil
}

// Size returns the encoded size of the container in bytes
func (c *Container) Size() int {
	return HeaderSize + len(c.Ciphertext)
}

// MarshalBinary encodes the container as MAGIC || VERSION || SALT || NONCE || CIPHERTEXT
func (c *Container) MarshalBinary() ([]byte, error) {
	if c.Version != CurrentVersion {
		return nil, NewFormatError(ErrUnsupportedVersion)
	}
	if len(c.Ciphertext) < TagSize {
		return nil, NewValidationError("ciphertext", len(c.Ciphertext), "ciphertext shorter than authentication tag")
	}

	buf := make([]byte, 0, c.Size())
	buf = append(buf, Magic...)
	buf = append(buf, c.Version)
	buf = append(buf, c.Salt[:]...)
	buf = append(buf, c.Nonce[:]...)
	buf = append(buf, c.Ciphertext...)
	return buf, nil
}

// UnmarshalBinary parses data into c. Length, magic and version are checked
// before anything is copied; data is never modified or retained.
func (c *Container) UnmarshalBinary(data []byte) error {
	if len(data) < MinContainerSize {
		return NewFormatError(ErrTruncated)
	}
	if !IsContainer(data) {
		return NewFormatError(ErrBadMagic)
	}
	if data[versionOffset] != CurrentVersion {
		return NewFormatError(ErrUnsupportedVersion)
	}

	c.Version = data[versionOffset]
	copy(c.Salt[:], data[saltOffset:nonceOffset])
	copy(c.Nonce[:], data[nonceOffset:HeaderSize])
	c.Ciphertext = bytes.Clone(data[HeaderSize:])
	return nil
}

// EncodeContainer assembles a container from its parts
func EncodeContainer(salt, nonce, ciphertext []byte) ([]byte, error) {
	c, err := NewContainer(salt, nonce, ciphertext)
	if err != nil {
		return nil, err
	}
	return c.MarshalBinary()
}

// DecodeContainer parses a container, failing with *FormatError on malformed input
func DecodeContainer(data []byte) (*Container, error) {
	c := new(Container)
	if err := c.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return c, nil
}

// IsContainer reports whether data starts with the container magic bytes
func IsContainer(data []byte) bool {
	return len(data) >= len(Magic) && string(data[:len(Magic)]) == Magic
}
