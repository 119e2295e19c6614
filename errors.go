package sealbox

import (
	"errors"
	"fmt"
)

// Error types represent the categories of failure a caller needs to tell apart

// ValidationError represents bad caller input, detected before any cryptographic work
type ValidationError struct {
	Field   string // The field or parameter that failed validation
	Value   any    // The invalid value (never secret material)
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// FormatError represents input that is not a container this package can read
type FormatError struct {
	Path    string // File path, if applicable
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *FormatError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("format error: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("format error: %s", e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// AuthenticationError is returned when the AEAD tag does not verify.
// A wrong passphrase, a modified container and mismatched associated data
// all produce the same error.
type AuthenticationError struct {
	Path    string // File path, if applicable
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *AuthenticationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("authentication error: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("authentication error: %s", e.Message)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// EntropyError reports a failure of the random source. It is not retryable.
type EntropyError struct {
	Err error // Underlying error
}

func (e *EntropyError) Error() string {
	if e.Err != nil && !errors.Is(e.Err, ErrEntropy) {
		return fmt.Sprintf("entropy error: %s: %v", ErrEntropy.Error(), e.Err)
	}
	return fmt.Sprintf("entropy error: %s", ErrEntropy.Error())
}

func (e *EntropyError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrEntropy}
	}
	return []error{ErrEntropy, e.Err}
}

// IOError represents a file system I/O error
type IOError struct {
	Operation string // "read", "write", "rename", "remove", etc.
	Path      string // File path
	Message   string // Human-readable error message
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("io error: %s %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("io error: %s: %s", e.Operation, e.Message)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// BatchError identifies which item of a batch failed
type BatchError struct {
	Index int   // Position of the failing item in the input
	Err   error // The item's error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// Sentinel errors
var (
	ErrEmptyPassphrase    = errors.New("passphrase cannot be empty")
	ErrEmptyPlaintext     = errors.New("plaintext cannot be empty")
	ErrPlaintextTooLarge  = errors.New("plaintext exceeds maximum size")
	ErrInvalidKey         = errors.New("invalid encryption key")
	ErrInvalidNonce       = errors.New("invalid nonce")
	ErrInvalidSalt        = errors.New("invalid salt")
	ErrInvalidCiphertext  = errors.New("invalid ciphertext")
	ErrTruncated          = errors.New("container too short")
	ErrBadMagic           = errors.New("not a sealbox container")
	ErrUnsupportedVersion = errors.New("unsupported container version")
	ErrBadEncoding        = errors.New("invalid base64 encoding")
	ErrAuthFailed         = errors.New("authentication failed - wrong passphrase or data was modified")
	ErrEntropy            = errors.New("random source failed")
	ErrNilConfig          = errors.New("config cannot be nil")
	ErrNilFileSystem      = errors.New("filesystem cannot be nil")
	ErrNilSealer          = errors.New("sealer cannot be nil")
)

// Helper functions for creating structured errors

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) error {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NewFormatError creates a new format error wrapping one of the format sentinels
func NewFormatError(err error) error {
	return &FormatError{
		Message: err.Error(),
		Err:     err,
	}
}

// NewAuthenticationError creates a new authentication error
func NewAuthenticationError(path string) error {
	return &AuthenticationError{
		Path:    path,
		Message: ErrAuthFailed.Error(),
		Err:     ErrAuthFailed,
	}
}

// NewIOError creates a new I/O error
func NewIOError(operation, path string, err error) error {
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   err.Error(),
		Err:       err,
	}
}

// Error checking helpers

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsFormatError checks if an error is a format error
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsAuthenticationError checks if an error is an authentication error
func IsAuthenticationError(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}

// IsEntropyError checks if an error is a random source failure
func IsEntropyError(err error) bool {
	var ee *EntropyError
	return errors.As(err, &ee)
}

// IsIOError checks if an error is an I/O error
func IsIOError(err error) bool {
	var ie *IOError
	return errors.As(err, &ie)
}

// withPath attaches a file path to format and authentication errors
func withPath(err error, path string) error {
	var fe *FormatError
	if errors.As(err, &fe) {
		cp := *fe
		cp.Path = path
		return &cp
	}
	var ae *AuthenticationError
	if errors.As(err, &ae) {
		cp := *ae
		cp.Path = path
		return &cp
	}
	return err
}
