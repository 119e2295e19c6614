package sealbox

import "fmt"

const (
	// Magic identifies sealbox containers (ASCII: "ENC1")
	Magic = "ENC1"

	// CurrentVersion is the only container version this package reads or writes
	CurrentVersion = uint8(1)

	// SaltSize is the size of the PBKDF2 salt in bytes
	SaltSize = 16

	// NonceSize is the AES-GCM nonce size in bytes
	NonceSize = 12

	// KeySize is the derived AES-256 key size in bytes
	KeySize = 32

	// TagSize is the AES-GCM authentication tag size in bytes
	TagSize = 16

	// PBKDF2Iterations is the fixed PBKDF2-HMAC-SHA256 work factor.
	// It is never read from a container.
	PBKDF2Iterations = 210000

	// DefaultMaxPlaintextSize bounds the payload accepted by Encrypt (64 MiB)
	DefaultMaxPlaintextSize = 64 << 20
)

// Container layout offsets
const (
	magicOffset   = 0
	versionOffset = magicOffset + len(Magic)
	saltOffset    = versionOffset + 1
	nonceOffset   = saltOffset + SaltSize

	// HeaderSize is the number of bytes before the ciphertext: 4 + 1 + 16 + 12 = 33
	HeaderSize = nonceOffset + NonceSize

	// MinContainerSize is the smallest well-formed container: a header plus an empty-message tag
	MinContainerSize = HeaderSize + TagSize
)

// Config contains configuration for a Sealer
type Config struct {
	// MaxPlaintextSize is the largest payload Encrypt accepts.
	// Zero means DefaultMaxPlaintextSize.
	MaxPlaintextSize int

	// Random supplies salts and nonces. Nil means DefaultRandomSource().
	Random RandomSource

	// Parallel controls EncryptAll and DecryptAll
	Parallel ParallelConfig
}

// DefaultConfig returns the configuration used by Default and the package-level functions
func DefaultConfig() *Config {
	return &Config{
		MaxPlaintextSize: DefaultMaxPlaintextSize,
		Random:           DefaultRandomSource(),
		Parallel:         DefaultParallelConfig(),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}
	if c.MaxPlaintextSize < 0 {
		return &ValidationError{
			Field:   "max_plaintext_size",
			Value:   c.MaxPlaintextSize,
			Message: "size cannot be negative",
		}
	}
	if err := c.Parallel.Validate(); err != nil {
		return &ValidationError{
			Field:   "parallel",
			Message: err.Error(),
			Err:     err,
		}
	}
	return nil
}

// withDefaults returns a copy of c with zero values replaced by defaults
func (c *Config) withDefaults() Config {
	out := *c
	if out.MaxPlaintextSize == 0 {
		out.MaxPlaintextSize = DefaultMaxPlaintextSize
	}
	if out.Random == nil {
		out.Random = DefaultRandomSource()
	}
	return out
}

func sizeMismatch(what string, got, want int) string {
	return fmt.Sprintf("invalid %s size: got %d bytes, expected %d bytes", what, got, want)
}
