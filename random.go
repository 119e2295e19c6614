package sealbox

import (
	"crypto/rand"
	"io"
)

// RandomSource supplies cryptographically secure random bytes
type RandomSource interface {
	// Generate returns n random bytes or an *EntropyError
	Generate(n int) ([]byte, error)
}

// readerSource implements RandomSource on top of an io.Reader
type readerSource struct {
	r io.Reader
}

// NewRandomSource returns a RandomSource that reads from r.
// r must be a cryptographically secure generator; tests may pass a failing reader.
func NewRandomSource(r io.Reader) RandomSource {
	return &readerSource{r: r}
}

// DefaultRandomSource returns the operating system CSPRNG
func DefaultRandomSource() RandomSource {
	return &readerSource{r: rand.Reader}
}

// Generate returns n random bytes
func (s *readerSource) Generate(n int) ([]byte, error) {
	if n <= 0 {
		return nil, NewValidationError("n", n, "random length must be positive")
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return nil, &EntropyError{Err: err}
	}
	return buf, nil
}

// generateSaltAndNonce draws salt and nonce with a single call and splits it 16/12
func generateSaltAndNonce(src RandomSource) (salt, nonce []byte, err error) {
	buf, err := src.Generate(SaltSize + NonceSize)
	if err != nil {
		if IsEntropyError(err) {
			return nil, nil, err
		}
		return nil, nil, &EntropyError{Err: err}
	}
	if len(buf) != SaltSize+NonceSize {
		return nil, nil, &EntropyError{Err: io.ErrUnexpectedEOF}
	}
	return buf[:SaltSize:SaltSize], buf[SaltSize:], nil
}
