package sealbox

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
)

const testPassphrase = "correct horse battery staple"

func TestEncryptDecrypt_HelloWorld(t *testing.T) {
	plaintext := []byte("Hello, World!")

	container, err := Encrypt(plaintext, testPassphrase)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if len(container) != 62 {
		t.Errorf("container length = %d, want 62", len(container))
	}
	if !IsContainer(container) || container[4] != CurrentVersion {
		t.Errorf("container header = %x, want ENC1 v1", container[:5])
	}

	got, err := Decrypt(container, testPassphrase)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("Decrypt = %q, want %q", got, plaintext)
	}

	got, err = Decrypt(container, "wrong")
	if err == nil {
		t.Fatalf("Decrypt with wrong passphrase returned %q", got)
	}
	if !IsAuthenticationError(err) {
		t.Errorf("expected AuthenticationError, got %T: %v", err, err)
	}
	if got != nil {
		t.Error("no plaintext may be returned on failure")
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		plaintext  []byte
		passphrase string
	}{
		{name: "single byte", plaintext: []byte{0}, passphrase: "p"},
		{name: "text", plaintext: []byte("The quick brown fox"), passphrase: "fox"},
		{name: "binary", plaintext: []byte{0x00, 0xff, 0x10, 0x80}, passphrase: "binary-pass"},
		{name: "unicode passphrase", plaintext: []byte("payload"), passphrase: "pässwörd 🔐"},
		{name: "64KB", plaintext: bytes.Repeat([]byte("abcdefgh"), 8*1024), passphrase: testPassphrase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, err := Encrypt(tt.plaintext, tt.passphrase)
			if err != nil {
				t.Fatalf("Encrypt failed: %v", err)
			}
			if len(container) != HeaderSize+len(tt.plaintext)+TagSize {
				t.Errorf("container length = %d, want %d", len(container), HeaderSize+len(tt.plaintext)+TagSize)
			}

			got, err := Decrypt(container, tt.passphrase)
			if err != nil {
				t.Fatalf("Decrypt failed: %v", err)
			}
			if !bytes.Equal(got, tt.plaintext) {
				t.Error("round trip mismatch")
			}
		})
	}
}

func TestEncrypt_NonDeterministic(t *testing.T) {
	plaintext := []byte("same input")

	c1, err := Encrypt(plaintext, testPassphrase)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	c2, err := Encrypt(plaintext, testPassphrase)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if bytes.Equal(c1, c2) {
		t.Fatal("two encryptions of the same input must differ")
	}
	if bytes.Equal(c1[saltOffset:nonceOffset], c2[saltOffset:nonceOffset]) {
		t.Error("salts must differ between calls")
	}
	if bytes.Equal(c1[nonceOffset:HeaderSize], c2[nonceOffset:HeaderSize]) {
		t.Error("nonces must differ between calls")
	}

	for _, c := range [][]byte{c1, c2} {
		got, err := Decrypt(c, testPassphrase)
		if err != nil || !bytes.Equal(got, plaintext) {
			t.Errorf("Decrypt = %q, %v", got, err)
		}
	}
}

func TestDecrypt_TamperDetection(t *testing.T) {
	container, err := Encrypt([]byte("Hello, World!"), testPassphrase)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	// One bit in every byte from offset 5 on (salt, nonce, ciphertext and tag).
	// Every bit of the ciphertext region is covered by TestAESGCMEngine_EveryBitFlipFails.
	for off := saltOffset; off < len(container); off++ {
		tampered := bytes.Clone(container)
		tampered[off] ^= 1 << (off % 8)

		got, err := Decrypt(tampered, testPassphrase)
		if err == nil {
			t.Fatalf("offset %d: Decrypt succeeded on tampered container", off)
		}
		if !IsAuthenticationError(err) || !errors.Is(err, ErrAuthFailed) {
			t.Fatalf("offset %d: expected AuthenticationError, got %v", off, err)
		}
		if got != nil {
			t.Fatalf("offset %d: plaintext returned on failure", off)
		}
	}
}

func TestDecrypt_ErrorsDoNotDistinguishCause(t *testing.T) {
	container, err := Encrypt([]byte("secret"), "correct")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	_, wrongPass := Decrypt(container, "incorrect")

	tampered := bytes.Clone(container)
	tampered[len(tampered)-1] ^= 0x01
	_, tamperErr := Decrypt(tampered, "correct")

	if wrongPass == nil || tamperErr == nil {
		t.Fatal("both decryptions must fail")
	}
	if wrongPass.Error() != tamperErr.Error() {
		t.Errorf("error messages differ: %q vs %q", wrongPass, tamperErr)
	}
	for _, secret := range []string{"correct", "incorrect", "210000"} {
		if strings.Contains(wrongPass.Error(), secret) {
			t.Errorf("error message leaks %q: %v", secret, wrongPass)
		}
	}
}

func TestDecrypt_FormatErrors(t *testing.T) {
	container, err := Encrypt([]byte("Hello, World!"), testPassphrase)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	badMagic := bytes.Clone(container)
	copy(badMagic, "ENC2")

	version2 := bytes.Clone(container)
	version2[4] = 0x02

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "48 bytes", data: container[:48], wantErr: ErrTruncated},
		{name: "empty", data: nil, wantErr: ErrTruncated},
		{name: "altered magic", data: badMagic, wantErr: ErrBadMagic},
		{name: "version 0x02", data: version2, wantErr: ErrUnsupportedVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decrypt(tt.data, testPassphrase)
			if !IsFormatError(err) {
				t.Fatalf("expected FormatError, got %T: %v", err, err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("errors.Is(err, %v) = false, err = %v", tt.wantErr, err)
			}
			if IsAuthenticationError(err) {
				t.Error("format errors must not be reported as authentication errors")
			}
		})
	}
}

func TestEncrypt_Validation(t *testing.T) {
	sealer, err := New(&Config{MaxPlaintextSize: 16})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tests := []struct {
		name       string
		plaintext  []byte
		passphrase string
		wantErr    error
	}{
		{name: "nil plaintext", plaintext: nil, passphrase: "pw", wantErr: ErrEmptyPlaintext},
		{name: "empty plaintext", plaintext: []byte{}, passphrase: "pw", wantErr: ErrEmptyPlaintext},
		{name: "oversized plaintext", plaintext: make([]byte, 17), passphrase: "pw", wantErr: ErrPlaintextTooLarge},
		{name: "empty passphrase", plaintext: []byte("data"), passphrase: "", wantErr: ErrEmptyPassphrase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, err := sealer.Encrypt(tt.plaintext, tt.passphrase)
			if err == nil {
				t.Fatalf("Encrypt() = %x, want error", container)
			}
			if !IsValidationError(err) {
				t.Errorf("expected ValidationError, got %T: %v", err, err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("errors.Is(err, %v) = false, err = %v", tt.wantErr, err)
			}
		})
	}

	t.Run("at limit", func(t *testing.T) {
		if _, err := sealer.Encrypt(make([]byte, 16), "pw"); err != nil {
			t.Errorf("payload at the limit should be accepted: %v", err)
		}
	})
}

func TestDecrypt_EmptyPassphrase(t *testing.T) {
	container, err := Encrypt([]byte("data"), "pw")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	_, err = Decrypt(container, "")
	if !IsValidationError(err) || !errors.Is(err, ErrEmptyPassphrase) {
		t.Errorf("expected ErrEmptyPassphrase, got %v", err)
	}

	// Validation happens before parsing
	_, err = Decrypt([]byte("junk"), "")
	if !IsValidationError(err) {
		t.Errorf("expected ValidationError before FormatError, got %v", err)
	}
}

func TestAssociatedData(t *testing.T) {
	sealer := Default()
	aad := []byte("record-42")

	container, err := sealer.EncryptWithAssociatedData([]byte("payload"), testPassphrase, aad)
	if err != nil {
		t.Fatalf("EncryptWithAssociatedData failed: %v", err)
	}

	got, err := sealer.DecryptWithAssociatedData(container, testPassphrase, aad)
	if err != nil {
		t.Fatalf("DecryptWithAssociatedData failed: %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("got %q, want %q", got, "payload")
	}

	if _, err := sealer.DecryptWithAssociatedData(container, testPassphrase, []byte("record-43")); !IsAuthenticationError(err) {
		t.Errorf("wrong associated data: expected AuthenticationError, got %v", err)
	}
	if _, err := sealer.Decrypt(container, testPassphrase); !IsAuthenticationError(err) {
		t.Errorf("missing associated data: expected AuthenticationError, got %v", err)
	}
}

func TestEncryptToString(t *testing.T) {
	text, err := EncryptToString([]byte("Hello, World!"), testPassphrase)
	if err != nil {
		t.Fatalf("EncryptToString failed: %v", err)
	}
	if strings.ContainsAny(text, "\x00\n") {
		t.Errorf("text form must be text-safe: %q", text)
	}

	got, err := DecryptString(text, testPassphrase)
	if err != nil {
		t.Fatalf("DecryptString failed: %v", err)
	}
	if string(got) != "Hello, World!" {
		t.Errorf("got %q", got)
	}

	if _, err := DecryptString(text, "wrong"); !IsAuthenticationError(err) {
		t.Errorf("expected AuthenticationError, got %v", err)
	}
	if _, err := DecryptString("%%%", testPassphrase); !IsFormatError(err) {
		t.Errorf("expected FormatError, got %v", err)
	}
	if _, err := DecryptString(text, ""); !IsValidationError(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

// failingReader simulates an exhausted or broken entropy source
type failingReader struct {
	err error
}

func (r *failingReader) Read(p []byte) (int, error) {
	return 0, r.err
}

func TestEncrypt_EntropyFailure(t *testing.T) {
	tests := []struct {
		name   string
		reader io.Reader
	}{
		{name: "read error", reader: &failingReader{err: errors.New("device not ready")}},
		{name: "short read", reader: bytes.NewReader(make([]byte, SaltSize))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sealer, err := New(&Config{Random: NewRandomSource(tt.reader)})
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			container, err := sealer.Encrypt([]byte("data"), "pw")
			if err == nil {
				t.Fatalf("Encrypt() = %x, want error", container)
			}
			if !IsEntropyError(err) || !errors.Is(err, ErrEntropy) {
				t.Errorf("expected EntropyError, got %T: %v", err, err)
			}
			if container != nil {
				t.Error("no output may be returned on entropy failure")
			}
		})
	}
}

// countingSource records how randomness is requested
type countingSource struct {
	mu    sync.Mutex
	calls []int
}

func (s *countingSource) Generate(n int) ([]byte, error) {
	s.mu.Lock()
	s.calls = append(s.calls, n)
	s.mu.Unlock()
	return DefaultRandomSource().Generate(n)
}

func TestEncrypt_RandomnessRequest(t *testing.T) {
	src := &countingSource{}
	sealer, err := New(&Config{Random: src})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := sealer.Encrypt([]byte("data"), "pw"); err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if len(src.calls) != 1 || src.calls[0] != SaltSize+NonceSize {
		t.Errorf("random requests = %v, want one request of %d bytes", src.calls, SaltSize+NonceSize)
	}
}

func TestEncrypt_Concurrent(t *testing.T) {
	const n = 8

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			plaintext := []byte(strings.Repeat("x", i+1))
			container, err := Encrypt(plaintext, testPassphrase)
			if err != nil {
				errs <- err
				return
			}
			got, err := Decrypt(container, testPassphrase)
			if err != nil {
				errs <- err
				return
			}
			if !bytes.Equal(got, plaintext) {
				errs <- errors.New("round trip mismatch")
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{name: "nil config", config: nil, wantErr: true},
		{name: "zero config", config: &Config{}},
		{name: "default config", config: DefaultConfig()},
		{name: "negative max size", config: &Config{MaxPlaintextSize: -1}, wantErr: true},
		{
			name:    "bad parallel config",
			config:  &Config{Parallel: ParallelConfig{Enabled: true, MaxWorkers: -1, MinItemsForParallel: 1}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if s.config.MaxPlaintextSize != DefaultMaxPlaintextSize {
				t.Errorf("MaxPlaintextSize = %d, want default", s.config.MaxPlaintextSize)
			}
			if s.config.Random == nil {
				t.Error("Random should default to the OS source")
			}
		})
	}

	if _, err := New(nil); !errors.Is(err, ErrNilConfig) {
		t.Errorf("New(nil) error = %v, want ErrNilConfig", err)
	}
}
