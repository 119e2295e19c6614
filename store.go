package sealbox

import (
	"bytes"
	"io"
	"os"

	"github.com/absfs/absfs"
	"github.com/google/uuid"
)

// Store keeps sealed containers as files on an absfs.FileSystem.
//
// Each file holds exactly one container, either as raw bytes or in the
// base64 text form. Reads accept both.
type Store struct {
	fs     absfs.FileSystem
	sealer *Sealer
	armor  bool
	perm   os.FileMode
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithArmor selects the base64 text form for files written by the store
func WithArmor(armor bool) StoreOption {
	return func(s *Store) {
		s.armor = armor
	}
}

// WithPerm sets the mode of files created by the store (default 0600)
func WithPerm(perm os.FileMode) StoreOption {
	return func(s *Store) {
		s.perm = perm
	}
}

// NewStore creates a Store on fs. A nil sealer means Default().
func NewStore(fs absfs.FileSystem, sealer *Sealer, opts ...StoreOption) (*Store, error) {
	if fs == nil {
		return nil, ErrNilFileSystem
	}
	if sealer == nil {
		sealer = Default()
	}

	s := &Store{
		fs:     fs,
		sealer: sealer,
		perm:   0600,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// WriteFile seals plaintext and stores it at name, replacing any existing file.
// The container is written to a temporary sibling first and renamed into place,
// so name never holds a partial container.
func (s *Store) WriteFile(name string, plaintext []byte, passphrase string) error {
	if err := ValidateFilePath(name); err != nil {
		return err
	}

	container, err := s.sealer.Encrypt(plaintext, passphrase)
	if err != nil {
		return err
	}

	data := container
	if s.armor {
		data = append([]byte(EncodeToString(container)), '\n')
	}

	tmp := name + ".tmp-" + uuid.NewString()
	if err := s.writeAll(tmp, data); err != nil {
		s.fs.Remove(tmp)
		return err
	}

	if err := s.replace(tmp, name); err != nil {
		s.fs.Remove(tmp)
		return NewIOError("rename", name, err)
	}
	return nil
}

// replace renames tmp over name. Filesystems that refuse to rename onto an
// existing file get the old file moved aside first and restored if the new
// one cannot take its place.
func (s *Store) replace(tmp, name string) error {
	err := s.fs.Rename(tmp, name)
	if err == nil || !s.Exists(name) {
		return err
	}

	backup := name + ".bak-" + uuid.NewString()
	if s.fs.Rename(name, backup) != nil {
		return err
	}
	if err := s.fs.Rename(tmp, name); err != nil {
		s.fs.Rename(backup, name)
		return err
	}
	s.fs.Remove(backup)
	return nil
}

// ReadFile opens the container stored at name
func (s *Store) ReadFile(name string, passphrase string) ([]byte, error) {
	if err := ValidateFilePath(name); err != nil {
		return nil, err
	}
	if passphrase == "" {
		return nil, ValidatePassphrase(nil)
	}

	data, err := s.readAll(name)
	if err != nil {
		return nil, err
	}

	container := data
	if !IsContainer(data) {
		container, err = DecodeString(string(data))
		if err != nil {
			return nil, withPath(err, name)
		}
	}

	plaintext, err := s.sealer.Decrypt(container, passphrase)
	if err != nil {
		return nil, withPath(err, name)
	}
	return plaintext, nil
}

// Remove deletes the container stored at name
func (s *Store) Remove(name string) error {
	if err := s.fs.Remove(name); err != nil {
		return NewIOError("remove", name, err)
	}
	return nil
}

// Exists reports whether name holds a file
func (s *Store) Exists(name string) bool {
	info, err := s.fs.Stat(name)
	return err == nil && !info.IsDir()
}

func (s *Store) writeAll(name string, data []byte) error {
	f, err := s.fs.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, s.perm)
	if err != nil {
		return NewIOError("open", name, err)
	}

	if _, err := io.Copy(f, bytes.NewReader(data)); err != nil {
		f.Close()
		return NewIOError("write", name, err)
	}

	if err := f.Close(); err != nil {
		return NewIOError("close", name, err)
	}
	return nil
}

func (s *Store) readAll(name string) ([]byte, error) {
	f, err := s.fs.OpenFile(name, os.O_RDONLY, 0)
	if err != nil {
		return nil, NewIOError("open", name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, NewIOError("read", name, err)
	}
	return data, nil
}
