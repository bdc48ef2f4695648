package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"qlab/internal/domain"
	"qlab/internal/util/memzero"
)

const credsFile = "credentials.enc"

// FileStore persists credentials on disk, encrypted at rest.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a store rooted at dir.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// SaveCredentials encrypts c under the passphrase and writes it to disk.
func (s *FileStore) SaveCredentials(passphrase string, c domain.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	blob, err := encrypt(passphrase, raw)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, credsFile), blob, 0o600)
}

// LoadCredentials reads and decrypts the stored credentials. A missing file
// is domain.ErrNoCredentials, not a decryption failure.
func (s *FileStore) LoadCredentials(passphrase string) (domain.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(filepath.Join(s.dir, credsFile))
	if errors.Is(err, os.ErrNotExist) {
		return domain.Credentials{}, domain.ErrNoCredentials
	}
	if err != nil {
		return domain.Credentials{}, err
	}
	raw, err := decrypt(passphrase, blob)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("decrypt credentials: %w", err)
	}
	var c domain.Credentials
	if err := json.Unmarshal(raw, &c); err != nil {
		return domain.Credentials{}, err
	}
	return c, nil
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// scrypt envelope (parameters fixed here; tune as needed)
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

type envelope struct {
	Salt  []byte
	Nonce []byte
	CT    []byte
}

func encrypt(passphrase string, plaintext []byte) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	N, r, p := scryptParamsDefault()
	key, err := scrypt.Key([]byte(passphrase), salt, N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ct := aead.Seal(nil, nonce, plaintext, salt)
	return json.Marshal(envelope{Salt: salt, Nonce: nonce, CT: ct})
}

func decrypt(passphrase string, blob []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, err
	}
	N, r, p := scryptParamsDefault()
	key, err := scrypt.Key([]byte(passphrase), env.Salt, N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, env.Nonce, env.CT, env.Salt)
}

var _ domain.CredentialStore = (*FileStore)(nil)
