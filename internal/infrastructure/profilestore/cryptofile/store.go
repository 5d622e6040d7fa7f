// Package cryptofile persists the user profile as an encrypted JSON file.
//
// The profile is sealed with AES-256-GCM under a key generated on first
// use and stored beside the data file. This protects the profile against
// casual reading, not against an attacker with access to the key file.
package cryptofile

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ersonp/zodi-core/internal/domain/entities"
	"github.com/ersonp/zodi-core/internal/infrastructure/config"
)

// ErrCorrupt is returned when the stored profile cannot be decrypted or
// decoded. The profile service converts it to a fresh profile.
var ErrCorrupt = errors.New("profile data is corrupt")

const keySize = 32 // AES-256

// Store implements ports.ProfileStore on the filesystem.
type Store struct {
	path    string
	keyPath string
}

// NewStore creates a profile store for the given paths.
func NewStore(cfg config.ProfileConfig) (*Store, error) {
	if cfg.Path == "" || cfg.KeyPath == "" {
		return nil, errors.New("profile path and key path are required")
	}
	return &Store{path: cfg.Path, keyPath: cfg.KeyPath}, nil
}

// Load reads and decrypts the stored profile. A missing file yields
// (nil, nil); undecryptable or undecodable data yields ErrCorrupt.
func (s *Store) Load(ctx context.Context) (*entities.Profile, error) {
	encoded, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	key, err := s.loadKey()
	if err != nil {
		return nil, err
	}

	plaintext, err := decrypt(key, string(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var profile entities.Profile
	if err := json.Unmarshal(plaintext, &profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &profile, nil
}

// Save encrypts and writes the profile, creating the data directory and
// key on first use.
func (s *Store) Save(ctx context.Context, profile *entities.Profile) error {
	plaintext, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	key, err := s.loadOrCreateKey()
	if err != nil {
		return err
	}

	encoded, err := encrypt(key, plaintext)
	if err != nil {
		return fmt.Errorf("encrypting profile: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(encoded), 0o600); err != nil {
		return fmt.Errorf("writing profile file: %w", err)
	}
	return nil
}

// loadKey reads the existing encryption key.
func (s *Store) loadKey() ([]byte, error) {
	encoded, err := os.ReadFile(s.keyPath)
	if err != nil {
		return nil, fmt.Errorf("reading key file: %w", err)
	}
	key, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil || len(key) != keySize {
		return nil, fmt.Errorf("%w: invalid key file", ErrCorrupt)
	}
	return key, nil
}

// loadOrCreateKey reads the key, generating and storing a new one when
// none exists yet.
func (s *Store) loadOrCreateKey() ([]byte, error) {
	if key, err := s.loadKey(); err == nil {
		return key, nil
	}

	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.keyPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating key directory: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(key)
	if err := os.WriteFile(s.keyPath, []byte(encoded), 0o600); err != nil {
		return nil, fmt.Errorf("writing key file: %w", err)
	}
	return key, nil
}

// encrypt seals plaintext with AES-GCM; the nonce is prepended and the
// whole blob base64-encoded for safe text storage.
func encrypt(key, plaintext []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// decrypt reverses encrypt.
func decrypt(key []byte, encoded string) ([]byte, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(sealed) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}
	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}
