package storage

import (
	"crypto/cipher"
	"crypto/rand"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
)

// EncryptedFileStorage - файловая реализация SecureStorage.
// Каждое значение шифруется ChaCha20-Poly1305 мастер-ключом,
// который передаёт хост-приложение.
type EncryptedFileStorage struct {
	dir  string
	aead cipher.AEAD
	mu   sync.Mutex
}

// NewEncryptedFileStorage - создание хранилища в каталоге dir с мастер-ключом key
func NewEncryptedFileStorage(dir string, key []byte) (*EncryptedFileStorage, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to init cipher")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "failed to create storage dir")
	}
	return &EncryptedFileStorage{dir: dir, aead: aead}, nil
}

func (s *EncryptedFileStorage) path(key string) string {
	return filepath.Join(s.dir, key)
}

func (s *EncryptedFileStorage) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(key)
}

func (s *EncryptedFileStorage) get(key string) ([]byte, error) {
	sealed, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, errors.Wrap(err, "failed to read value")
	}
	if len(sealed) < chacha20poly1305.NonceSizeX {
		return nil, errors.New("stored value is corrupted")
	}
	nonce, ciphertext := sealed[:chacha20poly1305.NonceSizeX], sealed[chacha20poly1305.NonceSizeX:]
	value, err := s.aead.Open(nil, nonce, ciphertext, []byte(key))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open value")
	}
	return value, nil
}

func (s *EncryptedFileStorage) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(key, value)
}

func (s *EncryptedFileStorage) put(key string, value []byte) error {
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return errors.Wrap(err, "failed to make nonce")
	}
	sealed := s.aead.Seal(nonce, nonce, value, []byte(key))
	if err := os.WriteFile(s.path(key), sealed, 0o600); err != nil {
		return errors.Wrap(err, "failed to write value")
	}
	return nil
}

func (s *EncryptedFileStorage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove value")
	}
	return nil
}

// GetOrCreate - значение по ключу с генерацией при первом обращении.
// Генерация и запись выполняются под мьютексом: первый вызов побеждает.
func (s *EncryptedFileStorage) GetOrCreate(key string, size int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := s.get(key)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return nil, err
	}

	value = make([]byte, size)
	if _, err := rand.Read(value); err != nil {
		return nil, errors.Wrap(err, "failed to generate value")
	}
	if err := s.put(key, value); err != nil {
		return nil, err
	}
	return value, nil
}

// MemoryStorage - SecureStorage в памяти процесса, для тестов и демо
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

func (s *MemoryStorage) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

func (s *MemoryStorage) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStorage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *MemoryStorage) GetOrCreate(key string, size int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value, ok := s.values[key]; ok {
		return value, nil
	}
	value := make([]byte, size)
	if _, err := rand.Read(value); err != nil {
		return nil, errors.Wrap(err, "failed to generate value")
	}
	s.values[key] = value
	return value, nil
}
