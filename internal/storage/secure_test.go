package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestEncryptedFileStorage(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	storage, err := NewEncryptedFileStorage(t.TempDir(), key)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	if _, err := storage.Get("missing"); err != ErrKeyNotFound {
		t.Errorf("Expected ErrKeyNotFound, got: '%v'", err)
	}

	value := []byte("sensitive value")
	if err := storage.Put("token", value); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	got, err := storage.Get("token")
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if !bytes.Equal(value, got) {
		t.Errorf("Expected '%s', got: '%s'", value, got)
	}

	if err := storage.Remove("token"); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if _, err := storage.Get("token"); err != ErrKeyNotFound {
		t.Errorf("Expected ErrKeyNotFound after remove, got: '%v'", err)
	}
	// Удаление отсутствующего ключа безопасно
	if err := storage.Remove("token"); err != nil {
		t.Errorf("Expected no error, got: '%v'", err)
	}
}

func TestEncryptedFileStorage_ValueIsEncrypted(t *testing.T) {
	dir := t.TempDir()
	key := bytes.Repeat([]byte{0x42}, 32)
	storage, err := NewEncryptedFileStorage(dir, key)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	value := []byte("4111111111111111")
	if err := storage.Put("pan", value); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "pan"))
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if bytes.Contains(raw, value) {
		t.Errorf("Expected value to be encrypted on disk")
	}

	// Другой мастер-ключ не расшифровывает значение
	otherKey := bytes.Repeat([]byte{0x17}, 32)
	other, err := NewEncryptedFileStorage(dir, otherKey)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if _, err := other.Get("pan"); err == nil {
		t.Errorf("Expected error for wrong key")
	}
}

func TestEncryptedFileStorage_GetOrCreate(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	storage, err := NewEncryptedFileStorage(t.TempDir(), key)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	first, err := storage.GetOrCreate("seed", 32)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if len(first) != 32 {
		t.Fatalf("Expected 32 byte value, got: %d", len(first))
	}

	// Конкурентные вызовы видят одно и то же значение
	var wg sync.WaitGroup
	results := make([][]byte, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value, err := storage.GetOrCreate("seed", 32)
			if err != nil {
				t.Errorf("Expected no error, got: '%v'", err)
				return
			}
			results[i] = value
		}(i)
	}
	wg.Wait()

	for i, value := range results {
		if !bytes.Equal(first, value) {
			t.Errorf("Expected stable value at #%d", i)
		}
	}
}

func TestMemoryStorage(t *testing.T) {
	storage := NewMemoryStorage()

	if _, err := storage.Get("missing"); err != ErrKeyNotFound {
		t.Errorf("Expected ErrKeyNotFound, got: '%v'", err)
	}

	if err := storage.Put("token", []byte("value")); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	got, err := storage.Get("token")
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if string(got) != "value" {
		t.Errorf("Expected 'value', got: '%s'", got)
	}

	first, err := storage.GetOrCreate("seed", 16)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	second, err := storage.GetOrCreate("seed", 16)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("Expected stable generated value")
	}

	if err := storage.Remove("token"); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if _, err := storage.Get("token"); err != ErrKeyNotFound {
		t.Errorf("Expected ErrKeyNotFound after remove, got: '%v'", err)
	}
}
