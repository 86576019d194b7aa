package storage

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/logger"
)

// Ключи защищённого хранилища
const (
	KeyUserAuthToken    = "user_auth_token"
	KeyPaymentAuthToken = "payment_auth_token"
	KeyTmxSessionID     = "tmx_session_id"
	KeyCurrentUserName  = "current_user_name"
)

// TokenStore - реализация TokensStorage поверх SecureStorage.
// Токен подтверждения платежа по умолчанию живёт в памяти процесса
// и попадает в хранилище только по явному запросу ("save auth").
type TokenStore struct {
	Secure SecureStorage

	mu               sync.Mutex
	userAuthToken    string
	paymentAuthToken string
	loaded           bool
}

// Создание хранилища
func NewTokenStore(secure SecureStorage) *TokenStore {
	return &TokenStore{Secure: secure}
}

// load - подъём сохранённых токенов при первом обращении
func (s *TokenStore) load() {
	if s.loaded {
		return
	}
	s.loaded = true
	if value, err := s.Secure.Get(KeyUserAuthToken); err == nil {
		s.userAuthToken = string(value)
	}
	if value, err := s.Secure.Get(KeyPaymentAuthToken); err == nil {
		s.paymentAuthToken = string(value)
	}
}

func (s *TokenStore) UserAuthToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.userAuthToken
}

func (s *TokenStore) SetUserAuthToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	if err := s.Secure.Put(KeyUserAuthToken, []byte(token)); err != nil {
		return errors.Wrap(err, "failed to store user auth token")
	}
	s.userAuthToken = token
	return nil
}

func (s *TokenStore) PaymentAuthToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.paymentAuthToken
}

func (s *TokenStore) SetPaymentAuthToken(token string, persist bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	s.paymentAuthToken = token
	if !persist {
		return nil
	}
	if err := s.Secure.Put(KeyPaymentAuthToken, []byte(token)); err != nil {
		return errors.Wrap(err, "failed to store payment auth token")
	}
	return nil
}

// TmxSessionID - идентификатор сессии, генерируется при первом обращении.
// Генерация под мьютексом: конкурентные первые вызовы видят один идентификатор
func (s *TokenStore) TmxSessionID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := s.Secure.Get(KeyTmxSessionID)
	if err == nil {
		return string(value), nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return "", errors.Wrap(err, "failed to get tmx session id")
	}

	id := uuid.New().String()
	if err := s.Secure.Put(KeyTmxSessionID, []byte(id)); err != nil {
		return "", errors.Wrap(err, "failed to store tmx session id")
	}
	return id, nil
}

// Clear - удаление всех токенов, локальное состояние чистится даже
// при ошибках хранилища
func (s *TokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	s.userAuthToken = ""
	s.paymentAuthToken = ""

	var failed error
	for _, key := range []string{KeyUserAuthToken, KeyPaymentAuthToken, KeyTmxSessionID} {
		if err := s.Secure.Remove(key); err != nil {
			logger.Error("Failed to remove token", key, err)
			failed = err
		}
	}
	return failed
}
