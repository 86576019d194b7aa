package storage

import (
	"errors"

	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/models"
)

// SecureStorage - защищённое key/value хранилище байтов.
// Реализация предоставляется хост-приложением, ядро SDK работает
// только с этим контрактом.
type SecureStorage interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Remove(key string) error
	// GetOrCreate возвращает значение по ключу, генерируя случайные
	// байты заданной длины при первом обращении. Первый вызов побеждает,
	// конкурентные обращения сериализуются реализацией.
	GetOrCreate(key string, size int) ([]byte, error)
}

// TokensStorage - хранилище короткоживущих учётных данных SDK.
// Единственный владелец строк токенов, остальные компоненты не
// кэшируют их дольше одной операции.
type TokensStorage interface {
	UserAuthToken() string
	SetUserAuthToken(token string) error
	PaymentAuthToken() string
	// SetPaymentAuthToken сохраняет токен подтверждения платежа.
	// При persist=false токен живёт только до конца процесса.
	SetPaymentAuthToken(token string, persist bool) error
	TmxSessionID() (string, error)
	Clear() error
}

// CurrentUserStorage - хранилище текущего принципала SDK
type CurrentUserStorage interface {
	CurrentUser() models.CurrentUser
	SetAuthorized(name string) error
	Reset() error
}

var (
	ErrKeyNotFound = errors.New("key not found")
)
