package storage

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/models"
)

// CurrentUserStore - реализация CurrentUserStorage поверх SecureStorage.
// Пользователь становится авторизованным только в потоке авторизации,
// сбрасывается только в Logout.
type CurrentUserStore struct {
	Secure SecureStorage

	mu sync.Mutex
}

// Создание хранилища
func NewCurrentUserStore(secure SecureStorage) *CurrentUserStore {
	return &CurrentUserStore{Secure: secure}
}

func (s *CurrentUserStore) CurrentUser() models.CurrentUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	name, err := s.Secure.Get(KeyCurrentUserName)
	if err != nil || len(name) == 0 {
		return models.AnonymousUser{}
	}
	return models.AuthorizedUser{Name: string(name)}
}

func (s *CurrentUserStore) SetAuthorized(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Secure.Put(KeyCurrentUserName, []byte(name)); err != nil {
		return errors.Wrap(err, "failed to store current user")
	}
	return nil
}

func (s *CurrentUserStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Secure.Remove(KeyCurrentUserName); err != nil {
		return errors.Wrap(err, "failed to reset current user")
	}
	return nil
}
