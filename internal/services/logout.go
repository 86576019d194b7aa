package services

import (
	"context"

	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/logger"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/storage"
)

// TokenRevoker - отложенный best-effort отзыв токена на шлюзе
type TokenRevoker interface {
	Enqueue(token string)
}

// LogoutService - завершение сессии пользователя
type LogoutService interface {
	Logout(ctx context.Context) error
}

type Logout struct {
	Tokens  storage.TokensStorage
	Users   storage.CurrentUserStorage
	Secure  storage.SecureStorage
	Cache   *storage.OptionsCache
	Revoker TokenRevoker
}

// Создание сервиса
func NewLogout(tokens storage.TokensStorage, users storage.CurrentUserStorage, secure storage.SecureStorage, cache *storage.OptionsCache, revoker TokenRevoker) LogoutService {
	return &Logout{Tokens: tokens, Users: users, Secure: secure, Cache: cache, Revoker: revoker}
}

// Ключ материала шифрования, создаваемого при первом обращении
const KeyWalletKeyMaterial = "wallet_key_material"

// Logout - безусловный сброс состояния SDK. Локальная очистка выполняется
// всегда; отзыв токена на шлюзе - best-effort и локальный сброс не блокирует.
// Повторный вызов безопасен.
func (s *Logout) Logout(ctx context.Context) error {
	// Токен понадобится для отзыва после локальной очистки
	userAuthToken := s.Tokens.UserAuthToken()

	var failed error
	if err := s.Tokens.Clear(); err != nil {
		logger.Error("Failed to clear tokens", err)
		failed = err
	}
	if err := s.Users.Reset(); err != nil {
		logger.Error("Failed to reset current user", err)
		failed = err
	}
	if err := s.Secure.Remove(KeyWalletKeyMaterial); err != nil {
		logger.Error("Failed to remove key material", err)
		failed = err
	}
	// Устаревший каталог нельзя токенизировать
	s.Cache.Invalidate()

	if userAuthToken != "" && s.Revoker != nil {
		s.Revoker.Enqueue(userAuthToken)
	}

	logger.Info("Logout completed")
	return failed
}
