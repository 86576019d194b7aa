package services

import (
	"context"

	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/client"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/helpers"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/logger"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/models"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/storage"
)

// AccountIdentity - внешний аккаунт, полученный от стороннего авторизатора
type AccountIdentity struct {
	// Token - OAuth токен аккаунта
	Token string
	// Name - отображаемое имя, может быть пустым
	Name string
}

// AccountAuthorizer - внешний коллаборатор обмена учётных данных аккаунта.
// nil-результат без ошибки означает, что пользователь закрыл экран входа.
type AccountAuthorizer interface {
	Authorize(ctx context.Context) (*AccountIdentity, error)
}

// AuthorizerFunc - адаптер функции к интерфейсу AccountAuthorizer
type AuthorizerFunc func(ctx context.Context) (*AccountIdentity, error)

func (f AuthorizerFunc) Authorize(ctx context.Context) (*AccountIdentity, error) {
	return f(ctx)
}

// UserAuthOutput - закрытое множество исходов авторизации пользователя:
// AuthSuccess, AuthCancelled, AuthNoWallet
type UserAuthOutput interface {
	isUserAuthOutput()
}

// AuthSuccess - кошелёк найден, пользователь авторизован
type AuthSuccess struct {
	User models.AuthorizedUser
}

func (AuthSuccess) isUserAuthOutput() {}

// AuthCancelled - пользователь отказался от входа, не ошибка
type AuthCancelled struct{}

func (AuthCancelled) isUserAuthOutput() {}

// AuthNoWallet - аккаунт существует, но кошелёк к нему не привязан.
// Состояние SDK при этом не меняется.
type AuthNoWallet struct {
	AccountName string
}

func (AuthNoWallet) isUserAuthOutput() {}

// UserAuthService - поток авторизации пользователя
type UserAuthService interface {
	Authenticate(ctx context.Context) (UserAuthOutput, error)
}

type UserAuth struct {
	Authorizer AccountAuthorizer
	Gateway    client.AuthGateway
	Tokens     storage.TokensStorage
	Users      storage.CurrentUserStorage
}

// Создание сервиса
func NewUserAuth(authorizer AccountAuthorizer, gateway client.AuthGateway, tokens storage.TokensStorage, users storage.CurrentUserStorage) UserAuthService {
	return &UserAuth{Authorizer: authorizer, Gateway: gateway, Tokens: tokens, Users: users}
}

// Authenticate - обмен учётных данных внешнего аккаунта на токен авторизации.
// До исхода AuthSuccess никакое состояние не сохраняется, повторный вызов
// после AuthCancelled или AuthNoWallet выполняет обмен заново.
func (s *UserAuth) Authenticate(ctx context.Context) (UserAuthOutput, error) {
	identity, err := s.Authorizer.Authorize(ctx)
	if err != nil {
		logger.Error("Account authorization failed", err)
		return nil, err
	}
	if identity == nil {
		logger.Info("Account authorization cancelled by user")
		return AuthCancelled{}, nil
	}

	name := identity.Name
	if name == "" {
		// Авторизатор не сообщил имя - пробуем достать его из токена
		if parsed, err := helpers.GetDisplayName(identity.Token); err == nil {
			name = parsed
		}
	}

	wallet, err := s.Gateway.WalletCheck(ctx, identity.Token)
	if err != nil {
		logger.Error("Wallet check failed", err)
		return nil, err
	}
	if wallet.AccountName != "" {
		name = wallet.AccountName
	}

	if !wallet.WalletExists {
		logger.Info("Account has no linked wallet", "account", name)
		return AuthNoWallet{AccountName: name}, nil
	}

	// Кошелёк найден: сохраняем токен и делаем пользователя авторизованным
	if err := s.Tokens.SetUserAuthToken(wallet.AuthToken); err != nil {
		return nil, err
	}
	if err := s.Users.SetAuthorized(name); err != nil {
		return nil, err
	}

	logger.Info("User authorized", "account", name)
	return AuthSuccess{User: models.AuthorizedUser{Name: name}}, nil
}
