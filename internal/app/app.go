package app

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/client"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/config"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/logger"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/models"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/network/confirm"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/services"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/storage"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/worker"
)

// TokenizationParams - параметры запуска токенизации от хост-приложения
type TokenizationParams struct {
	Amount models.Amount
	// Restrictions - способы оплаты, исключённые магазином
	Restrictions      []models.PaymentMethodType
	SavePaymentMethod bool
}

// Checkout - фасад SDK. Владеет состоянием процесса (хранилища токенов,
// текущий пользователь, кэш каталога) и потоками выбора, подтверждения и токенизации.
// Вызовы одной checkout-сессии сериализует хост-приложение.
type Checkout struct {
	Config config.Config

	Tokens storage.TokensStorage
	Users  storage.CurrentUserStorage
	Cache  *storage.OptionsCache

	Options     services.CatalogService
	Selection   services.SelectionService
	UserAuth    services.UserAuthService
	PaymentAuth services.PaymentAuthService
	Tokenizer   services.TokenizeService
	LogoutFlow  services.LogoutService

	revoker *worker.RevokeWorker
	cancel  context.CancelFunc
}

// NewCheckout - сборка SDK: хранилища, клиенты шлюзов, сервисы, воркер отзыва.
// Authorizer предоставляет хост, secure - защищённое хранилище платформы.
func NewCheckout(cfg config.Config, secure storage.SecureStorage, authorizer services.AccountAuthorizer, httpClient client.HTTPClient) (*Checkout, error) {
	if cfg.Shop.ShopToken == "" {
		return nil, errors.New("shop token is required")
	}

	// Удалённый конфиг запрашивается один раз на сессию, при недоступности
	// шлюза остаются встроенные значения
	configClient := client.NewClient(cfg.Shop.GatewayURL, cfg.Shop.ShopToken, httpClient)
	fetchCtx, fetchCancel := context.WithTimeout(context.Background(), 10*time.Second)
	cfg = config.FetchRemote(fetchCtx, cfg, configClient)
	fetchCancel()

	paymentsClient := client.NewClient(cfg.Shop.GatewayURL, cfg.Shop.ShopToken, httpClient)
	authClient := client.NewClient(cfg.Shop.AuthGatewayURL, cfg.Shop.ShopToken, httpClient)

	tokens := storage.NewTokenStore(secure)
	users := storage.NewCurrentUserStore(secure)
	cache := storage.NewOptionsCache()

	revoker := worker.NewRevokeWorker(authClient)
	ctx, cancel := context.WithCancel(context.Background())
	revoker.Start(ctx)

	return &Checkout{
		Config:      cfg,
		Tokens:      tokens,
		Users:       users,
		Cache:       cache,
		Options:     services.NewCatalog(paymentsClient, tokens, cache),
		Selection:   services.NewSelection(cache, tokens),
		UserAuth:    services.NewUserAuth(authorizer, authClient, tokens, users),
		PaymentAuth: services.NewPaymentAuth(authClient, tokens),
		Tokenizer:   services.NewTokenizer(paymentsClient, tokens, cache),
		LogoutFlow:  services.NewLogout(tokens, users, secure, cache, revoker),
		revoker:     revoker,
		cancel:      cancel,
	}, nil
}

// StartTokenization - точка входа хоста: загрузка каталога для сессии
func (c *Checkout) StartTokenization(ctx context.Context, params TokenizationParams) ([]models.PaymentOption, error) {
	restrictions := c.Config.Restrictions(params.Restrictions)
	return c.Options.Load(ctx, params.Amount, restrictions)
}

// ParseTokenizationResult - разбор сериализованного результата токенизации,
// переданного между компонентами хост-приложения
func ParseTokenizationResult(data []byte) (*models.Token, error) {
	var token models.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, errors.Wrap(err, "failed to parse tokenization result")
	}
	if token.PaymentToken == "" {
		return nil, errors.New("tokenization result has no token")
	}
	return &token, nil
}

// StartConfirmation - запуск 3-DS подтверждения по адресу url.
// Слушатель ловит возврат пользователя, отмена контекста - отказ.
func (c *Checkout) StartConfirmation(ctx context.Context, url string) (confirm.Outcome, error) {
	listener, err := confirm.NewListener()
	if err != nil {
		return nil, err
	}
	logger.Info("Confirmation requested", "url", url, "return_url", listener.ReturnURL())
	return listener.Await(ctx)
}

// CurrentUser - текущий принципал SDK
func (c *Checkout) CurrentUser() models.CurrentUser {
	return c.Users.CurrentUser()
}

// Logout - сброс состояния SDK
func (c *Checkout) Logout(ctx context.Context) error {
	return c.LogoutFlow.Logout(ctx)
}

// Shutdown - остановка фоновых задач SDK
func (c *Checkout) Shutdown() {
	c.cancel()
	c.revoker.Stop()
}
