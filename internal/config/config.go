package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env"
	"github.com/sethvargo/go-retry"
	"github.com/spf13/pflag"

	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/client"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/logger"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/models"
)

type Arguments struct {
	GatewayURL     string `env:"GATEWAY_URL" envDefault:"https://sdk.yookassa.ru/api/frontend/v3"`
	AuthGatewayURL string `env:"AUTH_GATEWAY_URL" envDefault:"https://yoomoney.ru/api/wallet-auth/v1"`
	ShopToken      string `env:"SHOP_TOKEN" envDefault:""`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	StoragePath    string `env:"STORAGE_PATH" envDefault:".checkout"`
}

// ShopConfig модель настроек магазина
type ShopConfig struct {
	ShopToken      string
	GatewayURL     string
	AuthGatewayURL string
}

// Config модель настроек SDK
type Config struct {
	Shop        ShopConfig
	LogLevel    string
	StoragePath string
	// EnabledMethods - включённые удалённым конфигом способы оплаты;
	// пустой список означает "включены все"
	EnabledMethods []models.PaymentMethodType
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		gateway     = pflag.StringP("gateway", "g", args.GatewayURL, "Payment gateway base URL.")
		authGateway = pflag.StringP("auth_gateway", "w", args.AuthGatewayURL, "Wallet auth gateway base URL.")
		shopToken   = pflag.StringP("shop_token", "s", args.ShopToken, "Shop client key for Basic auth.")
		logLevel    = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		storagePath = pflag.StringP("storage", "p", args.StoragePath, "Secure storage directory.")
	)
	pflag.Parse()

	return Config{
		Shop: ShopConfig{
			ShopToken:      *shopToken,
			GatewayURL:     *gateway,
			AuthGatewayURL: *authGateway,
		},
		LogLevel:    *logLevel,
		StoragePath: *storagePath,
	}
}

func DefaultConfig() Config {
	return Config{
		Shop: ShopConfig{
			GatewayURL:     "https://sdk.yookassa.ru/api/frontend/v3",
			AuthGatewayURL: "https://yoomoney.ru/api/wallet-auth/v1",
		},
		LogLevel:    "info",
		StoragePath: ".checkout",
	}
}

// FetchRemote - однократная на сессию загрузка удалённого конфига.
// Сетевые ошибки повторяются с экспоненциальной задержкой; если конфиг
// так и не получен, остаются встроенные значения по умолчанию.
func FetchRemote(ctx context.Context, base Config, gateway client.ConfigGateway) Config {
	var remote *client.RemoteConfig

	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		fetched, err := gateway.Config(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		remote = fetched
		return nil
	})
	if err != nil {
		logger.Warn("Remote config unavailable, using defaults", err)
		return base
	}

	merged := base
	if remote.GatewayURL != "" {
		merged.Shop.GatewayURL = remote.GatewayURL
	}
	if remote.AuthGatewayURL != "" {
		merged.Shop.AuthGatewayURL = remote.AuthGatewayURL
	}
	for _, method := range remote.EnabledMethods {
		merged.EnabledMethods = append(merged.EnabledMethods, models.PaymentMethodType(strings.TrimSpace(method)))
	}
	logger.Info("Remote config applied", "fetched_at", remote.FetchedAt)
	return merged
}

// Restrictions - объединение ограничений магазина и способов,
// выключенных удалённым конфигом
func (c Config) Restrictions(merchant []models.PaymentMethodType) map[models.PaymentMethodType]bool {
	restrictions := make(map[models.PaymentMethodType]bool)
	for _, method := range merchant {
		restrictions[method] = true
	}
	if len(c.EnabledMethods) == 0 {
		return restrictions
	}

	enabled := make(map[models.PaymentMethodType]bool)
	for _, method := range c.EnabledMethods {
		enabled[method] = true
	}
	for _, method := range []models.PaymentMethodType{
		models.MethodBankCard,
		models.MethodLinkedCard,
		models.MethodWallet,
		models.MethodSmsInvoicing,
		models.MethodGooglePay,
	} {
		if !enabled[method] {
			restrictions[method] = true
		}
	}
	return restrictions
}
