package main

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/app"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/config"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/logger"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/models"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/services"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/storage"
)

// Демо-приложение: поднимает локальный макет шлюза и проходит полный
// путь токенизации - каталог, авторизация, второй фактор, токен.
func main() {
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()

	gatewayURL, stop := startMockGateway()
	defer stop()

	cfg.Shop.GatewayURL = gatewayURL
	cfg.Shop.AuthGatewayURL = gatewayURL
	cfg.Shop.ShopToken = "demo-shop-token"

	checkout, err := app.NewCheckout(cfg, storage.NewMemoryStorage(), demoAuthorizer(), nil)
	if err != nil {
		logger.Panic(err)
	}
	defer checkout.Shutdown()

	ctx := context.Background()
	amount := models.Amount{Value: decimal.NewFromInt(100), Currency: "RUB"}

	// Авторизация пользователя: внешний аккаунт обменивается на токен кошелька
	outcome, err := checkout.UserAuth.Authenticate(ctx)
	if err != nil {
		logger.Panic(err)
	}
	if success, ok := outcome.(services.AuthSuccess); ok {
		logger.Info("Authorized as", success.User.Name)
	}

	// Каталог платёжных способов
	options, err := checkout.StartTokenization(ctx, app.TokenizationParams{Amount: amount})
	if err != nil {
		logger.Panic(err)
	}
	for _, option := range options {
		logger.Info("Payment option", "id", option.OptionID(), "method", string(option.Method()))
	}

	// Выбираем кошелёк
	wallet := options[len(options)-1]
	selected, err := checkout.Selection.Select(wallet.OptionID())
	if err != nil {
		logger.Panic(err)
	}
	logger.Info("Selected option", "result", fmt.Sprintf("%T", selected))

	// Подтверждение платежа вторым фактором
	authContext, state, err := checkout.PaymentAuth.StartAuth(ctx, amount)
	if err != nil {
		logger.Panic(err)
	}
	logger.Info("Auth type selected", "type", string(state.Type))

	check, err := checkout.PaymentAuth.CheckAuthCode(ctx, state.Type, "0000", authContext.ContextID, false)
	if err != nil {
		logger.Panic(err)
	}
	if _, ok := check.(services.AuthCodeAccepted); !ok {
		logger.Panic("unexpected auth check outcome")
	}

	// Токенизация выбранного способа
	result, err := checkout.Tokenizer.Tokenize(ctx, models.TokenizeInput{OptionID: wallet.OptionID()})
	if err != nil {
		logger.Panic(err)
	}
	token := result.(services.TokenizeSuccess).Token
	logger.Info("Payment token issued", "token", token.PaymentToken)

	if err := checkout.Logout(ctx); err != nil {
		logger.Panic(err)
	}
	logger.Info("Demo finished")
}

// demoAuthorizer - макет внешнего авторизатора аккаунта
func demoAuthorizer() services.AccountAuthorizer {
	tokenAuth := jwtauth.New("HS256", []byte("demo-account-secret"), nil)
	return services.AuthorizerFunc(func(ctx context.Context) (*services.AccountIdentity, error) {
		_, tokenString, err := tokenAuth.Encode(map[string]interface{}{"display_name": "Демо Пользователь"})
		if err != nil {
			return nil, err
		}
		return &services.AccountIdentity{Token: tokenString}, nil
	})
}

// startMockGateway - локальный макет платёжного шлюза
func startMockGateway() (string, func()) {
	tokenAuth := jwtauth.New("HS256", []byte("demo-wallet-secret"), nil)

	r := chi.NewRouter()

	r.Post("/wallet/check", func(w http.ResponseWriter, req *http.Request) {
		_, authToken, err := tokenAuth.Encode(map[string]interface{}{"wallet_id": "demo-wallet"})
		if err != nil {
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]interface{}{
			"wallet_exists": true,
			"account_name":  "Демо Пользователь",
			"auth_token":    authToken,
		})
	})

	r.Post("/payment_options", func(w http.ResponseWriter, req *http.Request) {
		authorized := fromPassportHeader(req) != ""
		writeJSON(w, map[string]interface{}{
			"items": []map[string]interface{}{
				{
					"id":                  1,
					"payment_method_type": "bank_card",
					"charge":              map[string]string{"value": "100.00", "currency": "RUB"},
				},
				// Удалённый конфиг не включает sberbank - SDK отфильтрует его сам
				{
					"id":                  2,
					"payment_method_type": "sberbank",
					"charge":              map[string]string{"value": "100.00", "currency": "RUB"},
				},
				{
					"id":                  3,
					"payment_method_type": "yoo_money",
					"charge":              map[string]string{"value": "100.00", "currency": "RUB"},
					"authorized":          authorized,
					"wallet_id":           "demo-wallet",
					"balance":             map[string]string{"value": "1500.00", "currency": "RUB"},
				},
			},
		})
	})

	r.Post("/revoke-token", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})

	r.Get("/config", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]interface{}{"enabled_payment_methods": []string{"bank_card", "yoo_money"}})
	})

	// Операции кошелька требуют токена авторизации пользователя
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verify(tokenAuth, fromPassportHeader))
		r.Use(jwtauth.Authenticator(tokenAuth))

		r.Post("/checkout/auth-context", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, map[string]interface{}{
				"auth_context_id":   uuid.New().String(),
				"default_auth_type": "Sms",
				"auth_types":        []map[string]interface{}{{"type": "Sms"}},
			})
		})

		r.Post("/checkout/auth-check", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Answer string `json:"answer"`
			}
			_ = json.NewDecoder(req.Body).Decode(&body)
			if body.Answer != "0000" {
				attempts := 2
				writeJSON(w, map[string]interface{}{"result": "invalid_answer", "attempts_left": attempts})
				return
			}
			writeJSON(w, map[string]interface{}{"result": "ok", "access_token": uuid.New().String()})
		})

		r.Post("/tokenize", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, map[string]string{"payment_token": uuid.New().String()})
		})
	})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		panic(err)
	}
	server := &http.Server{Handler: r}
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen mock gateway", err.Error())
		}
	}()

	return "http://" + listener.Addr().String(), func() {
		_ = server.Close()
	}
}

// fromPassportHeader - извлечение bearer-токена пользователя из запроса
func fromPassportHeader(r *http.Request) string {
	bearer := r.Header.Get("Passport-Authorization")
	if len(bearer) > 7 && bearer[:7] == "Bearer " {
		return bearer[7:]
	}
	return ""
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Server error", http.StatusInternalServerError)
	}
}
