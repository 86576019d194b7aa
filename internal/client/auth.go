package client

import (
	"context"
	"net/http"
	"time"

	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/models"
)

// Результаты проверки ответа второго фактора
const (
	AuthCheckResultOK             = "ok"
	AuthCheckResultInvalidAnswer  = "invalid_answer"
	AuthCheckResultSessionExpired = "session_expired"
)

// AuthGateway - операции шлюза авторизации и подтверждения платежей
type AuthGateway interface {
	WalletCheck(ctx context.Context, accountToken string) (*WalletCheckResponse, error)
	AuthContext(ctx context.Context, amount models.Amount, tokens BearerTokens) (*models.AuthContext, error)
	AuthCheck(ctx context.Context, contextID string, authType models.AuthType, answer string, tokens BearerTokens) (*AuthCheckResponse, error)
	RevokeToken(ctx context.Context, userAuthToken string) error
}

// WalletCheckResponse - наличие кошелька у внешнего аккаунта
type WalletCheckResponse struct {
	WalletExists bool   `json:"wallet_exists"`
	AccountName  string `json:"account_name"`
	AuthToken    string `json:"auth_token"`
}

type walletCheckRequest struct {
	AccountToken string `json:"account_token"`
}

// WalletCheck - проверка существования кошелька, привязанного к внешнему аккаунту.
// При наличии кошелька шлюз выдаёт токен авторизации пользователя.
func (c *Client) WalletCheck(ctx context.Context, accountToken string) (*WalletCheckResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/wallet/check", walletCheckRequest{AccountToken: accountToken}, BearerTokens{})
	if err != nil {
		return nil, err
	}

	var resp WalletCheckResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type authContextRequest struct {
	Amount amountPayload `json:"amount"`
}

type authContextResponse struct {
	ContextID   string `json:"auth_context_id"`
	DefaultType string `json:"default_auth_type"`
	Types       []struct {
		Type              string `json:"type"`
		NextSessionTimeMS int64  `json:"next_session_time_ms,omitempty"`
	} `json:"auth_types"`
}

// AuthContext - запрос контекста подтверждения платежа: сервер возвращает
// список доступных вторых факторов и предпочитаемый тип
func (c *Client) AuthContext(ctx context.Context, amount models.Amount, tokens BearerTokens) (*models.AuthContext, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/checkout/auth-context", authContextRequest{Amount: newAmountPayload(amount)}, tokens)
	if err != nil {
		return nil, err
	}

	var resp authContextResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}

	context := &models.AuthContext{
		ContextID:   resp.ContextID,
		DefaultType: models.AuthType(resp.DefaultType),
	}
	for _, state := range resp.Types {
		item := models.AuthTypeState{Type: models.AuthType(state.Type)}
		if state.NextSessionTimeMS > 0 {
			expiresAt := time.Now().Add(time.Duration(state.NextSessionTimeMS) * time.Millisecond)
			item.ExpiresAt = &expiresAt
		}
		context.Types = append(context.Types, item)
	}
	return context, nil
}

type authCheckRequest struct {
	ContextID string `json:"auth_context_id"`
	AuthType  string `json:"auth_type"`
	Answer    string `json:"answer"`
}

// AuthCheckResponse - результат проверки ответа второго фактора.
// Неверный ответ - ожидаемый исход, а не ошибка вызова.
type AuthCheckResponse struct {
	Result       string `json:"result"`
	AccessToken  string `json:"access_token,omitempty"`
	AttemptsLeft *int   `json:"attempts_left,omitempty"`
}

// AuthCheck - проверка ответа второго фактора в контексте contextID
func (c *Client) AuthCheck(ctx context.Context, contextID string, authType models.AuthType, answer string, tokens BearerTokens) (*AuthCheckResponse, error) {
	body := authCheckRequest{ContextID: contextID, AuthType: string(authType), Answer: answer}
	req, err := c.newRequest(ctx, http.MethodPost, "/checkout/auth-check", body, tokens)
	if err != nil {
		return nil, err
	}

	var resp AuthCheckResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type revokeRequest struct {
	Token string `json:"token"`
}

// RevokeToken - отзыв токена авторизации пользователя на шлюзе
func (c *Client) RevokeToken(ctx context.Context, userAuthToken string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/revoke-token", revokeRequest{Token: userAuthToken}, BearerTokens{})
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
