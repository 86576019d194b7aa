package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/models"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client - HTTP-клиент платёжного шлюза. Авторизуется ключом магазина,
// bearer-токены пользователя передаются в каждый вызов явно.
type Client struct {
	baseURL    string
	shopToken  string
	httpClient HTTPClient
	limiter    *RateLimiter
}

func NewClient(baseURL string, shopToken string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    baseURL,
		shopToken:  shopToken,
		httpClient: httpClient,
		limiter:    NewRateLimiter(),
	}
}

// BearerTokens - токены пользователя для одного вызова шлюза
type BearerTokens struct {
	UserAuth    string
	PaymentAuth string
}

func (c *Client) newRequest(ctx context.Context, method string, path string, body interface{}, tokens BearerTokens) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Basic "+c.shopToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tokens.UserAuth != "" {
		req.Header.Set("Passport-Authorization", "Bearer "+tokens.UserAuth)
	}
	if tokens.PaymentAuth != "" {
		req.Header.Set("Wallet-Authorization", "Bearer "+tokens.PaymentAuth)
	}
	return req, nil
}

// do - выполнение запроса с учётом лимитов и разбором ответа в result
func (c *Client) do(req *http.Request, result interface{}) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := HandleErrorResponse(resp)
		// Шлюз просит снизить частоту запросов
		var rateErr *RateLimitError
		if errors.As(err, &rateErr) {
			c.limiter.BlockFor(rateErr.RetryAfter)
		}
		return err
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// HandleErrorResponse - преобразование неуспешного ответа шлюза в типизированную ошибку
func HandleErrorResponse(resp *http.Response) error {
	if resp.StatusCode == http.StatusTooManyRequests {
		return NewRateLimitError(resp.Header)
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	var body struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Code = body.Code
		apiErr.Description = body.Description
	}
	return apiErr
}

// amountPayload - представление суммы в запросах шлюза
type amountPayload struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

func newAmountPayload(amount models.Amount) amountPayload {
	return amountPayload{
		Value:    amount.Value.StringFixed(2),
		Currency: amount.Currency,
	}
}
