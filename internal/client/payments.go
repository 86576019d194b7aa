package client

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/models"
)

// PaymentsGateway - операции шлюза над платёжными способами
type PaymentsGateway interface {
	PaymentOptions(ctx context.Context, amount models.Amount, tokens BearerTokens) ([]models.PaymentOption, error)
	PaymentMethodInfo(ctx context.Context, methodID string, tokens BearerTokens) (*models.CardInfo, error)
	Tokenize(ctx context.Context, req TokenizeRequest, tokens BearerTokens) (*models.Token, error)
	UnbindCard(ctx context.Context, cardID string, tokens BearerTokens) error
}

// optionResponse - один платёжный способ в ответе шлюза
type optionResponse struct {
	ID              int          `json:"id"`
	MethodType      string       `json:"payment_method_type"`
	Charge          amountValue  `json:"charge"`
	Fee             *feeValue    `json:"fee,omitempty"`
	PaymentMethodID string       `json:"payment_method_id,omitempty"`
	WalletID        string       `json:"wallet_id,omitempty"`
	Balance         *amountValue `json:"balance,omitempty"`
	CardName        string       `json:"card_name,omitempty"`
	Authorized      bool         `json:"authorized"`
}

type amountValue struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

func (a amountValue) toAmount() models.Amount {
	return models.Amount{Value: a.Value, Currency: a.Currency}
}

type feeValue struct {
	Service      *amountValue `json:"service,omitempty"`
	Counterparty *amountValue `json:"counterparty,omitempty"`
}

func (f *feeValue) toFee() *models.Fee {
	if f == nil {
		return nil
	}
	fee := &models.Fee{}
	if f.Service != nil {
		service := f.Service.toAmount()
		fee.Service = &service
	}
	if f.Counterparty != nil {
		counterparty := f.Counterparty.toAmount()
		fee.Counterparty = &counterparty
	}
	return fee
}

type paymentOptionsRequest struct {
	Amount amountPayload `json:"amount"`
}

type paymentOptionsResponse struct {
	Items []optionResponse `json:"items"`
}

// PaymentOptions - загрузка каталога платёжных способов для суммы amount
func (c *Client) PaymentOptions(ctx context.Context, amount models.Amount, tokens BearerTokens) ([]models.PaymentOption, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/payment_options", paymentOptionsRequest{Amount: newAmountPayload(amount)}, tokens)
	if err != nil {
		return nil, err
	}

	var resp paymentOptionsResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}

	options := make([]models.PaymentOption, 0, len(resp.Items))
	for _, item := range resp.Items {
		options = append(options, mapOption(item))
	}
	return options, nil
}

// mapOption - преобразование ответа шлюза в вариант каталога
func mapOption(item optionResponse) models.PaymentOption {
	base := models.BaseOption{
		ID:     item.ID,
		Charge: item.Charge.toAmount(),
		Fee:    item.Fee.toFee(),
	}
	switch models.PaymentMethodType(item.MethodType) {
	case models.MethodLinkedCard:
		return models.LinkedCard{
			BaseOption: base,
			CardID:     item.PaymentMethodID,
			CardName:   item.CardName,
		}
	case models.MethodWallet:
		// Неавторизованный кошелёк предлагается как абстрактный:
		// выбор потребует авторизации пользователя
		if !item.Authorized {
			return models.AbstractWallet{BaseOption: base}
		}
		wallet := models.Wallet{BaseOption: base, WalletID: item.WalletID}
		if item.Balance != nil {
			balance := item.Balance.toAmount()
			wallet.Balance = &balance
		}
		return wallet
	case models.MethodSmsInvoicing:
		return models.SmsInvoicing{BaseOption: base}
	case models.MethodGooglePay:
		return models.GooglePay{BaseOption: base}
	default:
		return models.NewBankCard{BaseOption: base}
	}
}

type methodInfoResponse struct {
	Type        string `json:"type"`
	CardMask    string `json:"card_mask"`
	CardType    string `json:"card_type"`
	ExpiryYear  string `json:"expiry_year"`
	ExpiryMonth string `json:"expiry_month"`
}

// PaymentMethodInfo - обогащённые сведения о сохранённом способе оплаты
func (c *Client) PaymentMethodInfo(ctx context.Context, methodID string, tokens BearerTokens) (*models.CardInfo, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/payment_method?payment_method_id="+methodID, nil, tokens)
	if err != nil {
		return nil, err
	}

	var resp methodInfoResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}

	brand := models.CardBrand(resp.CardType)
	if brand == "" {
		brand = models.BrandUnknown
	}
	return &models.CardInfo{
		PanFragment: resp.CardMask,
		Brand:       brand,
		ExpiryYear:  resp.ExpiryYear,
		ExpiryMonth: resp.ExpiryMonth,
	}, nil
}

// TokenizeRequest - запрос выпуска платёжного токена
type TokenizeRequest struct {
	OptionID          int              `json:"payment_option_id"`
	MethodType        string           `json:"payment_method_type"`
	CSC               string           `json:"csc,omitempty"`
	Card              *models.CardData `json:"payment_method_data,omitempty"`
	SavePaymentMethod bool             `json:"save_payment_method"`
	TmxSessionID      string           `json:"tmx_session_id"`
	ReturnURL         string           `json:"return_url,omitempty"`
}

type tokenizeResponse struct {
	PaymentToken string `json:"payment_token"`
}

// Tokenize - выпуск одноразового платёжного токена.
// Ровно один запрос к шлюзу, повторы - решение вызывающего.
func (c *Client) Tokenize(ctx context.Context, tokenizeReq TokenizeRequest, tokens BearerTokens) (*models.Token, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/tokenize", tokenizeReq, tokens)
	if err != nil {
		return nil, err
	}

	var resp tokenizeResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &models.Token{
		PaymentToken: resp.PaymentToken,
		Method:       models.PaymentMethodType(tokenizeReq.MethodType),
	}, nil
}

type unbindRequest struct {
	CardID string `json:"card_id"`
}

// UnbindCard - отвязка сохранённой карты
func (c *Client) UnbindCard(ctx context.Context, cardID string, tokens BearerTokens) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/unbind", unbindRequest{CardID: cardID}, tokens)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// RemoteConfig - удалённый конфиг SDK (host-адреса и включённые способы оплаты)
type RemoteConfig struct {
	GatewayURL     string    `json:"gateway_url"`
	AuthGatewayURL string    `json:"auth_gateway_url"`
	EnabledMethods []string  `json:"enabled_payment_methods"`
	FetchedAt      time.Time `json:"-"`
}

// ConfigGateway - получение удалённого конфига
type ConfigGateway interface {
	Config(ctx context.Context) (*RemoteConfig, error)
}

// Config - загрузка удалённого конфига SDK
func (c *Client) Config(ctx context.Context) (*RemoteConfig, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/config", nil, BearerTokens{})
	if err != nil {
		return nil, err
	}

	var resp RemoteConfig
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	resp.FetchedAt = time.Now()
	return &resp, nil
}
