package services

import (
	"context"

	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/client"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/logger"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/models"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/storage"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/validators"
)

// TokenizeOutput - закрытое множество исходов токенизации:
// TokenizeSuccess, PaymentAuthRequired, OptionInfoRequired
type TokenizeOutput interface {
	isTokenizeOutput()
}

// TokenizeSuccess - токен выпущен
type TokenizeSuccess struct {
	Token models.Token
}

func (TokenizeSuccess) isTokenizeOutput() {}

// PaymentAuthRequired - перед токенизацией кошелькового способа нужно
// подтверждение платежа вторым фактором
type PaymentAuthRequired struct {
	Charge models.Amount
}

func (PaymentAuthRequired) isTokenizeOutput() {}

// OptionInfoRequired - для способа не хватает данных инструмента (CVC, карта)
type OptionInfoRequired struct {
	Option models.PaymentOption
}

func (OptionInfoRequired) isTokenizeOutput() {}

// TokenizeService - выпуск платёжного токена
type TokenizeService interface {
	Tokenize(ctx context.Context, input models.TokenizeInput) (TokenizeOutput, error)
}

type Tokenizer struct {
	Gateway client.PaymentsGateway
	Tokens  storage.TokensStorage
	Cache   *storage.OptionsCache
}

// Создание сервиса
func NewTokenizer(gateway client.PaymentsGateway, tokens storage.TokensStorage, cache *storage.OptionsCache) TokenizeService {
	return &Tokenizer{Gateway: gateway, Tokens: tokens, Cache: cache}
}

// Tokenize - выпуск одноразового платёжного токена для выбранного способа.
// Идентификатор разрешается по актуальному каталогу в момент вызова:
// перезагрузка каталога или Logout между выбором и отправкой приводят
// к ErrOptionNotFound, а не к токенизации устаревшего инструмента.
func (s *Tokenizer) Tokenize(ctx context.Context, input models.TokenizeInput) (TokenizeOutput, error) {
	option, ok := s.Cache.Get(input.OptionID)
	if !ok {
		logger.Warn("Tokenize of unknown payment option", "id", input.OptionID)
		return nil, ErrOptionNotFound
	}

	// Кошельковые способы без токена подтверждения не токенизируются
	if models.RequiresPaymentAuth(option) && s.Tokens.PaymentAuthToken() == "" {
		logger.Info("Payment auth required before tokenize", "id", input.OptionID)
		return PaymentAuthRequired{Charge: option.GetCharge()}, nil
	}

	// Проверка полноты данных инструмента
	switch option.(type) {
	case models.NewBankCard:
		if input.Card == nil || input.Card.CSC == "" {
			return OptionInfoRequired{Option: option}, nil
		}
		// Номер с опечаткой не отправляем на шлюз
		if !validators.IsCorrectPan(input.Card.Pan) {
			logger.Warn("Tokenize of card with invalid pan", "id", input.OptionID)
			return OptionInfoRequired{Option: option}, nil
		}
	case models.LinkedCard:
		if input.CSC == "" {
			return OptionInfoRequired{Option: option}, nil
		}
	}

	tmxSessionID, err := s.Tokens.TmxSessionID()
	if err != nil {
		return nil, err
	}

	req := client.TokenizeRequest{
		OptionID:          input.OptionID,
		MethodType:        string(option.Method()),
		CSC:               input.CSC,
		Card:              input.Card,
		SavePaymentMethod: input.SavePaymentMethod,
		TmxSessionID:      tmxSessionID,
		ReturnURL:         input.ReturnURL,
	}
	tokens := client.BearerTokens{
		UserAuth:    s.Tokens.UserAuthToken(),
		PaymentAuth: s.Tokens.PaymentAuthToken(),
	}

	// Единственный запрос к шлюзу, без внутренних повторов
	token, err := s.Gateway.Tokenize(ctx, req, tokens)
	if err != nil {
		logger.Error("Tokenize failed", err)
		return nil, err
	}

	logger.Info("Payment token issued", "method", string(option.Method()))
	return TokenizeSuccess{Token: *token}, nil
}
