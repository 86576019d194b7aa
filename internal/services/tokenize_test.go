package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/client"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/client/mocks"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/config"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/logger"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/models"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/storage"
)

func TestTokenizeService_Tokenize(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	newCard := models.NewBankCard{BaseOption: models.BaseOption{ID: 1, Charge: testAmount()}}
	wallet := models.Wallet{BaseOption: models.BaseOption{ID: 2, Charge: testAmount()}, WalletID: "w1"}
	linked := models.LinkedCard{BaseOption: models.BaseOption{ID: 3, Charge: testAmount()}, CardID: "pm-1"}
	sms := models.SmsInvoicing{BaseOption: models.BaseOption{ID: 4, Charge: testAmount()}}

	cardData := &models.CardData{Pan: "4793128161644804", ExpiryYear: "30", ExpiryMonth: "12", CSC: "123"}

	testCases := []struct {
		Name             string
		Catalog          []models.PaymentOption
		PaymentAuthToken string
		Input            models.TokenizeInput
		SetupMocks       func(gateway *mocks.MockPaymentsGateway)
		ExpectedError    error
		ExpectedOutput   TokenizeOutput
	}{
		{
			Name:    "Success. New bank card #1",
			Catalog: []models.PaymentOption{newCard, sms},
			Input:   models.TokenizeInput{OptionID: 1, Card: cardData, SavePaymentMethod: true},
			SetupMocks: func(gateway *mocks.MockPaymentsGateway) {
				gateway.EXPECT().
					Tokenize(gomock.Any(), gomock.Cond(func(x any) bool {
						req, ok := x.(client.TokenizeRequest)
						return ok && req.OptionID == 1 && req.SavePaymentMethod && req.TmxSessionID != ""
					}), gomock.Any()).
					Return(&models.Token{PaymentToken: "token-1", Method: models.MethodBankCard}, nil)
			},
			ExpectedOutput: TokenizeSuccess{Token: models.Token{PaymentToken: "token-1", Method: models.MethodBankCard}},
		},
		{
			Name:             "Success. Wallet with payment auth #2",
			Catalog:          []models.PaymentOption{wallet},
			PaymentAuthToken: "payment-auth-token",
			Input:            models.TokenizeInput{OptionID: 2},
			SetupMocks: func(gateway *mocks.MockPaymentsGateway) {
				gateway.EXPECT().
					Tokenize(gomock.Any(), gomock.Any(), client.BearerTokens{PaymentAuth: "payment-auth-token"}).
					Return(&models.Token{PaymentToken: "token-2", Method: models.MethodWallet}, nil)
			},
			ExpectedOutput: TokenizeSuccess{Token: models.Token{PaymentToken: "token-2", Method: models.MethodWallet}},
		},
		{
			Name:           "PaymentAuthRequired. Wallet without token #3",
			Catalog:        []models.PaymentOption{wallet},
			Input:          models.TokenizeInput{OptionID: 2},
			SetupMocks:     func(gateway *mocks.MockPaymentsGateway) {},
			ExpectedOutput: PaymentAuthRequired{Charge: testAmount()},
		},
		{
			Name:           "OptionInfoRequired. New card without data #4",
			Catalog:        []models.PaymentOption{newCard},
			Input:          models.TokenizeInput{OptionID: 1},
			SetupMocks:     func(gateway *mocks.MockPaymentsGateway) {},
			ExpectedOutput: OptionInfoRequired{Option: newCard},
		},
		{
			Name:    "OptionInfoRequired. New card with invalid pan #5",
			Catalog: []models.PaymentOption{newCard},
			Input: models.TokenizeInput{
				OptionID: 1,
				Card:     &models.CardData{Pan: "4793128161644805", ExpiryYear: "30", ExpiryMonth: "12", CSC: "123"},
			},
			SetupMocks:     func(gateway *mocks.MockPaymentsGateway) {},
			ExpectedOutput: OptionInfoRequired{Option: newCard},
		},
		{
			Name:             "OptionInfoRequired. Linked card without CSC #6",
			Catalog:          []models.PaymentOption{linked},
			PaymentAuthToken: "payment-auth-token",
			Input:            models.TokenizeInput{OptionID: 3},
			SetupMocks:       func(gateway *mocks.MockPaymentsGateway) {},
			ExpectedOutput:   OptionInfoRequired{Option: linked},
		},
		{
			Name:          "Error. Option id absent from catalog #7",
			Catalog:       []models.PaymentOption{newCard},
			Input:         models.TokenizeInput{OptionID: 42},
			SetupMocks:    func(gateway *mocks.MockPaymentsGateway) {},
			ExpectedError: ErrOptionNotFound,
		},
		{
			Name:          "Error. Invalidated catalog fails even for known id #8",
			Catalog:       nil,
			Input:         models.TokenizeInput{OptionID: 1},
			SetupMocks:    func(gateway *mocks.MockPaymentsGateway) {},
			ExpectedError: ErrOptionNotFound,
		},
		{
			Name:    "Error. Gateway declined #9",
			Catalog: []models.PaymentOption{sms},
			Input:   models.TokenizeInput{OptionID: 4},
			SetupMocks: func(gateway *mocks.MockPaymentsGateway) {
				gateway.EXPECT().Tokenize(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("failed to tokenize"))
			},
			ExpectedError: errors.New("failed to tokenize"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockGateway := mocks.NewMockPaymentsGateway(ctrl)
			tc.SetupMocks(mockGateway)

			tokens := storage.NewTokenStore(storage.NewMemoryStorage())
			if tc.PaymentAuthToken != "" {
				if err := tokens.SetPaymentAuthToken(tc.PaymentAuthToken, false); err != nil {
					t.Fatalf("Failed to set payment auth token: '%v'", err)
				}
			}

			cache := storage.NewOptionsCache()
			if tc.Catalog != nil {
				cache.Replace(tc.Catalog)
			}

			tokenizer := NewTokenizer(mockGateway, tokens, cache)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			output, err := tokenizer.Tokenize(ctx, tc.Input)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}

			diff := cmp.Diff(tc.ExpectedOutput, output)
			if len(diff) != 0 {
				t.Errorf("expected output mismatch:\n %s", diff)
			}
		})
	}
}

// Устаревание каталога между выбором и токенизацией приводит
// к ErrOptionNotFound, а не к токенизации устаревшего инструмента
func TestTokenizeService_StaleCatalog(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockGateway := mocks.NewMockPaymentsGateway(ctrl)

	sms := models.SmsInvoicing{BaseOption: models.BaseOption{ID: 1, Charge: testAmount()}}

	tokens := storage.NewTokenStore(storage.NewMemoryStorage())
	cache := storage.NewOptionsCache()
	cache.Replace([]models.PaymentOption{sms})

	selection := NewSelection(cache, tokens)
	if _, err := selection.Select(1); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	// Каталог инвалидирован между выбором и токенизацией
	cache.Invalidate()

	tokenizer := NewTokenizer(mockGateway, tokens, cache)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := tokenizer.Tokenize(ctx, models.TokenizeInput{OptionID: 1})
	if !errors.Is(err, ErrOptionNotFound) {
		t.Errorf("Expected ErrOptionNotFound, got: '%v'", err)
	}
}
