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

func states(types ...models.AuthType) []models.AuthTypeState {
	result := make([]models.AuthTypeState, 0, len(types))
	for _, authType := range types {
		result = append(result, models.AuthTypeState{Type: authType})
	}
	return result
}

func TestSelectAuthType(t *testing.T) {
	testCases := []struct {
		Name          string
		Default       models.AuthType
		Candidates    []models.AuthTypeState
		ExpectedError error
		ExpectedType  models.AuthType
	}{
		{
			Name:         "Default present returns default #1",
			Default:      models.AuthTypeSMS,
			Candidates:   states(models.AuthTypeSMS, models.AuthTypeEmergency),
			ExpectedType: models.AuthTypeSMS,
		},
		{
			Name:         "Default absent returns first candidate #2",
			Default:      models.AuthTypeSMS,
			Candidates:   states(models.AuthTypeTOTP, models.AuthTypeEmergency),
			ExpectedType: models.AuthTypeTOTP,
		},
		{
			Name:         "Default absent, server order wins #3",
			Default:      models.AuthTypePush,
			Candidates:   states(models.AuthTypeSMS, models.AuthTypeEmergency),
			ExpectedType: models.AuthTypeSMS,
		},
		{
			Name:         "Default in the middle #4",
			Default:      models.AuthTypeEmergency,
			Candidates:   states(models.AuthTypeSMS, models.AuthTypeEmergency, models.AuthTypeTOTP),
			ExpectedType: models.AuthTypeEmergency,
		},
		{
			Name:          "Empty candidates is a hard failure #5",
			Default:       models.AuthTypeSMS,
			Candidates:    states(),
			ExpectedError: ErrNoSuchAuthType,
		},
		{
			Name:          "Nil candidates is a hard failure #6",
			Default:       models.AuthTypeSMS,
			Candidates:    nil,
			ExpectedError: ErrNoSuchAuthType,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			state, err := SelectAuthType(tc.Default, tc.Candidates)

			if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if err == nil && state.Type != tc.ExpectedType {
				t.Errorf("Expected auth type '%s', got: '%s'", tc.ExpectedType, state.Type)
			}
		})
	}
}

func TestPaymentAuthService_StartAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockGateway := mocks.NewMockAuthGateway(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		Name          string
		SetupMocks    func()
		ExpectedError error
		ExpectedType  models.AuthType
	}{
		{
			Name: "Success. Default type selected #1",
			SetupMocks: func() {
				mockGateway.EXPECT().AuthContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&models.AuthContext{
						ContextID:   "ctx-1",
						DefaultType: models.AuthTypeSMS,
						Types:       states(models.AuthTypeTOTP, models.AuthTypeSMS),
					}, nil)
			},
			ExpectedType: models.AuthTypeSMS,
		},
		{
			Name: "Error. Empty auth types #2",
			SetupMocks: func() {
				mockGateway.EXPECT().AuthContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&models.AuthContext{ContextID: "ctx-2", DefaultType: models.AuthTypeSMS}, nil)
			},
			ExpectedError: ErrNoSuchAuthType,
		},
		{
			Name: "Error. Gateway failed #3",
			SetupMocks: func() {
				mockGateway.EXPECT().AuthContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("failed to get context"))
			},
			ExpectedError: errors.New("failed to get context"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			tokens := storage.NewTokenStore(storage.NewMemoryStorage())
			paymentAuth := NewPaymentAuth(mockGateway, tokens)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, state, err := paymentAuth.StartAuth(ctx, testAmount())

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if err == nil && state.Type != tc.ExpectedType {
				t.Errorf("Expected auth type '%s', got: '%s'", tc.ExpectedType, state.Type)
			}
		})
	}
}

func TestPaymentAuthService_CheckAuthCode(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	attemptsLeft := 2

	testCases := []struct {
		Name           string
		Answer         string
		SaveAuth       bool
		SetupMocks     func(gateway *mocks.MockAuthGateway)
		ExpectedError  error
		ExpectedOutput PaymentAuthOutput
		ExpectedToken  string
		ExpectedStored bool
	}{
		{
			Name:   "Success. Token obtained, memory only #1",
			Answer: "0000",
			SetupMocks: func(gateway *mocks.MockAuthGateway) {
				gateway.EXPECT().AuthCheck(gomock.Any(), "ctx-1", models.AuthTypeSMS, "0000", gomock.Any()).
					Return(&client.AuthCheckResponse{Result: client.AuthCheckResultOK, AccessToken: "payment-auth-token"}, nil)
			},
			ExpectedOutput: AuthCodeAccepted{},
			ExpectedToken:  "payment-auth-token",
		},
		{
			Name:     "Success. Token persisted on save auth #2",
			Answer:   "0000",
			SaveAuth: true,
			SetupMocks: func(gateway *mocks.MockAuthGateway) {
				gateway.EXPECT().AuthCheck(gomock.Any(), "ctx-1", models.AuthTypeSMS, "0000", gomock.Any()).
					Return(&client.AuthCheckResponse{Result: client.AuthCheckResultOK, AccessToken: "payment-auth-token"}, nil)
			},
			ExpectedOutput: AuthCodeAccepted{},
			ExpectedToken:  "payment-auth-token",
			ExpectedStored: true,
		},
		{
			Name:   "WrongAnswer. Answer returned for redisplay #3",
			Answer: "1234",
			SetupMocks: func(gateway *mocks.MockAuthGateway) {
				gateway.EXPECT().AuthCheck(gomock.Any(), "ctx-1", models.AuthTypeSMS, "1234", gomock.Any()).
					Return(&client.AuthCheckResponse{Result: client.AuthCheckResultInvalidAnswer, AttemptsLeft: &attemptsLeft}, nil)
			},
			ExpectedOutput: AuthWrongAnswer{Answer: "1234", AttemptsLeft: &attemptsLeft},
		},
		{
			Name:   "SessionExpired #4",
			Answer: "0000",
			SetupMocks: func(gateway *mocks.MockAuthGateway) {
				gateway.EXPECT().AuthCheck(gomock.Any(), "ctx-1", models.AuthTypeSMS, "0000", gomock.Any()).
					Return(&client.AuthCheckResponse{Result: client.AuthCheckResultSessionExpired}, nil)
			},
			ExpectedOutput: AuthSessionExpired{},
		},
		{
			Name:   "Error. Gateway failed #5",
			Answer: "0000",
			SetupMocks: func(gateway *mocks.MockAuthGateway) {
				gateway.EXPECT().AuthCheck(gomock.Any(), "ctx-1", models.AuthTypeSMS, "0000", gomock.Any()).
					Return(nil, errors.New("failed to check auth"))
			},
			ExpectedError: errors.New("failed to check auth"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockGateway := mocks.NewMockAuthGateway(ctrl)
			tc.SetupMocks(mockGateway)

			secure := storage.NewMemoryStorage()
			tokens := storage.NewTokenStore(secure)
			paymentAuth := NewPaymentAuth(mockGateway, tokens)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			output, err := paymentAuth.CheckAuthCode(ctx, models.AuthTypeSMS, tc.Answer, "ctx-1", tc.SaveAuth)

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

			if got := tokens.PaymentAuthToken(); got != tc.ExpectedToken {
				t.Errorf("Expected payment auth token '%s', got: '%s'", tc.ExpectedToken, got)
			}

			_, err = secure.Get(storage.KeyPaymentAuthToken)
			stored := err == nil
			if stored != tc.ExpectedStored {
				t.Errorf("Expected stored=%v, got %v", tc.ExpectedStored, stored)
			}
		})
	}
}
