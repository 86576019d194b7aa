package services

import (
	"context"
	"errors"

	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/client"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/logger"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/models"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/storage"
)

var (
	// ErrNoSuchAuthType - ни один второй фактор не подходит.
	// Жёсткая ошибка: пропуск второго фактора для кошелька недопустим.
	ErrNoSuchAuthType = errors.New("no appropriate auth type")
)

// SelectAuthType - выбор второго фактора из списка, выданного сервером.
// Предпочитаемый тип defaultType возвращается, если он есть среди кандидатов,
// иначе берётся первый кандидат в серверном порядке. Пустой список - ошибка.
func SelectAuthType(defaultType models.AuthType, candidates []models.AuthTypeState) (models.AuthTypeState, error) {
	for _, candidate := range candidates {
		if candidate.Type == defaultType {
			return candidate, nil
		}
	}
	if len(candidates) > 0 {
		return candidates[0], nil
	}
	return models.AuthTypeState{}, ErrNoSuchAuthType
}

// PaymentAuthOutput - закрытое множество исходов проверки второго фактора:
// AuthCodeAccepted, AuthWrongAnswer, AuthSessionExpired
type PaymentAuthOutput interface {
	isPaymentAuthOutput()
}

// AuthCodeAccepted - ответ принят, токен подтверждения платежа получен
type AuthCodeAccepted struct{}

func (AuthCodeAccepted) isPaymentAuthOutput() {}

// AuthWrongAnswer - неверный ответ пользователя, ожидаемый исход.
// Answer возвращается для повторного показа в форме.
type AuthWrongAnswer struct {
	Answer       string
	AttemptsLeft *int
}

func (AuthWrongAnswer) isPaymentAuthOutput() {}

// AuthSessionExpired - контекст подтверждения истёк, нужен новый StartAuth
type AuthSessionExpired struct{}

func (AuthSessionExpired) isPaymentAuthOutput() {}

// PaymentAuthService - подтверждение платежа вторым фактором
type PaymentAuthService interface {
	StartAuth(ctx context.Context, amount models.Amount) (*models.AuthContext, models.AuthTypeState, error)
	CheckAuthCode(ctx context.Context, authType models.AuthType, answer string, contextID string, saveAuth bool) (PaymentAuthOutput, error)
}

type PaymentAuth struct {
	Gateway client.AuthGateway
	Tokens  storage.TokensStorage
}

// Создание сервиса
func NewPaymentAuth(gateway client.AuthGateway, tokens storage.TokensStorage) PaymentAuthService {
	return &PaymentAuth{Gateway: gateway, Tokens: tokens}
}

// StartAuth - запрос контекста подтверждения платежа и выбор второго фактора
func (s *PaymentAuth) StartAuth(ctx context.Context, amount models.Amount) (*models.AuthContext, models.AuthTypeState, error) {
	tokens := client.BearerTokens{UserAuth: s.Tokens.UserAuthToken()}

	authContext, err := s.Gateway.AuthContext(ctx, amount, tokens)
	if err != nil {
		logger.Error("Failed to get auth context", err)
		return nil, models.AuthTypeState{}, err
	}

	state, err := SelectAuthType(authContext.DefaultType, authContext.Types)
	if err != nil {
		logger.Error("No usable auth type in context", "context", authContext.ContextID)
		return nil, models.AuthTypeState{}, err
	}
	return authContext, state, nil
}

// CheckAuthCode - проверка ответа второго фактора. Успех сохраняет токен
// подтверждения платежа; saveAuth управляет его записью в защищённое хранилище.
func (s *PaymentAuth) CheckAuthCode(ctx context.Context, authType models.AuthType, answer string, contextID string, saveAuth bool) (PaymentAuthOutput, error) {
	tokens := client.BearerTokens{UserAuth: s.Tokens.UserAuthToken()}

	resp, err := s.Gateway.AuthCheck(ctx, contextID, authType, answer, tokens)
	if err != nil {
		logger.Error("Auth check failed", err)
		return nil, err
	}

	switch resp.Result {
	case client.AuthCheckResultOK:
		if err := s.Tokens.SetPaymentAuthToken(resp.AccessToken, saveAuth); err != nil {
			return nil, err
		}
		logger.Info("Payment auth confirmed", "type", string(authType))
		return AuthCodeAccepted{}, nil
	case client.AuthCheckResultInvalidAnswer:
		logger.Warn("Wrong auth answer", "type", string(authType))
		return AuthWrongAnswer{Answer: answer, AttemptsLeft: resp.AttemptsLeft}, nil
	case client.AuthCheckResultSessionExpired:
		logger.Warn("Auth session expired", "context", contextID)
		return AuthSessionExpired{}, nil
	default:
		logger.Error("Undefined auth check result", "result", resp.Result)
		return nil, errors.New("undefined auth check result " + resp.Result)
	}
}
