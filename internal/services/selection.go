package services

import (
	"errors"

	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/logger"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/models"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/storage"
)

var (
	// ErrOptionNotFound - идентификатор отсутствует в актуальном каталоге.
	// Жёсткая ошибка: выбор по устаревшему состоянию UI недопустим.
	ErrOptionNotFound = errors.New("payment option not found")
)

// SelectOptionOutput - закрытое множество исходов выбора способа оплаты:
// SelectedOption, UserAuthRequired
type SelectOptionOutput interface {
	isSelectOptionOutput()
}

// SelectedOption - способ выбран, можно продолжать токенизацию
type SelectedOption struct {
	Option models.PaymentOption
	// HasAnotherOptions - в каталоге есть другие способы (подсказка для UI)
	HasAnotherOptions bool
	// WalletLinkingPossible - перед оплатой кошельком стоит предложить
	// подтверждение платежа
	WalletLinkingPossible bool
}

func (SelectedOption) isSelectOptionOutput() {}

// UserAuthRequired - выбран непривязанный кошелёк, сначала нужна
// авторизация пользователя
type UserAuthRequired struct{}

func (UserAuthRequired) isSelectOptionOutput() {}

// SelectionService - выбор и смена платёжного способа
type SelectionService interface {
	Select(optionID int) (SelectOptionOutput, error)
}

type Selection struct {
	Cache  *storage.OptionsCache
	Tokens storage.TokensStorage
}

// Создание сервиса
func NewSelection(cache *storage.OptionsCache, tokens storage.TokensStorage) SelectionService {
	return &Selection{Cache: cache, Tokens: tokens}
}

// Select - выбор способа по идентификатору из кэшированного каталога.
// Смена способа выполняется повторным вызовом с другим идентификатором.
func (s *Selection) Select(optionID int) (SelectOptionOutput, error) {
	option, ok := s.Cache.Get(optionID)
	if !ok {
		logger.Warn("Select of unknown payment option", "id", optionID)
		return nil, ErrOptionNotFound
	}

	switch option.(type) {
	case models.AbstractWallet:
		// Кошелёк ещё не привязан - без авторизации продолжать нельзя
		return UserAuthRequired{}, nil
	case models.Wallet:
		return SelectedOption{
			Option:            option,
			HasAnotherOptions: s.Cache.Size() > 1,
			// Свежего токена подтверждения нет - предложим второй фактор
			WalletLinkingPossible: s.Tokens.PaymentAuthToken() == "",
		}, nil
	default:
		return SelectedOption{
			Option:            option,
			HasAnotherOptions: s.Cache.Size() > 1,
		}, nil
	}
}
