package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/client"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/logger"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/models"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/storage"
)

// CatalogService - загрузка каталога платёжных способов текущей сессии
type CatalogService interface {
	Load(ctx context.Context, amount models.Amount, restrictions map[models.PaymentMethodType]bool) ([]models.PaymentOption, error)
	Unbind(ctx context.Context, cardID string) error
}

// Catalog - сервис каталога. Каждая успешная загрузка целиком заменяет
// кэшированный набор способов, частичный каталог никогда не публикуется.
type Catalog struct {
	Gateway client.PaymentsGateway
	Tokens  storage.TokensStorage
	Cache   *storage.OptionsCache
}

// Создание сервиса
func NewCatalog(gateway client.PaymentsGateway, tokens storage.TokensStorage, cache *storage.OptionsCache) CatalogService {
	return &Catalog{Gateway: gateway, Tokens: tokens, Cache: cache}
}

// Load - загрузка каталога для суммы amount с исключением способов из restrictions
func (s *Catalog) Load(ctx context.Context, amount models.Amount, restrictions map[models.PaymentMethodType]bool) ([]models.PaymentOption, error) {
	tokens := client.BearerTokens{
		UserAuth:    s.Tokens.UserAuthToken(),
		PaymentAuth: s.Tokens.PaymentAuthToken(),
	}

	loaded, err := s.Gateway.PaymentOptions(ctx, amount, tokens)
	if err != nil {
		logger.Error("Failed to load payment options", err)
		return nil, err
	}

	// Фильтр ограничений магазина
	options := make([]models.PaymentOption, 0, len(loaded))
	for _, option := range loaded {
		if restrictions[option.Method()] {
			continue
		}
		options = append(options, option)
	}

	// Обогащение сохранённых карт сведениями о маске и платёжной системе.
	// Ошибка любого запроса валит загрузку целиком.
	if err := s.enrichLinkedCards(ctx, options, tokens); err != nil {
		logger.Error("Failed to enrich linked cards", err)
		return nil, err
	}

	s.Cache.Replace(options)
	logger.Info("Payment options loaded", "count", len(options))
	return options, nil
}

func (s *Catalog) enrichLinkedCards(ctx context.Context, options []models.PaymentOption, tokens client.BearerTokens) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for i, option := range options {
		card, ok := option.(models.LinkedCard)
		if !ok {
			continue
		}
		i, card := i, card
		group.Go(func() error {
			info, err := s.Gateway.PaymentMethodInfo(groupCtx, card.CardID, tokens)
			if err != nil {
				return err
			}
			card.PanFragment = info.PanFragment
			card.Brand = info.Brand
			options[i] = card
			return nil
		})
	}
	return group.Wait()
}

// Unbind - отвязка сохранённой карты, каталог после этого устаревает
func (s *Catalog) Unbind(ctx context.Context, cardID string) error {
	tokens := client.BearerTokens{UserAuth: s.Tokens.UserAuthToken()}
	if err := s.Gateway.UnbindCard(ctx, cardID, tokens); err != nil {
		logger.Error("Failed to unbind card", err)
		return err
	}
	s.Cache.Invalidate()
	return nil
}
