package storage

import (
	"sync"

	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/models"
)

// OptionsCache - кэш загруженного каталога платёжных способов.
// Один каталог на checkout-сессию, перезаписывается целиком при
// каждой загрузке и инвалидируется при Logout.
type OptionsCache struct {
	mu      sync.Mutex
	options []models.PaymentOption
	actual  bool
}

func NewOptionsCache() *OptionsCache {
	return &OptionsCache{}
}

// Replace - замена кэшированного набора способов новым каталогом
func (c *OptionsCache) Replace(options []models.PaymentOption) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.options = options
	c.actual = true
}

// Options - текущий каталог и признак его актуальности
func (c *OptionsCache) Options() ([]models.PaymentOption, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.actual {
		return nil, false
	}
	return c.options, true
}

// Get - поиск способа по идентификатору в актуальном каталоге
func (c *OptionsCache) Get(optionID int) (models.PaymentOption, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.actual {
		return nil, false
	}
	for _, option := range c.options {
		if option.OptionID() == optionID {
			return option, true
		}
	}
	return nil, false
}

// Size - размер актуального каталога
func (c *OptionsCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.actual {
		return 0
	}
	return len(c.options)
}

// Invalidate - инвалидация каталога, устаревший набор нельзя токенизировать
func (c *OptionsCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.options = nil
	c.actual = false
}
