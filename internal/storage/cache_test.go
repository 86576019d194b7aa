package storage

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/models"
)

func makeOptions() []models.PaymentOption {
	charge := models.Amount{Value: decimal.NewFromInt(100), Currency: "RUB"}
	return []models.PaymentOption{
		models.NewBankCard{BaseOption: models.BaseOption{ID: 1, Charge: charge}},
		models.Wallet{BaseOption: models.BaseOption{ID: 2, Charge: charge}, WalletID: "w-1"},
	}
}

func TestOptionsCache(t *testing.T) {
	cache := NewOptionsCache()

	// До первой загрузки каталог не актуален
	if _, actual := cache.Options(); actual {
		t.Errorf("Expected empty cache to be not actual")
	}
	if _, found := cache.Get(1); found {
		t.Errorf("Expected no option in empty cache")
	}
	if size := cache.Size(); size != 0 {
		t.Errorf("Expected size 0, got: %d", size)
	}

	options := makeOptions()
	cache.Replace(options)

	got, actual := cache.Options()
	if !actual {
		t.Fatalf("Expected cache to be actual after replace")
	}
	if diff := cmp.Diff(options, got); len(diff) != 0 {
		t.Errorf("expected options mismatch:\n %s", diff)
	}
	if size := cache.Size(); size != 2 {
		t.Errorf("Expected size 2, got: %d", size)
	}

	option, found := cache.Get(2)
	if !found {
		t.Fatalf("Expected option 2 to be found")
	}
	if diff := cmp.Diff(options[1], option); len(diff) != 0 {
		t.Errorf("expected option mismatch:\n %s", diff)
	}
	if _, found := cache.Get(42); found {
		t.Errorf("Expected unknown option to be not found")
	}
}

func TestOptionsCache_Replace(t *testing.T) {
	cache := NewOptionsCache()
	cache.Replace(makeOptions())

	// Каталог заменяется целиком, прежние способы недоступны
	charge := models.Amount{Value: decimal.NewFromInt(100), Currency: "RUB"}
	cache.Replace([]models.PaymentOption{
		models.SmsInvoicing{BaseOption: models.BaseOption{ID: 7, Charge: charge}},
	})

	if _, found := cache.Get(1); found {
		t.Errorf("Expected old option to be dropped")
	}
	if _, found := cache.Get(7); !found {
		t.Errorf("Expected new option to be found")
	}
	if size := cache.Size(); size != 1 {
		t.Errorf("Expected size 1, got: %d", size)
	}
}

func TestOptionsCache_Invalidate(t *testing.T) {
	cache := NewOptionsCache()
	cache.Replace(makeOptions())
	cache.Invalidate()

	if _, actual := cache.Options(); actual {
		t.Errorf("Expected invalidated cache to be not actual")
	}
	if _, found := cache.Get(1); found {
		t.Errorf("Expected no option after invalidate")
	}
	if size := cache.Size(); size != 0 {
		t.Errorf("Expected size 0, got: %d", size)
	}
}
