package models

import (
	"github.com/shopspring/decimal"
)

// Типы платёжных способов, приходящие от шлюза
const (
	MethodBankCard     PaymentMethodType = "bank_card"
	MethodLinkedCard   PaymentMethodType = "linked_card"
	MethodWallet       PaymentMethodType = "yoo_money"
	MethodSmsInvoicing PaymentMethodType = "sberbank"
	MethodGooglePay    PaymentMethodType = "google_pay"
)

// PaymentMethodType - тип платёжного способа
type PaymentMethodType string

// Amount - денежная сумма в валюте
type Amount struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

// Fee - комиссия, взимаемая при оплате (может отсутствовать)
type Fee struct {
	Service      *Amount `json:"service,omitempty"`
	Counterparty *Amount `json:"counterparty,omitempty"`
}

// CardBrand - платёжная система банковской карты
type CardBrand string

const (
	BrandVisa       CardBrand = "Visa"
	BrandMasterCard CardBrand = "MasterCard"
	BrandMir        CardBrand = "Mir"
	BrandUnknown    CardBrand = "Unknown"
)

// CardInfo - обогащённые сведения о сохранённой карте
type CardInfo struct {
	PanFragment string
	Brand       CardBrand
	ExpiryYear  string
	ExpiryMonth string
}

// PaymentOption - платёжный способ из каталога текущей сессии.
// Закрытое множество вариантов: NewBankCard, LinkedCard, Wallet,
// AbstractWallet, SmsInvoicing, GooglePay.
type PaymentOption interface {
	OptionID() int
	GetCharge() Amount
	GetFee() *Fee
	Method() PaymentMethodType
}

// BaseOption - общие атрибуты платёжного способа
type BaseOption struct {
	ID     int
	Charge Amount
	Fee    *Fee
}

func (o BaseOption) OptionID() int     { return o.ID }
func (o BaseOption) GetCharge() Amount { return o.Charge }
func (o BaseOption) GetFee() *Fee      { return o.Fee }

// NewBankCard - оплата новой банковской картой (данные карты вводит пользователь)
type NewBankCard struct {
	BaseOption
}

func (o NewBankCard) Method() PaymentMethodType { return MethodBankCard }

// LinkedCard - сохранённая (привязанная) банковская карта
type LinkedCard struct {
	BaseOption
	CardID      string
	PanFragment string
	Brand       CardBrand
	CardName    string
}

func (o LinkedCard) Method() PaymentMethodType { return MethodLinkedCard }

// Wallet - авторизованный кошелёк текущего пользователя
type Wallet struct {
	BaseOption
	WalletID string
	Balance  *Amount
}

func (o Wallet) Method() PaymentMethodType { return MethodWallet }

// AbstractWallet - кошелёк, который пользователь ещё не привязал.
// Выбор такого способа требует авторизации пользователя.
type AbstractWallet struct {
	BaseOption
}

func (o AbstractWallet) Method() PaymentMethodType { return MethodWallet }

// SmsInvoicing - оплата через СМС-перевод банка
type SmsInvoicing struct {
	BaseOption
}

func (o SmsInvoicing) Method() PaymentMethodType { return MethodSmsInvoicing }

// GooglePay - оплата через Google Pay
type GooglePay struct {
	BaseOption
}

func (o GooglePay) Method() PaymentMethodType { return MethodGooglePay }

// RequiresPaymentAuth - требует ли способ подтверждения платежа вторым фактором
func RequiresPaymentAuth(option PaymentOption) bool {
	switch option.(type) {
	case Wallet, *Wallet, LinkedCard, *LinkedCard:
		return true
	default:
		return false
	}
}

// RequiresCSC - требует ли способ ввода CVC/CVV кода
func RequiresCSC(option PaymentOption) bool {
	switch option.(type) {
	case NewBankCard, *NewBankCard, LinkedCard, *LinkedCard:
		return true
	default:
		return false
	}
}
