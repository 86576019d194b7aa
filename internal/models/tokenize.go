package models

// CardData - данные новой банковской карты, введённые пользователем
type CardData struct {
	Pan         string `json:"number"`
	ExpiryYear  string `json:"expiry_year"`
	ExpiryMonth string `json:"expiry_month"`
	CSC         string `json:"csc,omitempty"`
}

// TokenizeInput - запрос выпуска платёжного токена
type TokenizeInput struct {
	OptionID          int
	CSC               string
	SavePaymentMethod bool
	// Card заполняется только для оплаты новой картой
	Card *CardData
	// ReturnURL - адрес возврата после подтверждения 3-DS
	ReturnURL string
}

// Token - одноразовый платёжный токен, результат токенизации
type Token struct {
	PaymentToken string            `json:"payment_token"`
	Method       PaymentMethodType `json:"payment_method_type"`
}
