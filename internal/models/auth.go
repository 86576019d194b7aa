package models

import "time"

// AuthType - тип второго фактора подтверждения платежа
type AuthType string

const (
	AuthTypeSMS            AuthType = "Sms"
	AuthTypeTOTP           AuthType = "Totp"
	AuthTypeSecurePassword AuthType = "SecurePassword"
	AuthTypePush           AuthType = "Push"
	AuthTypeEmergency      AuthType = "Emergency"
	AuthTypeOauthToken     AuthType = "OauthToken"
	AuthTypeNotNeeded      AuthType = "NotNeeded"
	AuthTypeUnknown        AuthType = "Unknown"
)

// AuthTypeState - состояние одного доступного второго фактора
// для текущего запроса подтверждения платежа
type AuthTypeState struct {
	Type      AuthType   `json:"type"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// AuthContext - контекст подтверждения платежа, выданный шлюзом
type AuthContext struct {
	ContextID   string
	DefaultType AuthType
	Types       []AuthTypeState
}

// CurrentUser - текущий принципал SDK.
// Закрытое множество вариантов: AnonymousUser, AuthorizedUser.
type CurrentUser interface {
	isCurrentUser()
}

// AnonymousUser - неавторизованный пользователь
type AnonymousUser struct{}

func (AnonymousUser) isCurrentUser() {}

// AuthorizedUser - авторизованный пользователь привязанного кошелька
type AuthorizedUser struct {
	Name string
}

func (AuthorizedUser) isCurrentUser() {}
