package helpers

import (
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/yoomoney/yookassa-android-sdk-sub004/internal/logger"
)

// GetDisplayName - извлекает отображаемое имя пользователя из OAuth токена аккаунта.
// Токен выпущен внешним сервисом, подпись здесь не проверяется.
func GetDisplayName(token string) (string, error) {
	parsed, err := jwt.ParseString(token, jwt.WithVerify(false), jwt.WithValidate(false))
	if err != nil {
		logger.Warn("Failed to parse account token", err)
		return "", fmt.Errorf("parse account token: %w", err)
	}

	for _, claim := range []string{"display_name", "name", "login"} {
		if value, ok := parsed.Get(claim); ok {
			if name, ok := value.(string); ok && name != "" {
				return name, nil
			}
		}
	}

	logger.Warn("Undefined display name from account token")
	return "", fmt.Errorf("undefined display name")
}
