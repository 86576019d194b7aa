package validators

const (
	// Допустимая длина номера банковской карты
	MinPanLength = 13
	MaxPanLength = 19
)

// IsCorrectPan проверяет номер банковской карты алгоритмом Луна.
// Проверка отсеивает только явные опечатки и не заменяет проверку эмитентом.
func IsCorrectPan(pan string) bool {
	if len(pan) < MinPanLength || len(pan) > MaxPanLength {
		return false
	}

	sum := 0
	alternate := false

	// Идем по цифрам справа налево
	for i := len(pan) - 1; i >= 0; i-- {
		c := pan[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')

		if alternate {
			digit *= 2
			if digit > 9 {
				digit = (digit % 10) + 1
			}
		}

		sum += digit
		alternate = !alternate
	}

	// Номер валиден, если сумма кратна 10
	return sum%10 == 0
}
