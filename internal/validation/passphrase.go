package validation

import "fmt"

// MinPassphraseLen минимальная длина пароля, которым шифруется API токен
const MinPassphraseLen = 12

// ValidatePassphrase проверяет минимальные требования к паролю
func ValidatePassphrase(passphrase string) error {
	if passphrase == "" {
		return fmt.Errorf("passphrase cannot be empty")
	}

	if len(passphrase) < MinPassphraseLen {
		return fmt.Errorf("passphrase must be at least %d characters long", MinPassphraseLen)
	}

	return nil
}
