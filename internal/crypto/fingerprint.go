package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint короткий отпечаток секрета для логов и вывода status.
// По нему нельзя восстановить секрет, но можно отличить два токена.
func Fingerprint(secret string) string {
	if secret == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:4])
}
