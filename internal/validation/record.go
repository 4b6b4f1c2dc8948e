package validation

import (
	"fmt"
	"regexp"
)

// RecordIDPattern формат идентификатора записи: "rec" + 14 букв/цифр
var RecordIDPattern = regexp.MustCompile(`^rec[a-zA-Z0-9]{14}$`)

// BaseIDPattern формат идентификатора базы: "app" + 14 букв/цифр
var BaseIDPattern = regexp.MustCompile(`^app[a-zA-Z0-9]{14}$`)

// ValidateRecordID проверяет идентификатор записи перед подстановкой в URL
func ValidateRecordID(id string) error {
	if id == "" {
		return fmt.Errorf("record id cannot be empty")
	}

	if !RecordIDPattern.MatchString(id) {
		return fmt.Errorf("invalid record id %q: expected \"rec\" followed by 14 letters or digits", id)
	}

	return nil
}

// ValidateBaseID проверяет идентификатор базы
func ValidateBaseID(id string) error {
	if id == "" {
		return fmt.Errorf("base id cannot be empty")
	}

	if !BaseIDPattern.MatchString(id) {
		return fmt.Errorf("invalid base id %q: expected \"app\" followed by 14 letters or digits", id)
	}

	return nil
}
