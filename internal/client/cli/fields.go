package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	pkgapi "github.com/iudanet/solarsync/pkg/api"
)

// parseFields разбирает аргументы вида Field=Value (строка) и Field:=JSON
func parseFields(args []string) (pkgapi.Fields, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no fields given, expected Field=Value")
	}

	fields := make(pkgapi.Fields, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid field %q, expected Field=Value or Field:=JSON", arg)
		}

		if raw, isJSON := strings.CutSuffix(name, ":"); isJSON {
			if raw == "" {
				return nil, fmt.Errorf("invalid field %q: empty name", arg)
			}
			var v any
			if err := json.Unmarshal([]byte(value), &v); err != nil {
				return nil, fmt.Errorf("invalid JSON value of %s: %w", raw, err)
			}
			fields[raw] = v
			continue
		}

		if name == "" {
			return nil, fmt.Errorf("invalid field %q: empty name", arg)
		}
		fields[name] = value
	}

	return fields, nil
}
