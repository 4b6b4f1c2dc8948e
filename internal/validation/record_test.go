package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRecordID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid", id: "recA1b2C3d4E5f6G7"},
		{name: "empty", id: "", wantErr: true},
		{name: "wrong prefix", id: "appA1b2C3d4E5f6G7", wantErr: true},
		{name: "too short", id: "rec123", wantErr: true},
		{name: "too long", id: "recA1b2C3d4E5f6G7X", wantErr: true},
		{name: "path traversal", id: "rec../../../etc1", wantErr: true},
		{name: "query injection", id: "recA1b2C3d4E5?x=1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecordID(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBaseID(t *testing.T) {
	assert.NoError(t, ValidateBaseID("appABCDEFGHIJKLMN"))
	assert.Error(t, ValidateBaseID(""))
	assert.Error(t, ValidateBaseID("recABCDEFGHIJKLMN"))
}
