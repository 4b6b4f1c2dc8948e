package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	first, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, first, SaltSize)

	second, err := GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "соли должны различаться")
}

func TestGenerateSaltBase64(t *testing.T) {
	saltBase64, err := GenerateSaltBase64()
	require.NoError(t, err)

	salt, err := base64.StdEncoding.DecodeString(saltBase64)
	require.NoError(t, err)
	assert.Len(t, salt, SaltSize)
}

func TestDeriveKey(t *testing.T) {
	salt := make([]byte, SaltSize)

	tests := []struct {
		name       string
		passphrase string
		errMsg     string
		salt       []byte
		wantErr    bool
	}{
		{
			name:       "successful derivation",
			passphrase: "field-tech-passphrase",
			salt:       salt,
		},
		{
			name:       "empty passphrase",
			passphrase: "",
			salt:       salt,
			wantErr:    true,
			errMsg:     "passphrase cannot be empty",
		},
		{
			name:       "short salt",
			passphrase: "field-tech-passphrase",
			salt:       make([]byte, 16),
			wantErr:    true,
			errMsg:     "salt must be 32 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DeriveKey(tt.passphrase, tt.salt)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, key)
				return
			}
			require.NoError(t, err)
			assert.Len(t, key, KeySize)
		})
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	k1, err := DeriveKey("passphrase-one", salt)
	require.NoError(t, err)
	k2, err := DeriveKey("passphrase-one", salt)
	require.NoError(t, err)
	k3, err := DeriveKey("passphrase-two", salt)
	require.NoError(t, err)

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}

func TestDeriveKeyFromBase64Salt(t *testing.T) {
	saltBase64, err := GenerateSaltBase64()
	require.NoError(t, err)

	key, err := DeriveKeyFromBase64Salt("passphrase-one", saltBase64)
	require.NoError(t, err)
	assert.Len(t, key, KeySize)

	_, err = DeriveKeyFromBase64Salt("passphrase-one", "!!!not base64")
	assert.ErrorContains(t, err, "failed to decode salt")
}
