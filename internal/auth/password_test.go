package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("s3cret")
	assert.NoError(t, err)
	second, err := HashPassword("s3cret")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("s3cret", first))
	assert.True(t, CheckPassword("s3cret", second))
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)

	tests := []struct {
		name  string
		plain string
		hash  string
		want  bool
	}{
		{"matching password", "correct horse battery staple", hash, true},
		{"wrong password", "incorrect horse", hash, false},
		{"empty password", "", hash, false},
		{"malformed hash", "correct horse battery staple", "not-a-bcrypt-hash", false},
		{"empty hash", "anything", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPassword(tt.plain, tt.hash))
		})
	}
}
