package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$15,000.50", FormatCurrency(15000.5))
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "$999.99", FormatCurrency(999.99))
	assert.Equal(t, "$1,234,567.00", FormatCurrency(1234567))
	assert.Equal(t, "-$2,500.00", FormatCurrency(-2500))
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "Workshop-sub003", claims.Issuer)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
