package cryptopackage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFromPassword(t *testing.T) {
	hash, err := GenerateFromPassword("password123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "password123")

	// 随机盐值保证相同密码的哈希不同
	other, err := GenerateFromPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestComparePasswordAndHash(t *testing.T) {
	hash, err := GenerateFromPassword("password123")
	require.NoError(t, err)

	ok, err := ComparePasswordAndHash("password123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ComparePasswordAndHash("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestComparePasswordAndHash_InvalidFormat(t *testing.T) {
	for _, bad := range []string{"", "plain", "$bcrypt$whatever", "$argon2id$v=19$m=65536"} {
		_, err := ComparePasswordAndHash("password123", bad)
		assert.Error(t, err, bad)
	}
}
