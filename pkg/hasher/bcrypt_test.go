package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("Secreto1")
	require.NoError(t, err)

	assert.NotEqual(t, "Secreto1", hash)
	assert.True(t, h.Verify("Secreto1", hash))
	assert.False(t, h.Verify("secreto1", hash))
	assert.False(t, h.Verify("Secreto1", "not-a-hash"))
}
