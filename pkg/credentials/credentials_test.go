package credentials_test

import (
	"testing"

	"cvconnect-backend/pkg/credentials"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	hasher := credentials.NewHasher()

	hash, err := hasher.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, hasher.Check("hunter2", hash))
	assert.False(t, hasher.Check("hunter3", hash))
	assert.False(t, hasher.Check("hunter2", "not-a-hash"))
}
