package token_test

import (
	"testing"
	"time"

	"cvconnect-backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	provider := token.NewProvider("test-secret", time.Hour)

	issued, err := provider.Issue(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, issued)

	claims, err := provider.Parse(issued)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issued, err := token.NewProvider("secret-a", time.Hour).Issue(1, "alice")
	require.NoError(t, err)

	_, err = token.NewProvider("secret-b", time.Hour).Parse(issued)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	issued, err := token.NewProvider("test-secret", -time.Minute).Issue(1, "alice")
	require.NoError(t, err)

	_, err = token.NewProvider("test-secret", time.Hour).Parse(issued)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := token.NewProvider("test-secret", time.Hour).Parse("not.a.token")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
