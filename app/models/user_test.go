package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	u, err := CreateUser("alice", "alice@example.com", "supersecret")
	require.NoError(t, err)

	assert.Equal(t, "alice", u.Name)
	assert.Equal(t, ROLE_USER, u.Role)
	assert.Equal(t, STATUS_INACTIVE, u.Status)
	assert.Equal(t, TIER_STANDARD, u.Tier)
	assert.NotEqual(t, "supersecret", u.Password)
	assert.True(t, u.CheckPassword("supersecret"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestCreateUserRejectsInvalidInput(t *testing.T) {
	_, err := CreateUser("ab", "alice@example.com", "supersecret")
	assert.Error(t, err, "name below minimum length")

	_, err = CreateUser("alice", "not-an-email", "supersecret")
	assert.Error(t, err)
}

func TestGenerateActivationToken(t *testing.T) {
	u := &User{}
	require.NoError(t, u.GenerateActivationToken())

	assert.Len(t, u.ActivationToken, 32)
	require.NotNil(t, u.ActivationSentAt)

	first := u.ActivationToken
	require.NoError(t, u.GenerateActivationToken())
	assert.NotEqual(t, first, u.ActivationToken)
}

func TestIsPremium(t *testing.T) {
	assert.False(t, (&User{Tier: TIER_STANDARD}).IsPremium())
	assert.True(t, (&User{Tier: TIER_PREMIUM}).IsPremium())
}
