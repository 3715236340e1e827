package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPasswordRoundTrip(t *testing.T) {
	u := NewUser(UserParams{
		SubscriberID: "SUB-1",
		Username:     "john_doe",
		Password:     "secret123",
		Email:        "john@example.com",
	})

	assert.Equal(t, RoleSubscriber, u.Role)
	require.NoError(t, u.Validate())
	assert.True(t, u.CheckPassword("secret123"))
	assert.False(t, u.CheckPassword("wrong"))
	assert.False(t, u.IsAdmin())
}
