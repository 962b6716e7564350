package domain

import (
	"testing"
	"time"
	"zenchat/errors"

	"github.com/stretchr/testify/require"
)

func TestSession_Principal(t *testing.T) {
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should be empty on an anonymous session", func(t *testing.T) {
		require.Empty(t, NewSession("s1", "", at).Principal())
	})

	t.Run("should be the authenticated user before identification", func(t *testing.T) {
		require.Equal(t, UserID("alice"), NewSession("s1", "alice", at).Principal())
	})

	t.Run("should be the announced user once identified", func(t *testing.T) {
		req := require.New(t)
		session := NewSession("s1", "", at)
		changed, err := session.Identify("bob")
		req.NoError(err)
		req.True(changed)
		req.Equal(UserID("bob"), session.Principal())
	})

	t.Run("should refuse an identity other than the authenticated one", func(t *testing.T) {
		req := require.New(t)
		session := NewSession("s1", "alice", at)
		_, err := session.Identify("mallory")
		req.ErrorIs(err, errors.ErrIdentityMismatch)
		req.Equal(UserID("alice"), session.Principal())
	})
}
