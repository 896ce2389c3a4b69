package http

import (
	"fmt"
	"mealky-way/common/auth"
	"mealky-way/common/constant"
	"mealky-way/model"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const testCookieName = "mw_session"

func newTestAuthenticator(cache *redis.Client) *auth.Authenticator {
	return &auth.Authenticator{
		Tokens: &auth.TokenIssuer{
			Secret:  []byte("test-secret"),
			Issuer:  "mealky-way",
			TTL:     time.Hour,
			Cache:   cache,
			TimeNow: time.Now,
		},
		Sessions:   auth.NewSessionStore(cache, time.Hour),
		CookieName: testCookieName,
	}
}

// issueTestToken signs a token for identity and registers the revocation lookup its next Parse will make.
func issueTestToken(t *testing.T, authenticator *auth.Authenticator, mock redismock.ClientMock, identity model.AdminIdentity, revoked bool) string {
	t.Helper()

	token, _, err := authenticator.Tokens.Issue(identity)
	require.NoError(t, err)

	var exists int64
	if revoked {
		exists = 1
	}
	mock.ExpectExists(fmt.Sprintf(constant.AdminTokenRevokedKey, tokenID(t, token))).SetVal(exists)

	return token
}

func tokenID(t *testing.T, token string) string {
	t.Helper()

	claims := &auth.Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	return claims.ID
}
