package auth

import (
	"context"
	"errors"
	"mealky-way/model"
	"net/http"
	"strings"
)

var ErrUnauthenticated = errors.New("unauthenticated")

type contextKey struct{}

// Authenticator resolves the admin behind a request: a valid bearer token wins, a live session cookie is the
// fallback.
type Authenticator struct {
	Tokens     *TokenIssuer
	Sessions   *SessionStore
	CookieName string
}

func (a *Authenticator) Authenticate(r *http.Request) (model.AdminIdentity, error) {
	ctx := r.Context()

	if token, ok := BearerToken(r); ok {
		claims, err := a.Tokens.Parse(ctx, token)
		if err == nil {
			return claims.Identity(), nil
		}
		if !errors.Is(err, ErrInvalidToken) && !errors.Is(err, ErrTokenRevoked) {
			return model.AdminIdentity{}, err
		}
	}

	identity, ok, err := a.Sessions.Get(ctx, a.SessionID(r))
	if err != nil {
		return model.AdminIdentity{}, err
	}
	if ok {
		return identity, nil
	}

	return model.AdminIdentity{}, ErrUnauthenticated
}

func (a *Authenticator) SessionID(r *http.Request) string {
	cookie, err := r.Cookie(a.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func BearerToken(r *http.Request) (string, bool) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	token = strings.TrimSpace(token)
	return token, ok && token != ""
}

func WithAdmin(ctx context.Context, identity model.AdminIdentity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

func AdminFromContext(ctx context.Context) (model.AdminIdentity, bool) {
	identity, ok := ctx.Value(contextKey{}).(model.AdminIdentity)
	return identity, ok
}
