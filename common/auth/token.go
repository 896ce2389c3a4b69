package auth

import (
	"context"
	"errors"
	"fmt"
	"mealky-way/common/constant"
	"mealky-way/common/errs"
	"mealky-way/model"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token revoked")
)

type Claims struct {
	UserID   int32  `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() model.AdminIdentity {
	return model.AdminIdentity{Id: c.UserID, Username: c.Username}
}

// TokenIssuer signs admin tokens and checks them against the revocation list kept in Redis.
type TokenIssuer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
	Cache  *redis.Client

	TimeNow func() time.Time
}

func (t *TokenIssuer) Issue(identity model.AdminIdentity) (string, time.Time, error) {
	now := t.TimeNow()
	expiresAt := now.Add(t.TTL)

	claims := &Claims{
		UserID:   identity.Id,
		Username: identity.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        ulid.Make().String(),
			Subject:   strconv.Itoa(int(identity.Id)),
			Issuer:    t.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return token, claims.ExpiresAt.Time, nil
}

// Parse verifies signature, issuer and expiry, then rejects tokens revoked by logout.
func (t *TokenIssuer) Parse(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.TimeNow),
	)
	if err != nil || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	revoked, err := t.Cache.Exists(ctx, fmt.Sprintf(constant.AdminTokenRevokedKey, claims.ID)).Result()
	if err != nil {
		return nil, errs.Storage("check token revocation", err)
	}

	if revoked > 0 {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

// Revoke keeps the token id on the revocation list until the token would have expired anyway.
func (t *TokenIssuer) Revoke(ctx context.Context, claims *Claims) error {
	if claims.ExpiresAt == nil {
		return nil
	}

	ttl := claims.ExpiresAt.Time.Sub(t.TimeNow())
	if ttl <= 0 {
		return nil
	}

	err := t.Cache.Set(ctx, fmt.Sprintf(constant.AdminTokenRevokedKey, claims.ID), 1, ttl).Err()
	if err != nil {
		return errs.Storage("revoke token", err)
	}

	return nil
}
