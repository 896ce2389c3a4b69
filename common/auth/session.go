package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"mealky-way/common/constant"
	"mealky-way/common/errs"
	"mealky-way/model"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps admin sessions in Redis keyed by an opaque cookie value.
type SessionStore struct {
	Cache *redis.Client
	TTL   time.Duration

	NewID func() (string, error)
}

func NewSessionStore(cache *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{Cache: cache, TTL: ttl, NewID: NewSessionID}
}

func NewSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func (s *SessionStore) Create(ctx context.Context, identity model.AdminIdentity) (string, error) {
	id, err := s.NewID()
	if err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	err = s.Cache.Set(ctx, fmt.Sprintf(constant.AdminSessionKey, id), string(data), s.TTL).Err()
	if err != nil {
		return "", errs.Storage("create session", err)
	}

	return id, nil
}

// Get returns the identity held by the session. A missing or expired session is reported with ok=false.
func (s *SessionStore) Get(ctx context.Context, id string) (identity model.AdminIdentity, ok bool, err error) {
	if id == "" {
		return model.AdminIdentity{}, false, nil
	}

	data, err := s.Cache.Get(ctx, fmt.Sprintf(constant.AdminSessionKey, id)).Result()
	if errors.Is(err, redis.Nil) {
		return model.AdminIdentity{}, false, nil
	}
	if err != nil {
		return model.AdminIdentity{}, false, errs.Storage("get session", err)
	}

	if err := json.Unmarshal([]byte(data), &identity); err != nil || identity.Id == 0 {
		return model.AdminIdentity{}, false, nil
	}

	return identity, true, nil
}

func (s *SessionStore) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}

	if err := s.Cache.Del(ctx, fmt.Sprintf(constant.AdminSessionKey, id)).Err(); err != nil {
		return errs.Storage("destroy session", err)
	}

	return nil
}
