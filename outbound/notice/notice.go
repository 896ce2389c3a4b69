package notice

import (
	"context"
	"mealky-way/common/constant"
	"mealky-way/common/errs"
	"mealky-way/model"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps the single site notice in a Redis hash.
type Store struct {
	Cache *redis.Client

	TimeNow func() time.Time
}

func NewStore(cache *redis.Client) *Store {
	return &Store{Cache: cache, TimeNow: time.Now}
}

// Get reads the notice. A missing hash yields an empty notice.
func (s *Store) Get(ctx context.Context) (model.Notice, error) {
	fields, err := s.Cache.HGetAll(ctx, constant.NoticeKey).Result()
	if err != nil {
		return model.Notice{}, errs.Storage("get notice", err)
	}

	notice := model.Notice{Content: fields[constant.NoticeFieldContent]}
	if updatedAt, err := time.Parse(time.RFC3339, fields[constant.NoticeFieldUpdatedAt]); err == nil {
		notice.UpdatedAt = updatedAt
	}

	return notice, nil
}

func (s *Store) Set(ctx context.Context, content string) (model.Notice, error) {
	notice := model.Notice{Content: content, UpdatedAt: s.TimeNow().UTC().Truncate(time.Second)}

	err := s.Cache.HSet(ctx, constant.NoticeKey,
		constant.NoticeFieldContent, notice.Content,
		constant.NoticeFieldUpdatedAt, notice.UpdatedAt.Format(time.RFC3339),
	).Err()
	if err != nil {
		return model.Notice{}, errs.Storage("set notice", err)
	}

	return notice, nil
}

// InitDefault writes content only when no notice exists yet and reports whether it did.
func (s *Store) InitDefault(ctx context.Context, content string) (bool, error) {
	pipe := s.Cache.TxPipeline()
	created := pipe.HSetNX(ctx, constant.NoticeKey, constant.NoticeFieldContent, content)
	pipe.HSetNX(ctx, constant.NoticeKey, constant.NoticeFieldUpdatedAt, s.TimeNow().UTC().Format(time.RFC3339))

	if _, err := pipe.Exec(ctx); err != nil {
		return false, errs.Storage("init notice", err)
	}

	return created.Val(), nil
}
