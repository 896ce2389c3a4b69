package cron

import (
	"context"
	"fmt"
	"log/slog"
	"mealky-way/common"
	"mealky-way/common/constant"
	"mealky-way/common/vars"
	"mealky-way/outbound/notice"
	"time"

	"github.com/spf13/viper"
)

type NoticeCron struct {
	Cfg   *viper.Viper
	Store *notice.Store
}

func (in NoticeCron) Start(ctx context.Context) {
	refreshTicker := time.NewTicker(in.Cfg.GetDuration("cron.notice.refresh.interval"))
	defer refreshTicker.Stop()

	in.refresh(ctx)

	slog.Info("notice cron started")

	for {
		select {
		case <-refreshTicker.C:
			in.refresh(ctx)
		case <-ctx.Done():
			slog.Info("notice cron stopped")
			return
		}
	}
}

// refresh keeps the last good notice cached when the store cannot be read.
func (in NoticeCron) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, in.Cfg.GetDuration("cron.notice.refresh.timeout"))
	defer cancel()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	slog.DebugContext(ctx, "refreshing notice", traceIdAttr)

	stored, err := in.Store.Get(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get notice from cache", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return
	}

	vars.SetNotice(&stored)

	slog.DebugContext(ctx, "notice refreshed successfully", traceIdAttr)
}

// InitNoticeCache seeds the default notice when none has been stored yet.
func (in NoticeCron) InitNoticeCache(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	content := in.Cfg.GetString("notice.default")
	if content == "" {
		content = constant.DefaultNoticeText
	}

	created, err := in.Store.InitDefault(ctx, content)
	if err != nil {
		slog.ErrorContext(ctx, "failed to initialize notice in cache", slog.Any(constant.LogFieldErr, err))
		return fmt.Errorf("init notice: %w", err)
	}

	slog.InfoContext(ctx, "notice initialized successfully", slog.Bool("seeded_default", created))
	return nil
}
