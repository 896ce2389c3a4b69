package cmd

import (
	"context"
	"mealky-way/common/constant"
	"mealky-way/inbound/event"
	emailOutbound "mealky-way/outbound/email"
)

func runQueueEmailCmd(ctx context.Context) {
	cfg := newCfg("env")

	stopProfile := startProfile(cfg, "email")
	defer stopProfile()

	shutdownTracer := newTracer(ctx, cfg)
	defer shutdownTracer()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	st := createStreamWorkQueue(ctx, cfg, js)

	outbound := &emailOutbound.EmailOutbound{Cfg: cfg}
	outbound.Init()

	emailEvent := event.EmailEvent{
		EmailOutbound: outbound,
		Timeout:       cfg.GetDuration("queue.email.timeout"),
	}

	consumeQueue(ctx, cfg, st, "email", constant.EmailWildcard, map[string]eventHandler{
		constant.SubjectSendEmail: emailEvent.SendEmailHandler,
	})
}
