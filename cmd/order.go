package cmd

import (
	"context"
	"mealky-way/common/constant"
	"mealky-way/inbound/event"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func runQueueOrderCmd(ctx context.Context) {
	cfg := newCfg("env")

	stopProfile := startProfile(cfg, "order")
	defer stopProfile()

	shutdownTracer := newTracer(ctx, cfg)
	defer shutdownTracer()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	st := createStreamWorkQueue(ctx, cfg, js)

	orderEvent := event.OrderEvent{
		Publisher:   js,
		Printer:     message.NewPrinter(language.Make(cfg.GetString("notification.locale"))),
		AdminEmails: cfg.GetStringSlice("notification.admin_emails"),
		Timeout:     cfg.GetDuration("queue.order.timeout"),
	}

	consumeQueue(ctx, cfg, st, "order", constant.OrderWildcard, map[string]eventHandler{
		constant.SubjectOrderPlaced: orderEvent.PlacedHandler,
	})
}
