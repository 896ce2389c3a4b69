package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"mealky-way/common/constant"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/spf13/viper"
)

type eventHandler func(ctx context.Context, msg []byte) error

// consumeQueue runs a durable work-queue consumer until ctx is done. A handler error NAKs the message for
// redelivery; messages on subjects without a handler are acked and dropped.
func consumeQueue(ctx context.Context, cfg *viper.Viper, st jetstream.Stream, name, filterSubject string, handlers map[string]eventHandler) {
	cons, err := st.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       fmt.Sprintf("consumer:%s", name),
		FilterSubject: filterSubject,
		MaxDeliver:    cfg.GetInt(fmt.Sprintf("queue.%s.max_deliver", name)),
		AckWait:       cfg.GetDuration(fmt.Sprintf("queue.%s.ack_wait", name)),
	})
	if err != nil {
		log.Fatalln("failed to create consumer", err)
	}

	iter, err := cons.Messages()
	if err != nil {
		log.Fatalln("failed to start consumer", err)
	}

	nakDelay := cfg.GetDuration(fmt.Sprintf("queue.%s.nak_delay", name))

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				msg, err := iter.Next()
				if errors.Is(err, jetstream.ErrMsgIteratorClosed) {
					return
				}

				if err != nil {
					slog.ErrorContext(ctx, "Error fetching message", slog.Any(constant.LogFieldErr, err))
					continue
				}

				if msg == nil {
					continue
				}

				var eventErr error
				if handler, ok := handlers[msg.Subject()]; ok {
					eventErr = handler(ctx, msg.Data())
				} else {
					slog.WarnContext(ctx, "no handler for subject", slog.String("subject", msg.Subject()))
				}

				if eventErr != nil {
					if err := msg.NakWithDelay(nakDelay); err != nil {
						slog.ErrorContext(ctx, "Error nak message", slog.Any(constant.LogFieldErr, err), slog.String("subject", msg.Subject()))
					}
					continue
				}

				if err := msg.Ack(); err != nil {
					slog.ErrorContext(ctx, "Error acknowledging message",
						slog.Any(constant.LogFieldErr, err),
						slog.Any(constant.LogFieldPayload, string(msg.Data())),
						slog.String("subject", msg.Subject()),
					)
					continue
				}
			}
		}
	}()

	slog.InfoContext(ctx, fmt.Sprintf("%s queue consumer started", name))

	<-ctx.Done()

	iter.Stop()

	slog.InfoContext(ctx, fmt.Sprintf("%s queue consumer stopped", name))
}
