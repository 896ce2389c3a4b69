package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mealky-way/common"
	"mealky-way/common/constant"
	"mealky-way/common/otel"
	"mealky-way/model"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"golang.org/x/text/message"
)

type OrderEvent struct {
	Publisher   jetstream.Publisher
	Printer     *message.Printer
	AdminEmails []string

	Timeout time.Duration
}

// PlacedHandler fans a placed order out to one admin notification email per configured recipient.
func (in OrderEvent) PlacedHandler(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	var req model.OrderPlacedEventMessage
	err := json.Unmarshal(msg, &req)
	if err != nil {
		slog.WarnContext(ctx, "order placed event unmarshal error", slog.Any(constant.LogFieldErr, err))
		return nil
	}

	ctx, span := otel.Tracer.Start(ctx, "OrderEvent.PlacedHandler")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	reqAttr := slog.Any(constant.LogFieldPayload, req)

	if len(in.AdminEmails) == 0 {
		slog.DebugContext(ctx, "no admin recipients configured", reqAttr, traceIdAttr)
		return nil
	}

	subject := fmt.Sprintf(constant.EmailOrderPlacedSubject, req.ID)
	body := in.buildOrderPlacedEmailBody(req)

	for _, to := range in.AdminEmails {
		err = common.PublishMessage(ctx, in.Publisher, constant.SubjectSendEmail, model.SendEmailEventMessage{
			To:      to,
			Subject: subject,
			Body:    body,
		}, fmt.Sprintf("order:%d:email:%s", req.ID, to))
		if err != nil {
			slog.ErrorContext(ctx, "order placed event publish error", slog.Any(constant.LogFieldErr, err), reqAttr, traceIdAttr)
			common.UtilSpanError(span, err)
			return err
		}
	}

	slog.DebugContext(ctx, "order placed event publish success", reqAttr, traceIdAttr)

	return nil
}

func (in OrderEvent) buildOrderPlacedEmailBody(req model.OrderPlacedEventMessage) string {
	return fmt.Sprintf(constant.EmailOrderPlacedTemplate,
		req.ID,
		req.Name,
		req.ContactNumber,
		req.Hall,
		req.Room,
		in.Printer.Sprintf("%d", req.Quantity),
		req.Date,
	)
}
