package event

import (
	"context"
	"encoding/json"
	"log/slog"
	"mealky-way/common"
	"mealky-way/common/constant"
	"mealky-way/common/otel"
	"mealky-way/model"
	"time"
)

type EmailSender interface {
	Send(to []string, subject string, body string) error
}

type EmailEvent struct {
	EmailOutbound EmailSender
	Timeout       time.Duration
}

func (in EmailEvent) SendEmailHandler(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	var req model.SendEmailEventMessage
	err := json.Unmarshal(msg, &req)
	if err != nil || req.To == "" {
		slog.WarnContext(ctx, "send email event unmarshal error", slog.Any(constant.LogFieldErr, err))
		return nil
	}

	ctx, span := otel.Tracer.Start(ctx, "EmailEvent.SendEmailHandler")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	reqAttr := slog.String("to", req.To)

	err = in.EmailOutbound.Send([]string{req.To}, req.Subject, req.Body)
	if err != nil {
		slog.ErrorContext(ctx, "send email event error", slog.Any(constant.LogFieldErr, err), reqAttr, traceIdAttr)
		common.UtilSpanError(span, err)
		return err
	}

	slog.DebugContext(ctx, "send email event success", reqAttr, traceIdAttr)

	return nil
}
