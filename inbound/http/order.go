package http

import (
	"fmt"
	"log/slog"
	"mealky-way/common"
	"mealky-way/common/constant"
	"mealky-way/common/contract"
	"mealky-way/common/errs"
	"mealky-way/common/otel"
	"mealky-way/model"
	"mealky-way/outbound/sqlgen"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/nats-io/nats.go/jetstream"
)

type OrderHttp struct {
	Db        contract.DbConn
	Querier   *sqlgen.Queries
	Publisher jetstream.Publisher
	Validate  *validator.Validate

	TimeNow func() time.Time
}

func RegisterOrderHttp(
	mux *http.ServeMux,
	db contract.DbConn,
	querier *sqlgen.Queries,
	publisher jetstream.Publisher,
	validate *validator.Validate,
) *OrderHttp {
	in := &OrderHttp{
		Db:        db,
		Querier:   querier,
		Publisher: publisher,
		Validate:  validate,
		TimeNow:   time.Now,
	}

	mux.HandleFunc("POST /api/order", in.place)

	return in
}

func (in OrderHttp) place(w http.ResponseWriter, r *http.Request) {
	var req model.PlaceOrderRequest
	if err := decodeJSONRequest(r, &req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.ContactNumber = strings.TrimSpace(req.ContactNumber)
	req.Hall = strings.TrimSpace(req.Hall)
	req.Room = strings.TrimSpace(req.Room)
	req.Date = strings.TrimSpace(req.Date)

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "OrderHttp.place")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "place order receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	if req.Date == "" {
		req.Date = common.Today(in.TimeNow())
	}

	date, err := common.ParseDate(req.Date)
	if err != nil {
		writeErrorResponse(w, errs.InvalidInput("Validation failed", map[string]string{"Date": "datetime"}))
		return
	}

	tx, err := in.Db.Begin(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to begin transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, errs.Storage("begin order transaction", err))
		return
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
			slog.ErrorContext(ctx, "failed to rollback transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		}
	}()

	withTx := in.Querier.WithTx(tx)

	customer, err := withTx.UpsertCustomerByContactNumber(ctx, sqlgen.UpsertCustomerByContactNumberParams{
		ContactNumber: req.ContactNumber,
		Name:          req.Name,
		Hall:          req.Hall,
		Room:          req.Room,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to upsert customer", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, errs.Storage("upsert customer", err))
		return
	}

	order, err := withTx.InsertOrder(ctx, sqlgen.InsertOrderParams{
		CustomerID: customer.ID,
		Quantity:   req.Quantity,
		Date:       date,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert order", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, errs.Storage("insert order", err))
		return
	}

	if err = tx.Commit(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to commit transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, errs.Storage("commit order transaction", err))
		return
	}

	// Best effort: the order is already committed.
	err = common.PublishMessage(ctx, in.Publisher, constant.SubjectOrderPlaced, model.OrderPlacedEventMessage{
		ID:            order.ID,
		CustomerID:    customer.ID,
		Name:          customer.Name,
		ContactNumber: customer.ContactNumber,
		Hall:          customer.Hall,
		Room:          customer.Room,
		Quantity:      order.Quantity,
		Date:          order.Date.Format(constant.DateLayout),
	}, fmt.Sprintf("order:%d", order.ID))
	if err != nil {
		slog.WarnContext(ctx, "failed to publish order placed message", traceIdAttr, slog.Any(constant.LogFieldErr, err))
	}

	slog.InfoContext(ctx, "place order success", traceIdAttr, slog.Int("order_id", int(order.ID)), slog.Bool("new_customer", customer.Inserted))

	writeJSONResponse(w, http.StatusOK, model.PlaceOrderResponse{
		Success: true,
		Message: "Order placed successfully",
		OrderId: order.ID,
		Order: model.PlacedOrder{
			Id:           order.ID,
			CustomerId:   customer.ID,
			Quantity:     order.Quantity,
			Date:         order.Date.Format(constant.DateLayout),
			CreatedAt:    order.CreatedAt,
			CustomerName: customer.Name,
		},
	})
}
