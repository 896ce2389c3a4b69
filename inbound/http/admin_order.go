package http

import (
	"errors"
	"log/slog"
	"mealky-way/common"
	"mealky-way/common/auth"
	"mealky-way/common/constant"
	"mealky-way/common/errs"
	"mealky-way/common/orderquery"
	"mealky-way/common/otel"
	"mealky-way/model"
	"mealky-way/outbound/sqlgen"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/spf13/viper"
)

type AdminOrderHttp struct {
	Querier  *sqlgen.Queries
	Validate *validator.Validate

	TimeNow func() time.Time

	exportLocation *time.Location
}

func RegisterAdminOrderHttp(
	mux *http.ServeMux,
	cfg *viper.Viper,
	querier *sqlgen.Queries,
	validate *validator.Validate,
	authMiddleware func(http.Handler) http.Handler,
) *AdminOrderHttp {
	in := &AdminOrderHttp{
		Querier:  querier,
		Validate: validate,
		TimeNow:  time.Now,

		exportLocation: loadExportLocation(cfg.GetString("export.timezone")),
	}

	mux.Handle("GET /api/admin/orders", authMiddleware(http.HandlerFunc(in.list)))
	mux.Handle("GET /api/admin/orders/{id}", authMiddleware(http.HandlerFunc(in.get)))
	mux.Handle("PUT /api/admin/orders/{id}", authMiddleware(http.HandlerFunc(in.update)))
	mux.Handle("DELETE /api/admin/orders/{id}", authMiddleware(http.HandlerFunc(in.delete)))
	mux.Handle("GET /api/admin/stats", authMiddleware(http.HandlerFunc(in.stats)))
	mux.Handle("GET /api/admin/export", authMiddleware(http.HandlerFunc(in.export)))

	return in
}

func (in AdminOrderHttp) list(w http.ResponseWriter, r *http.Request) {
	filter, err := orderquery.ParseFilter(r.URL.Query())
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "AdminOrderHttp.list")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	admin, _ := auth.AdminFromContext(ctx)
	slog.DebugContext(ctx, "list orders receive request", slog.String(constant.LogFieldAdmin, admin.Username), slog.Any(constant.LogFieldPayload, filter), traceIdAttr)

	rows, err := in.Querier.ListOrdersWithCustomer(ctx, filter.DateParam())
	if err != nil {
		slog.ErrorContext(ctx, "failed to list orders", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, errs.Storage("list orders", err))
		return
	}

	orders := orderquery.Apply(orderquery.FromRows(rows), filter)

	writeJSONResponse(w, http.StatusOK, model.ListOrdersResponse{
		Orders: orders,
		Stats:  orderquery.Summarize(orders, common.Today(in.TimeNow())),
	})
}

func (in AdminOrderHttp) stats(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "AdminOrderHttp.stats")
	defer span.End()

	rows, err := in.Querier.ListOrdersWithCustomer(ctx, pgtype.Date{})
	if err != nil {
		slog.ErrorContext(ctx, "failed to list orders", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, errs.Storage("list orders", err))
		return
	}

	writeJSONResponse(w, http.StatusOK, orderquery.Summarize(orderquery.FromRows(rows), common.Today(in.TimeNow())))
}

func (in AdminOrderHttp) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseOrderId(r)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "AdminOrderHttp.get")
	defer span.End()

	row, err := in.Querier.FindOrderWithCustomerById(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		writeErrorResponse(w, errs.NotFound("Order not found"))
		return
	}

	if err != nil {
		slog.ErrorContext(ctx, "failed to find order", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, errs.Storage("find order", err))
		return
	}

	writeJSONResponse(w, http.StatusOK, model.GetOrderResponse{
		Order: orderquery.FromRow(sqlgen.ListOrdersWithCustomerRow(row)),
	})
}

func (in AdminOrderHttp) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseOrderId(r)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	var req model.UpdateOrderRequest
	if err := decodeJSONRequest(r, &req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	date, err := common.ParseDate(req.Date)
	if err != nil {
		writeErrorResponse(w, errs.InvalidInput("Validation failed", map[string]string{"Date": "datetime"}))
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "AdminOrderHttp.update")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	admin, _ := auth.AdminFromContext(ctx)
	slog.InfoContext(ctx, "update order receive request", slog.String(constant.LogFieldAdmin, admin.Username), slog.Int("order_id", int(id)), slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	row, err := in.Querier.UpdateOrderQuantityAndDate(ctx, sqlgen.UpdateOrderQuantityAndDateParams{
		ID:       id,
		Quantity: req.Quantity,
		Date:     date,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		writeErrorResponse(w, errs.NotFound("Order not found"))
		return
	}

	if err != nil {
		slog.ErrorContext(ctx, "failed to update order", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, errs.Storage("update order", err))
		return
	}

	writeJSONResponse(w, http.StatusOK, model.UpdateOrderResponse{
		Success: true,
		Message: "Order updated successfully",
		Order:   orderquery.FromRow(sqlgen.ListOrdersWithCustomerRow(row)),
	})
}

func (in AdminOrderHttp) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseOrderId(r)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "AdminOrderHttp.delete")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	admin, _ := auth.AdminFromContext(ctx)
	slog.InfoContext(ctx, "delete order receive request", slog.String(constant.LogFieldAdmin, admin.Username), slog.Int("order_id", int(id)), traceIdAttr)

	cmd, err := in.Querier.DeleteOrder(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete order", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, errs.Storage("delete order", err))
		return
	}

	if cmd.RowsAffected() == 0 {
		writeErrorResponse(w, errs.NotFound("Order not found"))
		return
	}

	writeJSONResponse(w, http.StatusOK, model.SuccessResponse{Success: true, Message: "Order deleted successfully"})
}
