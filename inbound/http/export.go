package http

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"mealky-way/common"
	"mealky-way/common/auth"
	"mealky-way/common/constant"
	"mealky-way/common/errs"
	"mealky-way/common/otel"
	"net/http"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/jackc/pgx/v5/pgtype"
)

var exportHeader = []string{
	"Order ID", "Customer Name", "Contact Number", "Hall", "Room", "Quantity", "Delivery Date", "Order Date",
}

func loadExportLocation(name string) *time.Location {
	if name == "" {
		name = constant.DefaultExportZone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("unknown export timezone, falling back to UTC", slog.String("timezone", name), slog.Any(constant.LogFieldErr, err))
		return time.UTC
	}

	return loc
}

func (in AdminOrderHttp) export(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "AdminOrderHttp.export")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	admin, _ := auth.AdminFromContext(ctx)
	slog.InfoContext(ctx, "export orders receive request", slog.String(constant.LogFieldAdmin, admin.Username), traceIdAttr)

	rows, err := in.Querier.ListOrdersWithCustomer(ctx, pgtype.Date{})
	if err != nil {
		slog.ErrorContext(ctx, "failed to list orders", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, errs.Storage("list orders", err))
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=orders-%d.csv", in.TimeNow().UnixMilli()))
	w.WriteHeader(http.StatusOK)

	writer := csv.NewWriter(w)
	records := make([][]string, 0, len(rows)+1)
	records = append(records, exportHeader)
	for _, row := range rows {
		records = append(records, []string{
			strconv.Itoa(int(row.ID)),
			row.Name,
			row.ContactNumber,
			row.Hall,
			row.Room,
			strconv.Itoa(int(row.Quantity)),
			row.Date.Format(constant.DateLayout),
			row.CreatedAt.In(in.exportLocation).Format(constant.ExportDateLayout),
		})
	}

	if err := writer.WriteAll(records); err != nil {
		slog.ErrorContext(ctx, "failed to write export", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
	}
}
