package http

import (
	"log/slog"
	"mealky-way/common"
	"mealky-way/common/auth"
	"mealky-way/common/constant"
	"mealky-way/common/otel"
	"mealky-way/common/vars"
	"mealky-way/model"
	"mealky-way/outbound/notice"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type NoticeHttp struct {
	Store    *notice.Store
	Validate *validator.Validate
}

func RegisterNoticeHttp(
	mux *http.ServeMux,
	store *notice.Store,
	validate *validator.Validate,
	authMiddleware func(http.Handler) http.Handler,
) *NoticeHttp {
	in := &NoticeHttp{
		Store:    store,
		Validate: validate,
	}

	mux.HandleFunc("GET /api/notice", in.get)
	mux.Handle("PUT /api/admin/notice", authMiddleware(http.HandlerFunc(in.update)))

	return in
}

// get never fails: an unreadable notice is served as empty text.
func (in NoticeHttp) get(w http.ResponseWriter, r *http.Request) {
	if cached := vars.GetNotice(); cached != nil {
		writeJSONResponse(w, http.StatusOK, model.NoticeResponse{Notice: cached.Content})
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "NoticeHttp.get")
	defer span.End()

	stored, err := in.Store.Get(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to read notice", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeJSONResponse(w, http.StatusOK, model.NoticeResponse{Notice: ""})
		return
	}

	vars.SetNotice(&stored)

	writeJSONResponse(w, http.StatusOK, model.NoticeResponse{Notice: stored.Content})
}

func (in NoticeHttp) update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateNoticeRequest
	if err := decodeJSONRequest(r, &req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	req.Content = strings.TrimSpace(req.Content)

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "NoticeHttp.update")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	admin, _ := auth.AdminFromContext(ctx)
	slog.InfoContext(ctx, "update notice receive request", slog.String(constant.LogFieldAdmin, admin.Username), slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	stored, err := in.Store.Set(ctx, req.Content)
	if err != nil {
		slog.ErrorContext(ctx, "failed to update notice", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	vars.SetNotice(&stored)

	writeJSONResponse(w, http.StatusOK, model.SuccessResponse{Success: true, Message: "Notice updated"})
}
