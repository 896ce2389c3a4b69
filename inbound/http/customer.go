package http

import (
	"errors"
	"log/slog"
	"mealky-way/common"
	"mealky-way/common/constant"
	"mealky-way/common/errs"
	"mealky-way/common/otel"
	"mealky-way/model"
	"mealky-way/outbound/sqlgen"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type CustomerHttp struct {
	Querier  *sqlgen.Queries
	Validate *validator.Validate
}

func RegisterCustomerHttp(mux *http.ServeMux, querier *sqlgen.Queries, validate *validator.Validate) *CustomerHttp {
	in := &CustomerHttp{
		Querier:  querier,
		Validate: validate,
	}

	mux.HandleFunc("GET /api/customer/{contactNumber}", in.lookup)
	mux.HandleFunc("POST /api/customer", in.create)

	return in
}

func (in CustomerHttp) lookup(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "CustomerHttp.lookup")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	contactNumber := strings.TrimSpace(r.PathValue("contactNumber"))
	if contactNumber == "" {
		writeErrorResponse(w, errs.InvalidInput("Contact number is required", nil))
		return
	}

	customer, err := in.Querier.FindCustomerByContactNumber(ctx, contactNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		writeJSONResponse(w, http.StatusOK, model.CustomerLookupResponse{Exists: false})
		return
	}

	if err != nil {
		slog.ErrorContext(ctx, "failed to find customer", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, errs.Storage("find customer", err))
		return
	}

	resp := toCustomerResponse(customer)
	writeJSONResponse(w, http.StatusOK, model.CustomerLookupResponse{Exists: true, Customer: &resp})
}

func (in CustomerHttp) create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCustomerRequest
	if err := decodeJSONRequest(r, &req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	req.ContactNumber = strings.TrimSpace(req.ContactNumber)
	req.Name = strings.TrimSpace(req.Name)
	req.Hall = strings.TrimSpace(req.Hall)
	req.Room = strings.TrimSpace(req.Room)

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "CustomerHttp.create")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "create customer receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	customer, err := in.Querier.InsertCustomer(ctx, sqlgen.InsertCustomerParams{
		ContactNumber: req.ContactNumber,
		Name:          req.Name,
		Hall:          req.Hall,
		Room:          req.Room,
	})

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		slog.DebugContext(ctx, "customer already exists", traceIdAttr)
		writeErrorResponse(w, errs.Conflict("Customer already exists"))
		return
	}

	if err != nil {
		slog.ErrorContext(ctx, "failed to insert customer", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, errs.Storage("insert customer", err))
		return
	}

	writeJSONResponse(w, http.StatusOK, model.CreateCustomerResponse{
		Success:  true,
		Customer: toCustomerResponse(customer),
	})
}

func toCustomerResponse(customer sqlgen.Customer) model.CustomerResponse {
	return model.CustomerResponse{
		Id:            customer.ID,
		ContactNumber: customer.ContactNumber,
		Name:          customer.Name,
		Hall:          customer.Hall,
		Room:          customer.Room,
	}
}
