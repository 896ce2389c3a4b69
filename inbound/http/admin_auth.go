package http

import (
	"errors"
	"log/slog"
	"mealky-way/common"
	"mealky-way/common/auth"
	"mealky-way/common/constant"
	"mealky-way/common/errs"
	"mealky-way/common/otel"
	"mealky-way/model"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type AdminAuthHttp struct {
	Verifier      *auth.CredentialVerifier
	Authenticator *auth.Authenticator
	Validate      *validator.Validate

	cookieSecure bool
}

func RegisterAdminAuthHttp(
	mux *http.ServeMux,
	cfg *viper.Viper,
	verifier *auth.CredentialVerifier,
	authenticator *auth.Authenticator,
	validate *validator.Validate,
) *AdminAuthHttp {
	in := &AdminAuthHttp{
		Verifier:      verifier,
		Authenticator: authenticator,
		Validate:      validate,

		cookieSecure: cfg.GetBool("auth.session.secure"),
	}

	mux.HandleFunc("POST /api/admin/login", in.login)
	mux.HandleFunc("POST /api/admin/logout", in.logout)
	mux.HandleFunc("GET /api/admin/check", in.check)

	return in
}

func (in AdminAuthHttp) login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSONRequest(r, &req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "AdminAuthHttp.login")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "admin login receive request", slog.String(constant.LogFieldAdmin, req.Username), traceIdAttr)

	identity, err := in.Verifier.Verify(ctx, req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		slog.WarnContext(ctx, "admin login rejected", slog.String(constant.LogFieldAdmin, req.Username), traceIdAttr)
		writeErrorResponse(w, errs.Unauthorized("Invalid credentials"))
		return
	}

	if err != nil {
		slog.ErrorContext(ctx, "failed to verify admin credentials", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	sessionId, err := in.Authenticator.Sessions.Create(ctx, identity)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create admin session", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	token, expiresAt, err := in.Authenticator.Tokens.Issue(identity)
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue admin token", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	http.SetCookie(w, in.sessionCookie(sessionId, int(in.Authenticator.Sessions.TTL.Seconds())))

	slog.InfoContext(ctx, "admin login success", slog.String(constant.LogFieldAdmin, identity.Username), traceIdAttr)

	writeJSONResponse(w, http.StatusOK, model.LoginResponse{
		Success:   true,
		Message:   "Login successful",
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

func (in AdminAuthHttp) logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "AdminAuthHttp.logout")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	if err := in.Authenticator.Sessions.Destroy(ctx, in.Authenticator.SessionID(r)); err != nil {
		slog.ErrorContext(ctx, "failed to destroy admin session", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	if token, ok := auth.BearerToken(r); ok {
		claims, err := in.Authenticator.Tokens.Parse(ctx, token)
		switch {
		case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenRevoked):
			// nothing left to revoke
		case err != nil:
			slog.ErrorContext(ctx, "failed to parse admin token", traceIdAttr, slog.Any(constant.LogFieldErr, err))
			common.UtilSpanError(span, err)
			writeErrorResponse(w, err)
			return
		default:
			if err := in.Authenticator.Tokens.Revoke(ctx, claims); err != nil {
				slog.ErrorContext(ctx, "failed to revoke admin token", traceIdAttr, slog.Any(constant.LogFieldErr, err))
				common.UtilSpanError(span, err)
				writeErrorResponse(w, err)
				return
			}
		}
	}

	http.SetCookie(w, in.sessionCookie("", -1))

	writeJSONResponse(w, http.StatusOK, model.SuccessResponse{Success: true, Message: "Logged out"})
}

func (in AdminAuthHttp) check(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "AdminAuthHttp.check")
	defer span.End()

	identity, err := in.Authenticator.Authenticate(r.WithContext(ctx))
	if errors.Is(err, auth.ErrUnauthenticated) {
		writeJSONResponse(w, http.StatusOK, model.AuthCheckResponse{Authenticated: false})
		return
	}

	if err != nil {
		slog.ErrorContext(ctx, "failed to check admin authentication", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, model.AuthCheckResponse{Authenticated: true, User: &identity})
}

// sessionCookie builds the admin session cookie; a negative maxAge clears it.
func (in AdminAuthHttp) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     in.Authenticator.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   in.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
