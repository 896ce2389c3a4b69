package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"mealky-way/common/auth"
	inboundCron "mealky-way/inbound/cron"
	inboundHttp "mealky-way/inbound/http"
	"mealky-way/outbound/notice"
	"mealky-way/outbound/sqlgen"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func runHttpServerCmd(ctx context.Context) {
	cfg := newCfg("env")

	stopProfile := startProfile(cfg, "http")
	defer stopProfile()

	shutdownTracer := newTracer(ctx, cfg)
	defer shutdownTracer()

	validate := validator.New()

	db := newDb(cfg)
	defer db.Close()

	cacheClient := newRedis(cfg)
	defer cacheClient.Close()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	createStreamWorkQueue(ctx, cfg, js)

	querier := sqlgen.New(db)

	verifier, err := auth.NewCredentialVerifier(querier, cfg.GetInt("auth.bcrypt_cost"))
	if err != nil {
		log.Fatalln("unable to init credential verifier", err)
	}

	authenticator := newAuthenticator(cfg, cacheClient)
	authMiddleware := inboundHttp.AuthMiddleware(authenticator)

	noticeStore := notice.NewStore(cacheClient)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		slog.DebugContext(r.Context(), "health check")
		w.WriteHeader(http.StatusOK)
	})

	timeoutMiddleware := inboundHttp.TimeoutMiddleware(cfg.GetDuration("server.handler_timeout"))

	inboundHttp.RegisterCustomerHttp(mux, querier, validate)
	inboundHttp.RegisterOrderHttp(mux, db, querier, js, validate)
	inboundHttp.RegisterAdminAuthHttp(mux, cfg, verifier, authenticator, validate)
	inboundHttp.RegisterAdminOrderHttp(mux, cfg, querier, validate, authMiddleware)
	inboundHttp.RegisterNoticeHttp(mux, noticeStore, validate, authMiddleware)

	noticeCron := &inboundCron.NoticeCron{
		Cfg:   cfg,
		Store: noticeStore,
	}

	err = noticeCron.InitNoticeCache(ctx)
	if err != nil {
		log.Fatalln("unable to init notice cache", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.GetInt("server.port")),
		Handler:           timeoutMiddleware(inboundHttp.CorsMiddleware(mux)),
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln("unable to start server", err)
		}
	}()

	slog.Info("http server started", slog.String("addr", srv.Addr))

	go func() {
		noticeCron.Start(ctx)
	}()

	<-ctx.Done()

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatalln("unable to shutdown server", err)
	}

	slog.Info("http server stopped")
}

func newAuthenticator(cfg *viper.Viper, cacheClient *redis.Client) *auth.Authenticator {
	secret := cfg.GetString("auth.secret")
	if secret == "" {
		log.Fatalln("auth.secret must be set")
	}

	return &auth.Authenticator{
		Tokens: &auth.TokenIssuer{
			Secret:  []byte(secret),
			Issuer:  cfg.GetString("auth.issuer"),
			TTL:     cfg.GetDuration("auth.token.ttl"),
			Cache:   cacheClient,
			TimeNow: time.Now,
		},
		Sessions:   auth.NewSessionStore(cacheClient, cfg.GetDuration("auth.session.ttl")),
		CookieName: cfg.GetString("auth.session.cookie_name"),
	}
}
