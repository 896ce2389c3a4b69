package cmd

import (
	"context"
	"fmt"
	"log"
	commonJs "mealky-way/common/jetstream"
	"mealky-way/common/otel"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func newCfg(name string) *viper.Viper {
	config := viper.New()

	config.SetConfigName(name)
	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	config.SetDefault("server.port", 3000)
	config.SetDefault("server.timezone", "Asia/Dhaka")
	config.SetDefault("server.handler_timeout", "20s")
	config.SetDefault("auth.issuer", "mealky-way")
	config.SetDefault("auth.token.ttl", "24h")
	config.SetDefault("auth.session.ttl", "24h")
	config.SetDefault("auth.session.cookie_name", "mw_session")
	config.SetDefault("auth.bcrypt_cost", 10)
	config.SetDefault("cron.notice.refresh.interval", "30s")
	config.SetDefault("cron.notice.refresh.timeout", "5s")
	config.SetDefault("queue.max_bytes", -1)
	config.SetDefault("export.timezone", "Asia/Dhaka")
	config.SetDefault("notification.locale", "en")
	config.SetDefault("otel.service_name", "mealky-way")
	config.SetDefault("otel.sample_ratio", 1.0)

	err := config.ReadInConfig()
	if err != nil {
		log.Fatalln(err)
	}

	timezone := config.GetString("server.timezone")
	err = os.Setenv("TZ", timezone)
	if err != nil {
		log.Fatalln(err)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		log.Fatalln(err)
	}
	time.Local = loc

	return config
}

func newDb(cfg *viper.Viper) *pgxpool.Pool {
	username := cfg.GetString("db.user")
	password := cfg.GetString("db.password")
	host := cfg.GetString("db.host")
	port := cfg.GetInt("db.port")
	database := cfg.GetString("db.name")
	maxConn := cfg.GetInt("db.pool.max")
	minConn := cfg.GetInt("db.pool.min")
	timezone := cfg.GetString("server.timezone")
	sslMode := cfg.GetString("db.sslmode")
	if sslMode == "" {
		sslMode = "disable"
	}

	connString := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?timezone=%s&sslmode=%s",
		username, password, host, port, database, timezone, sslMode)

	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		log.Fatalln(err)
	}

	config.MaxConns = int32(maxConn)
	config.MinConns = int32(minConn)
	config.ConnConfig.Tracer = &otel.PgxCustomTracer{}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatalln(err)
	}

	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatalln(err)
	}

	return pool
}

func newRedis(cfg *viper.Viper) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.GetString("redis.addr"),
		Password: cfg.GetString("redis.password"),
		DB:       cfg.GetInt("redis.db"),
	})

	err := rdb.Ping(context.Background()).Err()
	if err != nil {
		log.Fatalln(err)
	}

	return rdb
}

func newNats(viper *viper.Viper) *nats.Conn {
	conn, err := nats.Connect(viper.GetString("nats.addr"), nats.Name("mealky-way"))
	if err != nil {
		log.Fatalln(err)
	}

	return conn
}

func newJs(conn *nats.Conn) jetstream.JetStream {
	js, err := jetstream.New(conn)
	if err != nil {
		log.Fatalln(err)
	}

	return js
}

func createStreamWorkQueue(ctx context.Context, cfg *viper.Viper, js jetstream.JetStream) jetstream.Stream {
	st, err := commonJs.CreateQueueStream(ctx, js, cfg.GetInt64("queue.max_bytes"))
	if err != nil {
		log.Fatalln("failed to create stream", err)
	}

	return st
}

// newTracer installs the tracer provider and returns its shutdown, to be deferred by the caller.
func newTracer(ctx context.Context, cfg *viper.Viper) func() {
	shutdown, err := otel.InitTracerProvider(ctx, cfg)
	if err != nil {
		log.Fatalln("failed to init tracer provider", err)
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := shutdown(ctx); err != nil {
			log.Println("failed to shutdown tracer provider", err)
		}
	}
}
