package cmd

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"mealky-way/common/auth"
	"mealky-way/outbound/sqlgen"
	"strings"
	"time"
)

var errMissingAdminCredentials = errors.New("username and password are required")

// runCreateAdminCmd provisions an admin account, resetting the password when the username exists.
func runCreateAdminCmd(ctx context.Context, username, password string) {
	cfg := newCfg("env")

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		log.Fatalln(errMissingAdminCredentials)
	}

	db := newDb(cfg)
	defer db.Close()

	hash, err := auth.HashPassword(password, cfg.GetInt("auth.bcrypt_cost"))
	if err != nil {
		log.Fatalln("unable to hash password", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	id, err := sqlgen.New(db).InsertAdminUser(ctx, sqlgen.InsertAdminUserParams{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		log.Fatalln("unable to save admin user", err)
	}

	slog.InfoContext(ctx, "admin user saved", slog.Int("id", int(id)), slog.String("username", username))
}
