package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mealky-way/common/constant"
	"mealky-way/common/errs"
	"mealky-way/model"
	"mealky-way/outbound/sqlgen"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type CredentialVerifier struct {
	Querier *sqlgen.Queries

	// dummyHash is compared against when the username is unknown so both failure paths cost one bcrypt run.
	dummyHash []byte
}

func NewCredentialVerifier(querier *sqlgen.Queries, cost int) (*CredentialVerifier, error) {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("mealky-way-dummy-password"), normalizeCost(cost))
	if err != nil {
		return nil, fmt.Errorf("generate dummy hash: %w", err)
	}

	return &CredentialVerifier{Querier: querier, dummyHash: dummyHash}, nil
}

// Verify checks username and password against admin_users. Unknown usernames and wrong passwords both
// yield ErrInvalidCredentials.
func (v *CredentialVerifier) Verify(ctx context.Context, username, password string) (model.AdminIdentity, error) {
	admin, err := v.Querier.FindAdminUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return model.AdminIdentity{}, errs.Storage("find admin user", err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		_ = bcrypt.CompareHashAndPassword(v.dummyHash, []byte(password))
		return model.AdminIdentity{}, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password))
	if err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			slog.ErrorContext(ctx, "stored password hash is unusable", slog.Int("admin_id", int(admin.ID)), slog.Any(constant.LogFieldErr, err))
		}
		return model.AdminIdentity{}, ErrInvalidCredentials
	}

	return model.AdminIdentity{Id: admin.ID, Username: admin.Username}, nil
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), normalizeCost(cost))
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func normalizeCost(cost int) int {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}
