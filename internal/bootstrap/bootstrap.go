package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the cost factor for bcrypt password hashing.
const bcryptCost = 12

// EnsureAdmin creates the admin user if it does not exist yet. An existing
// username is left untouched, so the command is safe to run on every deploy.
func EnsureAdmin(ctx context.Context, pool *pgxpool.Pool, username, email, password string, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if username == "" {
		return errors.New("admin username required")
	}
	if password == "" {
		return errors.New("admin password required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	const q = `
INSERT INTO admin_users (username, email, password_hash)
VALUES ($1, $2, $3)
ON CONFLICT (username) DO NOTHING
`
	cmd, err := pool.Exec(ctx, q, username, email, string(hash))
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		logger.Printf("bootstrap: admin user %s already exists", username)
		return nil
	}
	logger.Printf("bootstrap: created admin user %s", username)
	return nil
}
