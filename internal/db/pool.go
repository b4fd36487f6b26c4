package db

import (
	"context"
	"fmt"
	"net"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultDBUser = "postgres"

type NewDBPoolParams struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	TracingEnabled bool
}

// NewDBPool opens the pgx connection pool for the workout history
// database. The password is optional (trust / peer auth setups).
func NewDBPool(ctx context.Context, params NewDBPoolParams) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(connString(params))
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	return db, nil
}

func connString(params NewDBPoolParams) string {
	user := params.DBUser
	if user == "" {
		user = defaultDBUser
	}

	hostPort := net.JoinHostPort(params.DBHost, params.DBPort)
	if params.DBPassword == "" {
		return fmt.Sprintf("postgres://%s@%s/%s", user, hostPort, params.DBName)
	}
	return fmt.Sprintf("postgres://%s:%s@%s/%s", user, params.DBPassword, hostPort, params.DBName)
}
