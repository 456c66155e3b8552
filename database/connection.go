package database

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ridoystarlord/schemagen/utils"
)

var (
	pool     *pgxpool.Pool
	poolOnce sync.Once
	poolErr  error
)

// GetPool returns a singleton connection pool built from DATABASE_URL.
func GetPool() (*pgxpool.Pool, error) {
	poolOnce.Do(func() {
		utils.LoadEnv()
		connStr := os.Getenv("DATABASE_URL")
		if connStr == "" {
			poolErr = fmt.Errorf("DATABASE_URL not set in environment")
			return
		}

		ctx := context.Background()
		pool, poolErr = pgxpool.New(ctx, connStr)
		if poolErr != nil {
			poolErr = fmt.Errorf("unable to create connection pool: %w", poolErr)
			return
		}

		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			poolErr = fmt.Errorf("unable to ping database: %w", err)
		}
	})

	return pool, poolErr
}

// GetConnection acquires a single connection from the pool. The caller
// owns the lease and must Release it.
func GetConnection(ctx context.Context) (*pgxpool.Conn, error) {
	pool, err := GetPool()
	if err != nil {
		return nil, err
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to acquire connection: %w", err)
	}

	return conn, nil
}

// ClosePool closes the connection pool on shutdown.
func ClosePool() {
	if pool != nil {
		pool.Close()
	}
}
