package runner

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ridoystarlord/schemagen/database"
)

func getConn() (*pgxpool.Conn, context.Context, error) {
	ctx := context.Background()
	conn, err := database.GetConnection(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("get connection: %w", err)
	}
	return conn, ctx, nil
}

func ensureMigrationsTable(conn *pgxpool.Conn, ctx context.Context) error {
	_, err := conn.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		id SERIAL PRIMARY KEY,
		filename TEXT NOT NULL UNIQUE,
		applied_at TIMESTAMP DEFAULT now(),
		checksum TEXT
	);
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}
	return nil
}

// ApplyMigration applies one generated DDL artifact inside a
// transaction and records it. Re-applying an unchanged artifact is a
// no-op; the DDL itself is idempotent, but the record keeps the
// history honest.
func ApplyMigration(path string) error {
	sqlBytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading migration %s: %w", path, err)
	}
	checksum := fmt.Sprintf("%x", sha256.Sum256(sqlBytes))
	filename := filepath.Base(path)

	conn, ctx, err := getConn()
	if err != nil {
		return err
	}
	defer conn.Release()

	if err := ensureMigrationsTable(conn, ctx); err != nil {
		return err
	}

	var applied string
	err = conn.QueryRow(ctx,
		`SELECT checksum FROM schema_migrations WHERE filename = $1`, filename).Scan(&applied)
	if err == nil && applied == checksum {
		fmt.Printf("✅ %s already applied, skipping\n", filename)
		return nil
	}
	if err != nil && err != pgx.ErrNoRows {
		return fmt.Errorf("checking migration history: %w", err)
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, string(sqlBytes)); err != nil {
		return fmt.Errorf("applying %s: %w", filename, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO schema_migrations (filename, checksum)
		VALUES ($1, $2)
		ON CONFLICT (filename) DO UPDATE SET checksum = $2, applied_at = now()
	`, filename, checksum)
	if err != nil {
		return fmt.Errorf("recording %s: %w", filename, err)
	}

	return tx.Commit(ctx)
}
