//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var tcPool *pgxpool.Pool

var tcDSN string

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_pass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres testcontainer: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		if termErr := pgContainer.Terminate(ctx); termErr != nil {
			log.Printf("failed to terminate container after conn string error: %v", termErr)
		}
		log.Fatalf("failed to get connection string from container: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		if termErr := pgContainer.Terminate(ctx); termErr != nil {
			log.Printf("failed to terminate container after pool create error: %v", termErr)
		}
		log.Fatalf("failed to create pgx pool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		if termErr := pgContainer.Terminate(ctx); termErr != nil {
			log.Printf("failed to terminate container after ping error: %v", termErr)
		}
		log.Fatalf("failed to ping postgres in testcontainer: %v", err)
	}

	tcPool = pool
	tcDSN = connStr

	if err := createTables(ctx, tcPool); err != nil {
		pool.Close()
		if termErr := pgContainer.Terminate(ctx); termErr != nil {
			log.Printf("failed to terminate container after createTables error: %v", termErr)
		}
		log.Fatalf("failed to create test tables: %v", err)
	}

	code := m.Run()

	pool.Close()
	if err := pgContainer.Terminate(ctx); err != nil {
		log.Printf("failed to terminate postgres container: %v", err)
	}

	os.Exit(code)
}

func createTables(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []struct {
		name string
		sql  string
	}{
		{"orders", `
		CREATE TABLE IF NOT EXISTS orders (
			id                  TEXT PRIMARY KEY,
			customer_name       TEXT NOT NULL,
			customer_phone      TEXT NOT NULL,
			address1            TEXT NOT NULL,
			address2            TEXT NOT NULL DEFAULT '',
			postcode            TEXT NOT NULL,
			city                TEXT NOT NULL,
			state               TEXT NOT NULL,
			price               NUMERIC NOT NULL,
			payment_mode        TEXT NOT NULL,
			product             TEXT NOT NULL,
			staff_id            TEXT NOT NULL,
			tracking_no         TEXT UNIQUE,
			delivery_status     TEXT NOT NULL,
			raw_courier_status  TEXT NOT NULL DEFAULT '',
			courier_name        TEXT NOT NULL DEFAULT '',
			payment_received_at TIMESTAMP WITHOUT TIME ZONE,
			returned_at         TIMESTAMP WITHOUT TIME ZONE,
			created_at          TIMESTAMP WITHOUT TIME ZONE DEFAULT now() NOT NULL,
			updated_at          TIMESTAMP WITHOUT TIME ZONE DEFAULT now() NOT NULL
		);`},
		{"courier_tokens", `
		CREATE TABLE IF NOT EXISTS courier_tokens (
			id         BIGSERIAL PRIMARY KEY,
			token      TEXT NOT NULL,
			expires_at TIMESTAMP WITHOUT TIME ZONE NOT NULL,
			created_at TIMESTAMP WITHOUT TIME ZONE DEFAULT now() NOT NULL
		);`},
		{"prospects", `
		CREATE TABLE IF NOT EXISTS prospects (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			phone      TEXT NOT NULL UNIQUE,
			note       TEXT NOT NULL DEFAULT '',
			source     TEXT NOT NULL DEFAULT '',
			staff_id   TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP WITHOUT TIME ZONE DEFAULT now() NOT NULL
		);`},
		{"devices", `
		CREATE TABLE IF NOT EXISTS devices (
			staff_id  TEXT PRIMARY KEY,
			device_id TEXT NOT NULL,
			phone     TEXT NOT NULL,
			connected BOOLEAN NOT NULL DEFAULT false
		);`},
		{"webhook_log", `
		CREATE TABLE IF NOT EXISTS webhook_log (
			id          BIGSERIAL PRIMARY KEY,
			method      TEXT NOT NULL,
			path        TEXT NOT NULL,
			body        TEXT NOT NULL DEFAULT '',
			parsed      TEXT NOT NULL DEFAULT '',
			response    TEXT NOT NULL DEFAULT '',
			duration_ms BIGINT NOT NULL DEFAULT 0,
			error_text  TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMP WITHOUT TIME ZONE DEFAULT now() NOT NULL
		);`},
		{"courier_configs", `
		CREATE TABLE IF NOT EXISTS courier_configs (
			id              BIGSERIAL PRIMARY KEY,
			sender_name     TEXT NOT NULL,
			sender_phone    TEXT NOT NULL,
			sender_address1 TEXT NOT NULL,
			sender_address2 TEXT NOT NULL DEFAULT '',
			sender_postcode TEXT NOT NULL,
			sender_city     TEXT NOT NULL,
			sender_state    TEXT NOT NULL,
			client_id       TEXT NOT NULL DEFAULT '',
			client_secret   TEXT NOT NULL DEFAULT '',
			courier_channel TEXT NOT NULL DEFAULT ''
		);`},
	}

	for _, s := range stmts {
		if _, err := pool.Exec(ctx, s.sql); err != nil {
			return fmt.Errorf("create %s table: %w", s.name, err)
		}
	}
	return nil
}
