package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentencias de esquema: se ejecutan en el arranque, sin sistema de migraciones.
// CREATE TABLE IF NOT EXISTS hace la operación idempotente.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		tier       TEXT NOT NULL DEFAULT 'SMB',
		invoices   INTEGER NOT NULL DEFAULT 0,
		status     TEXT NOT NULL DEFAULT 'new',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id       TEXT PRIMARY KEY,
		customer TEXT NOT NULL,
		amount   BIGINT NOT NULL,
		currency TEXT NOT NULL DEFAULT 'INR',
		status   TEXT NOT NULL DEFAULT 'sent',
		due      DATE NOT NULL,
		created  DATE NOT NULL,
		method   TEXT NOT NULL DEFAULT '—'
	)`,
	`CREATE TABLE IF NOT EXISTS subscriptions (
		id       TEXT PRIMARY KEY,
		plan     TEXT NOT NULL,
		customer TEXT NOT NULL,
		mrr      BIGINT NOT NULL,
		status   TEXT NOT NULL DEFAULT 'active'
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id         TEXT PRIMARY KEY,
		invoice_id TEXT NOT NULL,
		amount     BIGINT NOT NULL,
		method     TEXT NOT NULL,
		paid_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_invoice_id ON payments (invoice_id)`,
}

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}
