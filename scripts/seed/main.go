package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/biztime/biztime/internal/app"
	"github.com/biztime/biztime/internal/platform/db"
)

//go:embed schema.sql
var schema string

type sampleInvoice struct {
	compCode string
	amount   float64
	paid     bool
	paidDate *time.Time
}

func main() {
	if app.InTestMode() {
		log.Println("test mode detected, skipping seed")
		return
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	pool, err := db.New(ctx, cfg.DatabaseURL(), db.Options{MaxConns: 2})
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	fmt.Println("→ Applying schema...")
	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalf("apply schema: %v", err)
	}

	fmt.Println("→ Seeding companies and invoices...")
	if err := db.WithTx(ctx, pool, func(tx pgx.Tx) error {
		return seedData(ctx, tx)
	}); err != nil {
		log.Fatalf("seed data: %v", err)
	}

	fmt.Println("✓ Seed complete at", time.Now().Format(time.RFC3339))
}

func seedData(ctx context.Context, tx pgx.Tx) error {
	companies := []struct {
		code        string
		name        string
		description string
	}{
		{"apple", "Apple Computer", "Maker of OSX."},
		{"ibm", "IBM", "Big blue."},
	}

	batch := &pgx.Batch{}
	for _, c := range companies {
		batch.Queue(`INSERT INTO companies (code, name, description) VALUES ($1, $2, $3)`, c.code, c.name, c.description)
	}

	paidOn := time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)
	invoices := []sampleInvoice{
		{compCode: "apple", amount: 100},
		{compCode: "apple", amount: 200},
		{compCode: "apple", amount: 300, paid: true, paidDate: &paidOn},
		{compCode: "ibm", amount: 400},
	}
	for _, inv := range invoices {
		batch.Queue(`INSERT INTO invoices (comp_code, amt, paid, paid_date) VALUES ($1, $2, $3, $4)`,
			inv.compCode, inv.amount, inv.paid, inv.paidDate)
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("seed statement %d: %w", i, err)
		}
	}
	return results.Close()
}
