package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: go run main.go [drop|up|seed]")
		os.Exit(1)
	}

	command := os.Args[1]

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	switch command {
	case "drop":
		if err := dropTables(ctx, conn); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("✅ All tables dropped successfully")

	case "up":
		if err := createTables(ctx, conn); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
		fmt.Println("✅ All tables created successfully")

	case "seed":
		if err := seedData(ctx, conn); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
		fmt.Println("✅ Data seeded successfully")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Usage: go run main.go [drop|up|seed]")
		os.Exit(1)
	}
}

func dropTables(ctx context.Context, conn *pgx.Conn) error {
	queries := []string{
		`DROP TABLE IF EXISTS invite_codes CASCADE`,
		`DROP TABLE IF EXISTS winners CASCADE`,
		`DROP TABLE IF EXISTS votes CASCADE`,
		`DROP TABLE IF EXISTS allowed_phones CASCADE`,
		`DROP TABLE IF EXISTS profiles CASCADE`,
	}

	for _, query := range queries {
		if _, err := conn.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
		fmt.Printf("  Dropped: %s\n", query)
	}

	return nil
}

func createTables(ctx context.Context, conn *pgx.Conn) error {
	queries := []string{
		// Profiles, id matches the Supabase auth.users id
		`CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			phone TEXT UNIQUE NOT NULL,
			avatar_url TEXT,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		// Phone allow-list gating profile provisioning
		`CREATE TABLE IF NOT EXISTS allowed_phones (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			phone TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		// Append-only vote ledger, partitioned logically by year
		`CREATE TABLE IF NOT EXISTS votes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			voter_id UUID NOT NULL REFERENCES profiles(id),
			candidate_id UUID NOT NULL REFERENCES profiles(id),
			comment TEXT,
			year INTEGER NOT NULL DEFAULT EXTRACT(YEAR FROM NOW())::integer,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_votes_year ON votes(year)`,
		`CREATE INDEX IF NOT EXISTS idx_votes_candidate ON votes(candidate_id, year)`,
		`CREATE INDEX IF NOT EXISTS idx_votes_voter ON votes(voter_id, year)`,

		// Past winners archive
		`CREATE TABLE IF NOT EXISTS winners (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES profiles(id),
			year INTEGER NOT NULL,
			total_votes INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		// Single-use signup invite codes
		`CREATE TABLE IF NOT EXISTS invite_codes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			code TEXT UNIQUE NOT NULL,
			used_by UUID REFERENCES profiles(id),
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			used_at TIMESTAMP
		)`,
	}

	for _, query := range queries {
		if _, err := conn.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

func seedData(ctx context.Context, conn *pgx.Conn) error {
	// A starter allow-list so the first admin can log in and manage the rest
	queries := []string{
		`INSERT INTO allowed_phones (phone, name, is_admin)
		 VALUES ('+5511999300861', 'Admin', TRUE)
		 ON CONFLICT (phone) DO NOTHING`,
	}

	for _, query := range queries {
		if _, err := conn.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}
