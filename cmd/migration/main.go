package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fadedpez/gofish/internal/config"
	"github.com/fadedpez/gofish/internal/logging"
	"github.com/fadedpez/gofish/pkg/db/migrations"
	"github.com/jedib0t/go-pretty/v6/table"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Define command-line flags
	createCmd := flag.NewFlagSet("create", flag.ExitOnError)
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	statusCmd := flag.NewFlagSet("status", flag.ExitOnError)

	// Create command options
	migrationsDir := createCmd.String("dir", filepath.Join("pkg", "db", "migrations", "sql"), "Directory to store migrations")

	// Migrate and status command options
	migrateDB := migrateCmd.String("db", cfg.DBPath, "Path to SQLite database")
	statusDB := statusCmd.String("db", cfg.DBPath, "Path to SQLite database")

	// Show usage if no arguments provided
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	logger := logging.NewLogger(logging.INFO, os.Stdout)

	switch os.Args[1] {
	case "create":
		createCmd.Parse(os.Args[2:])
		if createCmd.NArg() < 1 {
			fmt.Println("Error: Missing migration description")
			createCmd.Usage()
			os.Exit(1)
		}
		createNewMigration(*migrationsDir, createCmd.Arg(0))

	case "migrate":
		migrateCmd.Parse(os.Args[2:])
		applyMigrations(ctx, *migrateDB, logger)

	case "status":
		statusCmd.Parse(os.Args[2:])
		showStatus(ctx, *statusDB)

	case "help":
		printUsage()

	default:
		fmt.Printf("Error: Unknown command '%s'\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/migration create DESCRIPTION  - Create a new migration")
	fmt.Println("  go run ./cmd/migration migrate            - Apply pending migrations")
	fmt.Println("  go run ./cmd/migration status             - List migrations and whether they ran")
	fmt.Println("  go run ./cmd/migration help               - Show this help")
	fmt.Println("\nExamples:")
	fmt.Println("  go run ./cmd/migration create \"add match duration\"")
	fmt.Println("  go run ./cmd/migration migrate -db data/gofish.db")
	fmt.Println("\nNew migrations are embedded at build time, so rebuild before migrating.")
}

func createNewMigration(migrationsDir, description string) {
	filePath, err := migrations.CreateMigration(migrationsDir, description)
	if err != nil {
		log.Fatalf("Error creating migration: %v", err)
	}

	fmt.Printf("Created migration file: %s\n", filePath)
	fmt.Println("Edit this file to add your database schema changes.")
}

func openDB(dbPath string) *sql.DB {
	// Ensure database directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		log.Fatalf("Error creating database directory: %v", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	return db
}

func applyMigrations(ctx context.Context, dbPath string, logger *logging.Logger) {
	db := openDB(dbPath)
	defer db.Close()

	migrator := migrations.NewMigrator(db, migrations.Embedded()).WithLogger(logger)
	count, err := migrator.MigrateUp(ctx)
	if err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}

	fmt.Printf("Applied %d migration(s) to %s\n", count, dbPath)
}

func showStatus(ctx context.Context, dbPath string) {
	db := openDB(dbPath)
	defer db.Close()

	statuses, err := migrations.NewMigrator(db, migrations.Embedded()).Status(ctx)
	if err != nil {
		log.Fatalf("Error reading migration status: %v", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Version", "Description", "Applied"})
	for _, s := range statuses {
		applied := "pending"
		if s.Applied {
			applied = s.AppliedAt.Format("2006-01-02 15:04:05")
		}
		t.AppendRow(table.Row{s.Version, s.Description, applied})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
