package main

import (
	"database/sql"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	_ "github.com/lib/pq"
)

const dialect = "postgres"

func main() {
	// Load .env if present, don't fail if missing
	_ = godotenv.Load()

	var (
		downFlag = flag.Bool("down", false, "Roll the latest migration back instead of migrating up")
		dirFlag  = flag.String("dir", "./db/migrations", "Directory with migration files")
	)
	flag.Parse()

	dbConn := os.Getenv("DB_CONN")
	if dbConn == "" {
		logrus.Fatal("DB_CONN environment variable is required")
	}

	db, err := sql.Open(dialect, dbConn)
	if err != nil {
		logrus.Fatalf("Migration failed: %+v", errors.Wrap(err, "open db connection"))
	}
	defer db.Close()

	if err := run(db, *dirFlag, *downFlag); err != nil {
		logrus.Fatalf("Migration failed: %+v", err)
	}
}

func run(db *sql.DB, dir string, migrateDown bool) error {
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "set dialect")
	}

	if migrateDown {
		if err := goose.Down(db, dir); err != nil {
			return errors.Wrap(err, "migrate down")
		}

		logrus.Info("Migrations rolled back successfully")

		return nil
	}

	if err := goose.Up(db, dir, goose.WithAllowMissing()); err != nil {
		return errors.Wrap(err, "migrate up")
	}

	logrus.Info("Migrations applied successfully")

	return nil
}
