package database

import (
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the database and assigns the package-global handle. Postgres
// is used when DATABASE_URL is set; otherwise a local SQLite file (DB_PATH,
// default retro.db).
func Connect() error {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var err error
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		DB, err = gorm.Open(postgres.Open(dsn), cfg)
		return err
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "retro.db"
	}
	DB, err = gorm.Open(sqlite.Open(path), cfg)
	return err
}
