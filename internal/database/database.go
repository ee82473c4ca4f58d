package database

import (
	"database/sql"
	"time"

	"github.com/andratama/topupstore-golang/internal/config"
	_ "github.com/go-sql-driver/mysql"
)

// Open creates and configures the shared MySQL connection pool.
func Open(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
