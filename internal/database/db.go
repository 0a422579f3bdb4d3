package database

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/go-sql-driver/mysql"

	"github.com/Alena-Semenova/plan-d-back/internal/config"
)

// Open connects to MySQL using the DSN from the configuration and applies
// the pool settings. The initial connectivity probe is soft: a failure is
// logged but does not prevent startup, so the service comes up even when
// the store is briefly unreachable and the error resurfaces on first use.
func Open(cfg config.Config) (*sql.DB, error) {
	// DSN must carry parseTime=true so DATETIME columns scan into time.Time.
	db, err := sql.Open("mysql", cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.ConnIdleTime)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.AcquireTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Printf("database: initial probe failed: %v", err)
	} else {
		log.Printf("database: connection established")
	}
	return db, nil
}
