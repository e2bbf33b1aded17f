package dao

import (
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/config"
)

// Open opens a GORM connection for the configured driver and applies the
// connection pool settings.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		dialector = mysql.Open(cfg.DSN)
	}
	gdb, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifeSec > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifeSec) * time.Second)
	}
	return gdb, nil
}

// Ping retries Ping on the underlying *sql.DB of a *gorm.DB.
func Ping(gdb *gorm.DB, attempts int, interval time.Duration) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	for i := 0; i < attempts; i++ {
		if err := sqlDB.Ping(); err != nil {
			time.Sleep(interval)
			continue
		}
		return nil
	}
	return sqlDB.Ping()
}
