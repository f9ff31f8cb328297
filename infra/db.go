package infra

import (
	"fmt"
	"time"

	"gin-shoplist/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 参照整合性はストア側で保証する。DBの外部キー制約は作らない
func gormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(level),
	}
}

func SetupDB(cfg *Config) (*gorm.DB, error) {
	if cfg.UsesPostgres() {
		// 本番環境ではsslmode=require、それ以外はsslmode=disable
		sslmode := "disable"
		if cfg.IsProduction() {
			sslmode = "require"
		}
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC connect_timeout=10",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBPort,
			sslmode,
		)
		db, err := gorm.Open(postgres.Open(dsn), gormConfig(logger.Warn))
		if err != nil {
			return nil, fmt.Errorf("connect to postgres %s@%s/%s: %w", cfg.DBUser, cfg.DBHost, cfg.DBName, err)
		}
		log.Info().Str("host", cfg.DBHost).Str("dbname", cfg.DBName).Msg("Setup postgres database")
		return db, nil
	}

	db, err := SetupSQLite(cfg.SQLitePath, logger.Warn)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", cfg.SQLitePath).Msg("Setup sqlite database")
	return db, nil
}

// SetupSQLite opens a single-connection SQLite database, so ":memory:"
// stays one database for the lifetime of the pool.
func SetupSQLite(path string, level logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig(level))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Duration(0))
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.ShopList{}, &models.ShopItem{})
}

// SetupTestDB returns a migrated in-memory database with query logging off.
func SetupTestDB() (*gorm.DB, error) {
	db, err := SetupSQLite(":memory:", logger.Silent)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
