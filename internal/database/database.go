package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	_ "modernc.org/sqlite"

	"servimarket_backend/internal/models"
)

// Connect opens the database from a DSN. Postgres URLs get the postgres
// driver; anything else (a file path or ":memory:") is treated as SQLite,
// which the test suites use.
func Connect(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.ProfessionalProfile{},
		&models.Profession{},
		&models.ProfessionLink{},
		&models.ServicePosting{},
		&models.Offer{},
		&models.ServiceTransaction{},
		&models.Payment{},
		&models.Withdrawal{},
		&models.PromoCode{},
		&models.PromoCodeUsage{},
		&models.Review{},
		&models.Report{},
		&models.Conversation{},
		&models.Message{},
		&models.SupportTicket{},
		&models.Upload{},
	)
}
