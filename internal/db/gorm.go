package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/songlist-dev/songlist-back/internal/config"
)

func NewGormClient(cfg *config.Config) (*gorm.DB, error) {
	newLogger := logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Info,
		Colorful:                  true,
		IgnoreRecordNotFoundError: false,
	})

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
	client, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err := Migrate(client); err != nil {
		return nil, err
	}

	return client, nil
}

// Migrate runs schema auto-migration for every model, parents before the
// entities referencing them.
func Migrate(client *gorm.DB) error {
	models := []struct {
		name  string
		model interface{}
	}{
		{"user", &User{}},
		{"guest user", &GuestUser{}},
		{"category", &Category{}},
		{"artist", &Artist{}},
		{"genre", &Genre{}},
		{"tag", &Tag{}},
		{"task", &Task{}},
		{"comment", &Comment{}},
	}
	for _, m := range models {
		if err := client.AutoMigrate(m.model); err != nil {
			return errors.Wrap(err, "migrate "+m.name)
		}
	}
	return nil
}
