package database

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ZJUSCT/CSBoard/internal/database/models"
	"go.uber.org/zap"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// zapWriter routes gorm's own log lines to zap instead of stdout, which
// carries the protocol output.
type zapWriter struct{}

func (zapWriter) Printf(format string, args ...interface{}) {
	zap.S().Warnf(format, args...)
}

func Init(dsn string) (*gorm.DB, error) {
	if _, err := os.Stat(dsn); os.IsNotExist(err) {
		zap.S().Infof("database file not found at '%s', creating directory for it.", dsn)
		dbDir := filepath.Dir(dsn)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.New(zapWriter{}, logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.Run{},
		&models.Submission{},
		&models.Standings{},
		&models.StandingsRow{},
		&models.RankChange{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
