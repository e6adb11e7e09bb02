package models

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	gorm_zerolog "github.com/wei840222/gorm-zerolog"
	"gorm.io/gorm"
)

// Connect opens the sqlite file backing the table store and migrates the
// schema. The handle is returned for injection instead of being stored
// globally so tests can use throwaway databases.
func Connect(path string) (*gorm.DB, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: gorm_zerolog.New(),
	}

	db, err := gorm.Open(sqlite.Open(path), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(Category{}, Wallet{}, User{}, BudgetGoal{}, Transaction{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
