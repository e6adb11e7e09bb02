package repository

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/homebudget/backend/internal/models"
)

var userColumns = map[string]bool{
	"alias":             true,
	"color_hex":         true,
	"default_wallet_fk": true,
}

// Users is the data access for known identities.
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (r *Users) All() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("alias").Find(&users).Error
	if err != nil {
		return nil, wrap(err)
	}

	return users, nil
}

func (r *Users) ByID(id uuid.UUID) (models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return models.User{}, wrap(err)
	}

	return user, nil
}

// Upsert inserts the user or overwrites the existing row with the same id.
func (r *Users) Upsert(user models.User) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&user).Error

	return wrap(err)
}

func (r *Users) UpdateField(id uuid.UUID, column string, value any) error {
	if !userColumns[column] {
		return fmt.Errorf("%w: unknown column %q", ErrRemote, column)
	}

	res := r.db.Model(&models.User{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
