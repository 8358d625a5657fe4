package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a person using the application.
//
// Authentication is not handled by the backend. Requests carry the ID of an
// already authenticated user, the user resource only exists so that all
// other resources can be isolated per user.
type User struct {
	DefaultModel
	Name     string `json:"name" example:"Morre"`
	Username string `json:"username" gorm:"uniqueIndex" example:"morre"`
	Email    string `json:"email" gorm:"uniqueIndex" example:"morre@example.com"`
	Currency string `json:"currency" example:"USD" default:"USD"` // ISO 4217 code used for display
}

// defaultBuckets are created for every new user as a starter set.
var defaultBuckets = []Bucket{
	{Name: "Groceries", IconName: "Shopping"},
	{Name: "Transportation", IconName: "Transportation"},
	{Name: "Entertainment", IconName: "Entertainment"},
	{Name: "Dining Out", IconName: "Dining"},
}

// AfterCreate creates the default starter buckets for a new user.
func (u *User) AfterCreate(tx *gorm.DB) error {
	for _, bucket := range defaultBuckets {
		bucket.UserID = u.ID

		err := tx.Create(&bucket).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// GetUser returns the user with the ID.
func GetUser(db *gorm.DB, id uuid.UUID) (User, error) {
	var user User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		return User{}, err
	}

	return user, nil
}

// DeleteUser permanently deletes the user together with all their
// resources.
func DeleteUser(db *gorm.DB, userID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := WipeUserData(tx, userID)
		if err != nil {
			return err
		}

		return tx.Unscoped().Where("id = ?", userID).Delete(&User{}).Error
	})
}

// WipeUserData permanently deletes all resources of the user, but keeps the
// user itself.
//
// Foreign keys are checked during deletion, resources are removed before
// the resources they reference.
func WipeUserData(db *gorm.DB, userID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		resources := []any{
			Transaction{},
			AllocationHistory{},
			Bucket{},
			IncomeRecord{},
		}

		for _, model := range resources {
			err := tx.Unscoped().Where("user_id = ?", userID).Delete(&model).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
