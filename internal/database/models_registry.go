package database

import "ripple/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// The User table is owned by the external identity service; it is migrated
// here only so local development and tests have a complete schema.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Friendship{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	}
}
