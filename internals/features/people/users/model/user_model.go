// file: internals/features/people/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel backs the auth token claims. Account management itself lives
// outside this service; only the seeder and the teacher-profile link touch it.
type UserModel struct {
	// PK
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`

	UserEmail        string `json:"user_email" gorm:"column:user_email;type:varchar(160);not null;uniqueIndex:uq_users_email"`
	UserPasswordHash string `json:"-" gorm:"column:user_password_hash;type:text;not null"`
	UserRole         string `json:"user_role" gorm:"column:user_role;type:varchar(20);not null;default:'teacher'"`

	// Timestamps
	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;type:timestamptz;not null;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;type:timestamptz;not null;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;type:timestamptz;index"`
}

func (UserModel) TableName() string { return "users" }
