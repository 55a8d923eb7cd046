// file: internals/features/people/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	// PK
	TeacherID uuid.UUID `json:"teacher_id" gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Account link; grade rows record the teacher profile, not the raw user
	TeacherUserID uuid.UUID `json:"teacher_user_id" gorm:"column:teacher_user_id;type:uuid;not null;uniqueIndex:uq_teachers_user"`

	TeacherFullName string `json:"teacher_full_name" gorm:"column:teacher_full_name;type:varchar(160);not null"`

	// Timestamps
	TeacherCreatedAt time.Time      `json:"teacher_created_at" gorm:"column:teacher_created_at;type:timestamptz;not null;autoCreateTime"`
	TeacherUpdatedAt time.Time      `json:"teacher_updated_at" gorm:"column:teacher_updated_at;type:timestamptz;not null;autoUpdateTime"`
	TeacherDeletedAt gorm.DeletedAt `json:"teacher_deleted_at,omitempty" gorm:"column:teacher_deleted_at;type:timestamptz;index"`
}

func (TeacherModel) TableName() string { return "teachers" }
