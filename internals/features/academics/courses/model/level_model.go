// file: internals/features/academics/courses/model/level_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LevelModel is one sequential module of a course. The next-course link is
// what the promotion screen suggests as the destination.
type LevelModel struct {
	// PK
	LevelID uuid.UUID `json:"level_id" gorm:"column:level_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK ke courses(course_id)
	LevelCourseID uuid.UUID `json:"level_course_id" gorm:"column:level_course_id;type:uuid;not null;index:idx_levels_course"`

	LevelName     string `json:"level_name" gorm:"column:level_name;type:varchar(120);not null"`
	LevelPosition int    `json:"level_position" gorm:"column:level_position;type:int;not null;default:1"`

	LevelBasePrice float64 `json:"level_base_price" gorm:"column:level_base_price;type:numeric(10,2);not null"`

	// Suggested follow-up course after passing this level's course
	LevelNextCourseID *uuid.UUID `json:"level_next_course_id,omitempty" gorm:"column:level_next_course_id;type:uuid"`

	// Timestamps
	LevelCreatedAt time.Time      `json:"level_created_at" gorm:"column:level_created_at;type:timestamptz;not null;autoCreateTime"`
	LevelUpdatedAt time.Time      `json:"level_updated_at" gorm:"column:level_updated_at;type:timestamptz;not null;autoUpdateTime"`
	LevelDeletedAt gorm.DeletedAt `json:"level_deleted_at,omitempty" gorm:"column:level_deleted_at;type:timestamptz;index"`
}

func (LevelModel) TableName() string { return "levels" }
