// file: internals/features/academics/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	// PK
	CourseID uuid.UUID `json:"course_id" gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey"`

	CourseName        string  `json:"course_name" gorm:"column:course_name;type:varchar(160);not null;uniqueIndex:uq_courses_name"`
	CourseDescription *string `json:"course_description,omitempty" gorm:"column:course_description;type:text"`

	// Levels ordered by position; the first level carries the tuition base price
	CourseLevels []LevelModel `json:"course_levels,omitempty" gorm:"foreignKey:LevelCourseID;references:CourseID"`

	// Timestamps
	CourseCreatedAt time.Time      `json:"course_created_at" gorm:"column:course_created_at;type:timestamptz;not null;autoCreateTime"`
	CourseUpdatedAt time.Time      `json:"course_updated_at" gorm:"column:course_updated_at;type:timestamptz;not null;autoUpdateTime"`
	CourseDeletedAt gorm.DeletedAt `json:"course_deleted_at,omitempty" gorm:"column:course_deleted_at;type:timestamptz;index"`
}

func (CourseModel) TableName() string { return "courses" }

// FirstLevel returns the lowest-position level, nil when the course has none.
func (c *CourseModel) FirstLevel() *LevelModel {
	if len(c.CourseLevels) == 0 {
		return nil
	}
	first := &c.CourseLevels[0]
	for i := range c.CourseLevels {
		if c.CourseLevels[i].LevelPosition < first.LevelPosition {
			first = &c.CourseLevels[i]
		}
	}
	return first
}
