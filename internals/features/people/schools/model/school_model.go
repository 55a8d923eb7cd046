// file: internals/features/people/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolModel is a partner school a student may originate from. Discount
// agreements hang off it (see pricing/agreements).
type SchoolModel struct {
	// PK
	SchoolID uuid.UUID `json:"school_id" gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey"`

	SchoolName string  `json:"school_name" gorm:"column:school_name;type:varchar(160);not null;uniqueIndex:uq_schools_name"`
	SchoolCity *string `json:"school_city,omitempty" gorm:"column:school_city;type:varchar(120)"`

	// Timestamps
	SchoolCreatedAt time.Time      `json:"school_created_at" gorm:"column:school_created_at;type:timestamptz;not null;autoCreateTime"`
	SchoolUpdatedAt time.Time      `json:"school_updated_at" gorm:"column:school_updated_at;type:timestamptz;not null;autoUpdateTime"`
	SchoolDeletedAt gorm.DeletedAt `json:"school_deleted_at,omitempty" gorm:"column:school_deleted_at;type:timestamptz;index"`
}

func (SchoolModel) TableName() string { return "schools" }
