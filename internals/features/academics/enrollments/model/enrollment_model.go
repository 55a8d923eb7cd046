// file: internals/features/academics/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// --- ENUM enrollment_status --------------------------------------------------
type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "ACTIVE"
	EnrollmentStatusCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentStatusWithdrawn EnrollmentStatus = "WITHDRAWN"
)

// --- MODEL enrollments -------------------------------------------------------
// Enrollment joins a student to one group. The agreed price is a historical
// fact captured at creation; no update path in this codebase touches it.
type EnrollmentModel struct {
	// PK
	EnrollmentID uuid.UUID `json:"enrollment_id" gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK ke students(student_id) / course_groups(course_group_id)
	EnrollmentStudentID uuid.UUID `json:"enrollment_student_id" gorm:"column:enrollment_student_id;type:uuid;not null;index:idx_enrollments_student;uniqueIndex:uq_enrollments_student_group,priority:1"`
	EnrollmentGroupID   uuid.UUID `json:"enrollment_group_id" gorm:"column:enrollment_group_id;type:uuid;not null;index:idx_enrollments_group;uniqueIndex:uq_enrollments_student_group,priority:2"`

	EnrollmentStatus EnrollmentStatus `json:"enrollment_status" gorm:"column:enrollment_status;type:varchar(20);not null;default:'ACTIVE';index:idx_enrollments_status"`

	EnrollmentDate time.Time `json:"enrollment_date" gorm:"column:enrollment_date;type:timestamptz;not null"`

	// Snapshot taken by the pricing engine at creation, immutable afterwards
	EnrollmentAgreedPrice    float64           `json:"enrollment_agreed_price" gorm:"column:enrollment_agreed_price;type:numeric(10,2);not null"`
	EnrollmentPriceBreakdown datatypes.JSONMap `json:"enrollment_price_breakdown,omitempty" gorm:"column:enrollment_price_breakdown;type:jsonb"`

	// Timestamps
	EnrollmentCreatedAt time.Time      `json:"enrollment_created_at" gorm:"column:enrollment_created_at;type:timestamptz;not null;autoCreateTime"`
	EnrollmentUpdatedAt time.Time      `json:"enrollment_updated_at" gorm:"column:enrollment_updated_at;type:timestamptz;not null;autoUpdateTime"`
	EnrollmentDeletedAt gorm.DeletedAt `json:"enrollment_deleted_at,omitempty" gorm:"column:enrollment_deleted_at;type:timestamptz;index"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }
