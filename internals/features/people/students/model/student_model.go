// file: internals/features/people/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel lives independently of enrollments: deleting or completing an
// enrollment never touches the student row.
type StudentModel struct {
	// PK
	StudentID uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey"`

	StudentFirstName string `json:"student_first_name" gorm:"column:student_first_name;type:varchar(120);not null"`
	StudentLastName  string `json:"student_last_name" gorm:"column:student_last_name;type:varchar(120);not null;index:idx_students_last_name"`

	// Document number is a legal identifier, set once at intake
	StudentDocumentNumber string `json:"student_document_number" gorm:"column:student_document_number;type:varchar(40);not null;uniqueIndex:uq_students_document"`

	StudentEmail *string `json:"student_email,omitempty" gorm:"column:student_email;type:varchar(160)"`
	StudentPhone *string `json:"student_phone,omitempty" gorm:"column:student_phone;type:varchar(40)"`

	// Origin school (drives agreement discounts), nullable
	StudentSchoolID *uuid.UUID `json:"student_school_id,omitempty" gorm:"column:student_school_id;type:uuid;index:idx_students_school"`

	// Timestamps
	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;type:timestamptz;not null;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;type:timestamptz;not null;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at,omitempty" gorm:"column:student_deleted_at;type:timestamptz;index"`
}

func (StudentModel) TableName() string { return "students" }

func (s StudentModel) FullName() string {
	return s.StudentFirstName + " " + s.StudentLastName
}
