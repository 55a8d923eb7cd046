// file: internals/features/academics/grades/model/grade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM grade_evaluation_type ----------------------------------------------
// The six fixed competencies a course grades. The set is closed; payload
// items with any other type are skipped, not rejected.
type EvaluationType string

const (
	EvaluationSpeaking   EvaluationType = "SPEAKING"
	EvaluationListening  EvaluationType = "LISTENING"
	EvaluationReading    EvaluationType = "READING"
	EvaluationWriting    EvaluationType = "WRITING"
	EvaluationVocabulary EvaluationType = "VOCABULARY"
	EvaluationGrammar    EvaluationType = "GRAMMAR"
)

// FixedCompetencies in report order.
var FixedCompetencies = []EvaluationType{
	EvaluationSpeaking,
	EvaluationListening,
	EvaluationReading,
	EvaluationWriting,
	EvaluationVocabulary,
	EvaluationGrammar,
}

func IsValidEvaluationType(t EvaluationType) bool {
	for _, ft := range FixedCompetencies {
		if ft == t {
			return true
		}
	}
	return false
}

// --- MODEL grades ------------------------------------------------------------
// At most one row per (enrollment, evaluation_type); the batch upsert in the
// grade controller relies on uq_grades_enrollment_type.
type GradeModel struct {
	// PK
	GradeID uuid.UUID `json:"grade_id" gorm:"column:grade_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK ke enrollments(enrollment_id)
	GradeEnrollmentID uuid.UUID `json:"grade_enrollment_id" gorm:"column:grade_enrollment_id;type:uuid;not null;index:idx_grades_enrollment;uniqueIndex:uq_grades_enrollment_type,priority:1"`

	GradeEvaluationType EvaluationType `json:"grade_evaluation_type" gorm:"column:grade_evaluation_type;type:varchar(20);not null;uniqueIndex:uq_grades_enrollment_type,priority:2"`

	// Sub-scores are optional; grade_value is derived or manual (see service)
	GradeProgressTest     *float64 `json:"grade_progress_test,omitempty" gorm:"column:grade_progress_test;type:numeric(5,2)"`
	GradeClassPerformance *float64 `json:"grade_class_performance,omitempty" gorm:"column:grade_class_performance;type:numeric(5,2)"`
	GradeValue            float64  `json:"grade_value" gorm:"column:grade_value;type:numeric(5,2);not null"`
	GradeMax              float64  `json:"grade_max" gorm:"column:grade_max;type:numeric(5,2);not null;default:100"`

	GradeComments *string `json:"grade_comments,omitempty" gorm:"column:grade_comments;type:text"`

	// Teacher profile that recorded the last write, nullable
	GradeRecordedBy *uuid.UUID `json:"grade_recorded_by,omitempty" gorm:"column:grade_recorded_by;type:uuid"`

	GradeEvaluationDate time.Time `json:"grade_evaluation_date" gorm:"column:grade_evaluation_date;type:timestamptz;not null"`

	// Timestamps
	GradeCreatedAt time.Time      `json:"grade_created_at" gorm:"column:grade_created_at;type:timestamptz;not null;autoCreateTime"`
	GradeUpdatedAt time.Time      `json:"grade_updated_at" gorm:"column:grade_updated_at;type:timestamptz;not null;autoUpdateTime"`
	GradeDeletedAt gorm.DeletedAt `json:"grade_deleted_at,omitempty" gorm:"column:grade_deleted_at;type:timestamptz;index"`
}

func (GradeModel) TableName() string { return "grades" }
