// file: internals/features/academics/grades/dto/grade_dto.go
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	gradeModel "academia_backend/internals/features/academics/grades/model"
	helper "academia_backend/internals/helpers"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

// GradeItemRequest is one competency entry in a batch submission. The
// numeric fields accept either JSON numbers or numeric strings; legacy
// clients send both shapes.
type GradeItemRequest struct {
	Type             gradeModel.EvaluationType `json:"type" validate:"required"`
	ProgressTest     helper.FlexNumber         `json:"progress_test"`
	ClassPerformance helper.FlexNumber         `json:"class_performance"`
	Score            helper.FlexNumber         `json:"score"`
	Comments         *string                   `json:"comments" validate:"omitempty,max=500"`
}

type SubmitGradesRequest struct {
	Grades []GradeItemRequest `json:"grades" validate:"required,min=1,dive"`
}

// ValidateRanges rejects sub-scores outside [0,100]; validator tags
// cannot see inside FlexNumber so the check lives here.
func (r *SubmitGradesRequest) ValidateRanges() error {
	for i := range r.Grades {
		it := &r.Grades[i]
		for _, pair := range []struct {
			name string
			v    helper.FlexNumber
		}{
			{"progress_test", it.ProgressTest},
			{"class_performance", it.ClassPerformance},
			{"score", it.Score},
		} {
			if pair.v.Set && (pair.v.Value < 0 || pair.v.Value > 100) {
				return fmt.Errorf("grades[%d].%s must be between 0 and 100", i, pair.name)
			}
		}
	}
	return nil
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type GradeResponse struct {
	GradeID               uuid.UUID                 `json:"grade_id"`
	GradeEnrollmentID     uuid.UUID                 `json:"grade_enrollment_id"`
	GradeEvaluationType   gradeModel.EvaluationType `json:"grade_evaluation_type"`
	GradeProgressTest     *float64                  `json:"grade_progress_test,omitempty"`
	GradeClassPerformance *float64                  `json:"grade_class_performance,omitempty"`
	GradeValue            float64                   `json:"grade_value"`
	GradeMax              float64                   `json:"grade_max"`
	GradeComments         *string                   `json:"grade_comments,omitempty"`
	GradeRecordedBy       *uuid.UUID                `json:"grade_recorded_by,omitempty"`
	GradeEvaluationDate   time.Time                 `json:"grade_evaluation_date"`
	GradeUpdatedAt        time.Time                 `json:"grade_updated_at"`
}

func FromModel(m *gradeModel.GradeModel) GradeResponse {
	return GradeResponse{
		GradeID:               m.GradeID,
		GradeEnrollmentID:     m.GradeEnrollmentID,
		GradeEvaluationType:   m.GradeEvaluationType,
		GradeProgressTest:     m.GradeProgressTest,
		GradeClassPerformance: m.GradeClassPerformance,
		GradeValue:            m.GradeValue,
		GradeMax:              m.GradeMax,
		GradeComments:         m.GradeComments,
		GradeRecordedBy:       m.GradeRecordedBy,
		GradeEvaluationDate:   m.GradeEvaluationDate,
		GradeUpdatedAt:        m.GradeUpdatedAt,
	}
}

func FromModels(ms []gradeModel.GradeModel) []GradeResponse {
	out := make([]GradeResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

// ReportCardResponse carries both averaging conventions side by side;
// the report card divides by the six fixed competencies, the official
// acta divides by the rows actually recorded.
type ReportCardResponse struct {
	EnrollmentID         uuid.UUID       `json:"enrollment_id"`
	Grades               []GradeResponse `json:"grades"`
	AverageReportCard    float64         `json:"average_report_card"`
	AverageOfficialActa  float64         `json:"average_official_acta"`
	Passed               bool            `json:"passed"`
	CompetenciesRecorded int             `json:"competencies_recorded"`
}
