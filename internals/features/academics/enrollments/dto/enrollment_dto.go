// file: internals/features/academics/enrollments/dto/enrollment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	enrollmentModel "academia_backend/internals/features/academics/enrollments/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreateEnrollmentRequest struct {
	EnrollmentStudentID uuid.UUID `json:"enrollment_student_id" validate:"required"`
	EnrollmentGroupID   uuid.UUID `json:"enrollment_group_id" validate:"required"`

	// Optional; defaults to now. Format: 2006-01-02
	EnrollmentDate *string `json:"enrollment_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateEnrollmentRequest) ParsedDate(now time.Time) time.Time {
	if r.EnrollmentDate == nil {
		return now
	}
	t, err := time.Parse("2006-01-02", *r.EnrollmentDate)
	if err != nil {
		return now
	}
	return t
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type EnrollmentResponse struct {
	EnrollmentID             uuid.UUID                        `json:"enrollment_id"`
	EnrollmentStudentID      uuid.UUID                        `json:"enrollment_student_id"`
	EnrollmentGroupID        uuid.UUID                        `json:"enrollment_group_id"`
	EnrollmentStatus         enrollmentModel.EnrollmentStatus `json:"enrollment_status"`
	EnrollmentDate           time.Time                        `json:"enrollment_date"`
	EnrollmentAgreedPrice    float64                          `json:"enrollment_agreed_price"`
	EnrollmentPriceBreakdown map[string]interface{}           `json:"enrollment_price_breakdown,omitempty"`
	EnrollmentCreatedAt      time.Time                        `json:"enrollment_created_at"`
}

func FromModel(m *enrollmentModel.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:             m.EnrollmentID,
		EnrollmentStudentID:      m.EnrollmentStudentID,
		EnrollmentGroupID:        m.EnrollmentGroupID,
		EnrollmentStatus:         m.EnrollmentStatus,
		EnrollmentDate:           m.EnrollmentDate,
		EnrollmentAgreedPrice:    m.EnrollmentAgreedPrice,
		EnrollmentPriceBreakdown: m.EnrollmentPriceBreakdown,
		EnrollmentCreatedAt:      m.EnrollmentCreatedAt,
	}
}

func FromModels(ms []enrollmentModel.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
