// file: internals/features/academics/promotion/dto/promotion_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type AutoPromoteRequest struct {
	TargetCourseID uuid.UUID   `json:"target_course_id" validate:"required"`
	StartDate      string      `json:"start_date" validate:"required,datetime=2006-01-02"`
	StudentIDs     []uuid.UUID `json:"student_ids" validate:"required,min=1"`
}

func (r *AutoPromoteRequest) ParsedStartDate() time.Time {
	t, _ := time.Parse("2006-01-02", r.StartDate)
	return t
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type CandidateResponse struct {
	EnrollmentID uuid.UUID `json:"enrollment_id"`
	StudentID    uuid.UUID `json:"student_id"`
	StudentName  string    `json:"student_name"`
	GroupID      uuid.UUID `json:"group_id"`
	GroupCode    string    `json:"group_code"`
	Average      float64   `json:"average"`
}

type AutoPromoteResponse struct {
	CourseGroupID      uuid.UUID   `json:"course_group_id"`
	CourseGroupCode    string      `json:"course_group_code"`
	CourseGroupLevelID uuid.UUID   `json:"course_group_level_id"`
	EnrollmentIDs      []uuid.UUID `json:"enrollment_ids"`
	PromotedCount      int         `json:"promoted_count"`
}
