// file: internals/features/academics/groups/dto/group_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "academia_backend/internals/features/academics/groups/model"
)

/* ===================== REQUESTS ===================== */

type CreateGroupRequest struct {
	CourseGroupLevelID      uuid.UUID  `json:"course_group_level_id" validate:"required"`
	CourseGroupCode         *string    `json:"course_group_code" validate:"omitempty,max=40"`
	CourseGroupStartDate    string     `json:"course_group_start_date" validate:"required,datetime=2006-01-02"`
	CourseGroupTeacherID    *uuid.UUID `json:"course_group_teacher_id" validate:"omitempty"`
	CourseGroupScheduleDays []string   `json:"course_group_schedule_days" validate:"omitempty,dive,oneof=MON TUE WED THU FRI SAT SUN"`
}

func (r CreateGroupRequest) ToModel() *model.GroupModel {
	start, _ := time.Parse("2006-01-02", r.CourseGroupStartDate)
	m := &model.GroupModel{
		CourseGroupLevelID:   r.CourseGroupLevelID,
		CourseGroupStatus:    model.GroupStatusActive,
		CourseGroupStartDate: start,
		CourseGroupTeacherID: r.CourseGroupTeacherID,
	}
	if r.CourseGroupCode != nil && strings.TrimSpace(*r.CourseGroupCode) != "" {
		m.CourseGroupCode = strings.TrimSpace(*r.CourseGroupCode)
	}
	if len(r.CourseGroupScheduleDays) > 0 {
		m.CourseGroupScheduleDays = pq.StringArray(r.CourseGroupScheduleDays)
	}
	return m
}

type AssignTeacherRequest struct {
	CourseGroupTeacherID uuid.UUID `json:"course_group_teacher_id" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type CloseGroupResponse struct {
	CourseGroupID        uuid.UUID `json:"course_group_id"`
	CourseGroupStatus    string    `json:"course_group_status"`
	EnrollmentsCompleted int64     `json:"enrollments_completed"`
}
