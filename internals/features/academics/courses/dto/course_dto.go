// file: internals/features/academics/courses/dto/course_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "academia_backend/internals/features/academics/courses/model"
)

/* ===================== REQUESTS ===================== */

type CreateLevelRequest struct {
	LevelName         string     `json:"level_name" validate:"required,max=120"`
	LevelPosition     int        `json:"level_position" validate:"omitempty,min=1"`
	LevelBasePrice    float64    `json:"level_base_price" validate:"required,gte=0"`
	LevelNextCourseID *uuid.UUID `json:"level_next_course_id" validate:"omitempty"`
}

type CreateCourseRequest struct {
	CourseName        string               `json:"course_name" validate:"required,max=160"`
	CourseDescription *string              `json:"course_description" validate:"omitempty"`
	CourseLevels      []CreateLevelRequest `json:"course_levels" validate:"omitempty,dive"`
}

func (r CreateCourseRequest) ToModel() *model.CourseModel {
	m := &model.CourseModel{
		CourseName:        strings.TrimSpace(r.CourseName),
		CourseDescription: r.CourseDescription,
	}
	for i, lv := range r.CourseLevels {
		pos := lv.LevelPosition
		if pos == 0 {
			pos = i + 1
		}
		m.CourseLevels = append(m.CourseLevels, model.LevelModel{
			LevelName:         strings.TrimSpace(lv.LevelName),
			LevelPosition:     pos,
			LevelBasePrice:    lv.LevelBasePrice,
			LevelNextCourseID: lv.LevelNextCourseID,
		})
	}
	return m
}

type AddLevelRequest struct {
	CreateLevelRequest
}

/* ===================== RESPONSES ===================== */

type NextCourseSuggestion struct {
	CourseID   *uuid.UUID `json:"course_id,omitempty"`
	CourseName *string    `json:"course_name,omitempty"`
}
