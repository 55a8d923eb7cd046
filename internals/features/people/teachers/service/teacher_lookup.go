// file: internals/features/people/teachers/service/teacher_lookup.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	teacherModel "academia_backend/internals/features/people/teachers/model"
)

// TeacherIDByUserID resolves the teacher profile for an account. Returns
// (nil, nil) when the user has no teacher profile — callers treat that as a
// warning, not a failure (grades are then recorded without recorded_by).
func TeacherIDByUserID(db *gorm.DB, userID uuid.UUID) (*uuid.UUID, error) {
	var t teacherModel.TeacherModel
	err := db.Select("teacher_id").
		First(&t, "teacher_user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	id := t.TeacherID
	return &id, nil
}
