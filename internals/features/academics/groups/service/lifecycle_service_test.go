package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	model "academia_backend/internals/features/academics/groups/model"
)

func TestCanSubmitGrades(t *testing.T) {
	assert.NoError(t, CanSubmitGrades(model.GroupStatusActive))

	err := CanSubmitGrades(model.GroupStatusGradesSubmitted)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	err = CanSubmitGrades(model.GroupStatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCanClose(t *testing.T) {
	assert.NoError(t, CanClose(model.GroupStatusGradesSubmitted))

	// closing requires grades to be submitted first, even for admins
	err := CanClose(model.GroupStatusActive)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// terminal state stays terminal
	err = CanClose(model.GroupStatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestIsFinalized(t *testing.T) {
	assert.False(t, model.GroupModel{CourseGroupStatus: model.GroupStatusActive}.IsFinalized())
	assert.True(t, model.GroupModel{CourseGroupStatus: model.GroupStatusGradesSubmitted}.IsFinalized())
	assert.True(t, model.GroupModel{CourseGroupStatus: model.GroupStatusCompleted}.IsFinalized())
}
