// file: internals/features/academics/groups/service/lifecycle_service.go
package service

import (
	"errors"
	"fmt"

	model "academia_backend/internals/features/academics/groups/model"
)

// ErrInvalidTransition marks a lifecycle move the state machine does not
// allow. Controllers map it to 409.
var ErrInvalidTransition = errors.New("invalid group status transition")

// CanSubmitGrades checks the ACTIVE → GRADES_SUBMITTED move.
func CanSubmitGrades(status model.GroupStatus) error {
	if status != model.GroupStatusActive {
		return fmt.Errorf("%w: submit-grades requires ACTIVE, group is %s", ErrInvalidTransition, status)
	}
	return nil
}

// CanClose checks the GRADES_SUBMITTED → COMPLETED move. Closing straight
// from ACTIVE is not allowed even for admins; grades have to be submitted
// first.
func CanClose(status model.GroupStatus) error {
	if status != model.GroupStatusGradesSubmitted {
		return fmt.Errorf("%w: close requires GRADES_SUBMITTED, group is %s", ErrInvalidTransition, status)
	}
	return nil
}
