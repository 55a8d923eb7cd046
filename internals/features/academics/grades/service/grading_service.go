// file: internals/features/academics/grades/service/grading_service.go
package service

import (
	"errors"

	groupModel "academia_backend/internals/features/academics/groups/model"
	gradeModel "academia_backend/internals/features/academics/grades/model"
)

// PassMark is the minimum grade_value counted as a pass.
const PassMark = 51.0

var (
	ErrGradingClosed  = errors.New("grading period is closed")
	ErrGroupFinalized = errors.New("group is finalized")
)

/* =========================================================
   SCORE DERIVATION
========================================================= */

// FinalScore derives grade_value from the sub-scores:
//   - both present  -> (progressTest + classPerformance) / 2
//   - else          -> manual score, or 0 when nothing was sent
func FinalScore(progressTest, classPerformance, score *float64) float64 {
	if progressTest != nil && classPerformance != nil {
		return (*progressTest + *classPerformance) / 2
	}
	if score != nil {
		return *score
	}
	return 0
}

// Passed reports whether a final value meets the pass mark.
func Passed(value float64) bool { return value >= PassMark }

/* =========================================================
   AVERAGING
   Two conventions live side by side on purpose:
   - report card  : sum / 6, absent competencies count as 0
   - official acta: sum / number of rows actually present
========================================================= */

func AverageReportCard(grades []gradeModel.GradeModel) float64 {
	var sum float64
	for _, g := range grades {
		sum += g.GradeValue
	}
	return sum / float64(len(gradeModel.FixedCompetencies))
}

func AverageOfficialActa(grades []gradeModel.GradeModel) float64 {
	if len(grades) == 0 {
		return 0
	}
	var sum float64
	for _, g := range grades {
		sum += g.GradeValue
	}
	return sum / float64(len(grades))
}

/* =========================================================
   WRITE PRECONDITIONS
========================================================= */

// CheckWritable decides whether grades may be written right now.
// Admins bypass both the GRADES_OPEN switch and the group lock.
func CheckWritable(gradesOpen bool, status groupModel.GroupStatus, isAdmin bool) error {
	if isAdmin {
		return nil
	}
	if !gradesOpen {
		return ErrGradingClosed
	}
	if status != groupModel.GroupStatusActive {
		return ErrGroupFinalized
	}
	return nil
}
