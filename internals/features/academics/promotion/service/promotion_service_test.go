// file: internals/features/academics/promotion/service/promotion_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	enrollmentModel "academia_backend/internals/features/academics/enrollments/model"
	gradeModel "academia_backend/internals/features/academics/grades/model"
)

func fullLedger(value float64) []gradeModel.GradeModel {
	out := make([]gradeModel.GradeModel, 0, len(gradeModel.FixedCompetencies))
	for _, t := range gradeModel.FixedCompetencies {
		out = append(out, gradeModel.GradeModel{GradeEvaluationType: t, GradeValue: value})
	}
	return out
}

func inputWithAverage(avg float64) CandidateInput {
	return CandidateInput{
		Enrollment: enrollmentModel.EnrollmentModel{EnrollmentID: uuid.New()},
		Grades:     fullLedger(avg),
	}
}

func TestApprovedCandidatesKeepsPassing(t *testing.T) {
	inputs := []CandidateInput{
		inputWithAverage(60),
		inputWithAverage(45),
		inputWithAverage(51),
	}

	got := ApprovedCandidates(inputs)

	assert.Len(t, got, 2)
	assert.Equal(t, inputs[0].Enrollment.EnrollmentID, got[0].Enrollment.EnrollmentID)
	assert.Equal(t, inputs[2].Enrollment.EnrollmentID, got[1].Enrollment.EnrollmentID)
	assert.InDelta(t, 60, got[0].Average, 1e-9)
	assert.InDelta(t, 51, got[1].Average, 1e-9)
}

func TestApprovedCandidatesBoundary(t *testing.T) {
	below := inputWithAverage(50.999)
	exact := inputWithAverage(51)

	got := ApprovedCandidates([]CandidateInput{below, exact})

	assert.Len(t, got, 1)
	assert.Equal(t, exact.Enrollment.EnrollmentID, got[0].Enrollment.EnrollmentID)
}

func TestApprovedCandidatesPartialLedgerCountsMissingAsZero(t *testing.T) {
	// Three competencies at 90; report-card average is 45, below the mark.
	partial := CandidateInput{
		Enrollment: enrollmentModel.EnrollmentModel{EnrollmentID: uuid.New()},
		Grades:     fullLedger(90)[:3],
	}

	assert.Empty(t, ApprovedCandidates([]CandidateInput{partial}))
}

func TestApprovedCandidatesEmpty(t *testing.T) {
	assert.Empty(t, ApprovedCandidates(nil))
}
