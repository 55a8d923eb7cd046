// file: internals/features/academics/promotion/service/promotion_service.go
package service

import (
	enrollmentModel "academia_backend/internals/features/academics/enrollments/model"
	gradeModel "academia_backend/internals/features/academics/grades/model"
	gradeService "academia_backend/internals/features/academics/grades/service"
)

// CandidateInput is one enrollment with its full grade ledger, already
// loaded by the caller.
type CandidateInput struct {
	Enrollment enrollmentModel.EnrollmentModel
	Grades     []gradeModel.GradeModel
}

// Candidate is an enrollment whose report-card average meets the pass mark.
type Candidate struct {
	Enrollment enrollmentModel.EnrollmentModel
	Average    float64
}

// ApprovedCandidates keeps the enrollments that passed. The report-card
// convention (divide by the six fixed competencies) decides promotion;
// the acta average plays no role here.
func ApprovedCandidates(inputs []CandidateInput) []Candidate {
	out := make([]Candidate, 0, len(inputs))
	for _, in := range inputs {
		avg := gradeService.AverageReportCard(in.Grades)
		if !gradeService.Passed(avg) {
			continue
		}
		out = append(out, Candidate{Enrollment: in.Enrollment, Average: avg})
	}
	return out
}
