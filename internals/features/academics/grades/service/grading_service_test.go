// file: internals/features/academics/grades/service/grading_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	gradeModel "academia_backend/internals/features/academics/grades/model"
	groupModel "academia_backend/internals/features/academics/groups/model"
)

func f(v float64) *float64 { return &v }

func TestFinalScore(t *testing.T) {
	tests := []struct {
		name             string
		progressTest     *float64
		classPerformance *float64
		score            *float64
		want             float64
	}{
		{"both sub-scores averaged", f(80), f(60), nil, 70},
		{"both sub-scores ignore manual score", f(80), f(60), f(99), 70},
		{"only progress test falls back to score", f(80), nil, f(42), 42},
		{"only class performance falls back to score", nil, f(60), f(42), 42},
		{"manual score alone", nil, nil, f(55.5), 55.5},
		{"nothing sent is zero", nil, nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FinalScore(tt.progressTest, tt.classPerformance, tt.score)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPassedBoundary(t *testing.T) {
	assert.False(t, Passed(50.999))
	assert.True(t, Passed(51))
	assert.True(t, Passed(51.001))
	assert.False(t, Passed(0))
	assert.True(t, Passed(100))
}

func gradesWithValues(values ...float64) []gradeModel.GradeModel {
	out := make([]gradeModel.GradeModel, 0, len(values))
	for i, v := range values {
		out = append(out, gradeModel.GradeModel{
			GradeEvaluationType: gradeModel.FixedCompetencies[i%len(gradeModel.FixedCompetencies)],
			GradeValue:          v,
		})
	}
	return out
}

func TestAverageReportCardDividesBySix(t *testing.T) {
	// Three competencies present; the missing three count as zero.
	grades := gradesWithValues(60, 60, 60)
	assert.InDelta(t, 30, AverageReportCard(grades), 1e-9)

	full := gradesWithValues(60, 60, 60, 60, 60, 60)
	assert.InDelta(t, 60, AverageReportCard(full), 1e-9)

	assert.Equal(t, 0.0, AverageReportCard(nil))
}

func TestAverageOfficialActaDividesByCount(t *testing.T) {
	grades := gradesWithValues(60, 60, 60)
	assert.InDelta(t, 60, AverageOfficialActa(grades), 1e-9)

	assert.Equal(t, 0.0, AverageOfficialActa(nil))
}

func TestAveragingConventionsDiverge(t *testing.T) {
	// The same partial ledger prints differently on the report card and
	// the official acta; both figures are load-bearing downstream.
	grades := gradesWithValues(90, 90)
	assert.InDelta(t, 30, AverageReportCard(grades), 1e-9)
	assert.InDelta(t, 90, AverageOfficialActa(grades), 1e-9)
}

func TestCheckWritable(t *testing.T) {
	tests := []struct {
		name       string
		gradesOpen bool
		status     groupModel.GroupStatus
		isAdmin    bool
		wantErr    error
	}{
		{"open active non-admin ok", true, groupModel.GroupStatusActive, false, nil},
		{"closed blocks non-admin", false, groupModel.GroupStatusActive, false, ErrGradingClosed},
		{"closed bypassed by admin", false, groupModel.GroupStatusActive, true, nil},
		{"submitted blocks non-admin", true, groupModel.GroupStatusGradesSubmitted, false, ErrGroupFinalized},
		{"completed blocks non-admin", true, groupModel.GroupStatusCompleted, false, ErrGroupFinalized},
		{"submitted bypassed by admin", true, groupModel.GroupStatusGradesSubmitted, true, nil},
		{"completed bypassed by admin", false, groupModel.GroupStatusCompleted, true, nil},
		{"closed reported before lock", false, groupModel.GroupStatusCompleted, false, ErrGradingClosed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckWritable(tt.gradesOpen, tt.status, tt.isAdmin)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsValidEvaluationType(t *testing.T) {
	for _, ft := range gradeModel.FixedCompetencies {
		assert.True(t, gradeModel.IsValidEvaluationType(ft))
	}
	assert.False(t, gradeModel.IsValidEvaluationType("PRONUNCIATION"))
	assert.False(t, gradeModel.IsValidEvaluationType("speaking"))
	assert.False(t, gradeModel.IsValidEvaluationType(""))
}
