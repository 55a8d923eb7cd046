// file: internals/features/academics/grades/controller/grade_controller_test.go
package controller

import (
	"bytes"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	enrollmentModel "academia_backend/internals/features/academics/enrollments/model"
	gradeModel "academia_backend/internals/features/academics/grades/model"
	groupModel "academia_backend/internals/features/academics/groups/model"
	settingModel "academia_backend/internals/features/system/settings/model"
)

// Runs only against a real database: set TEST_DATABASE_DSN to a throwaway
// postgres instance.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&groupModel.GroupModel{},
		&enrollmentModel.EnrollmentModel{},
		&gradeModel.GradeModel{},
		&settingModel.SystemSettingModel{},
	))
	return db
}

func seedActiveEnrollment(t *testing.T, db *gorm.DB) enrollmentModel.EnrollmentModel {
	t.Helper()
	g := groupModel.GroupModel{
		CourseGroupID:        uuid.New(),
		CourseGroupCode:      "GRP-TEST-" + uuid.NewString()[:8],
		CourseGroupStatus:    groupModel.GroupStatusActive,
		CourseGroupStartDate: time.Now(),
		CourseGroupLevelID:   uuid.New(),
	}
	require.NoError(t, db.Create(&g).Error)

	e := enrollmentModel.EnrollmentModel{
		EnrollmentID:          uuid.New(),
		EnrollmentStudentID:   uuid.New(),
		EnrollmentGroupID:     g.CourseGroupID,
		EnrollmentStatus:      enrollmentModel.EnrollmentStatusActive,
		EnrollmentDate:        time.Now(),
		EnrollmentAgreedPrice: 450,
	}
	require.NoError(t, db.Create(&e).Error)

	t.Cleanup(func() {
		db.Unscoped().Where("grade_enrollment_id = ?", e.EnrollmentID).Delete(&gradeModel.GradeModel{})
		db.Unscoped().Delete(&e)
		db.Unscoped().Delete(&g)
	})
	return e
}

func gradeApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctl := NewGradeController(db)
	app.Post("/enrollments/:id/grades", ctl.SaveGrades)
	return app
}

func postGrades(t *testing.T, app *fiber.App, enrollmentID uuid.UUID, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/enrollments/"+enrollmentID.String()+"/grades",
		bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestSaveGrades_UpsertIsIdempotent(t *testing.T) {
	db := testDB(t)
	e := seedActiveEnrollment(t, db)
	app := gradeApp(db)

	body := `{"grades":[{"type":"SPEAKING","progress_test":80,"class_performance":60}]}`
	require.Equal(t, fiber.StatusOK, postGrades(t, app, e.EnrollmentID, body))
	require.Equal(t, fiber.StatusOK, postGrades(t, app, e.EnrollmentID, body))

	var rows []gradeModel.GradeModel
	require.NoError(t, db.
		Where("grade_enrollment_id = ? AND grade_evaluation_type = ?", e.EnrollmentID, gradeModel.EvaluationSpeaking).
		Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 70.0, rows[0].GradeValue)
	assert.Equal(t, 100.0, rows[0].GradeMax)
}

func TestSaveGrades_SecondSubmissionWins(t *testing.T) {
	db := testDB(t)
	e := seedActiveEnrollment(t, db)
	app := gradeApp(db)

	require.Equal(t, fiber.StatusOK, postGrades(t, app, e.EnrollmentID,
		`{"grades":[{"type":"READING","progress_test":80,"class_performance":60}]}`))
	require.Equal(t, fiber.StatusOK, postGrades(t, app, e.EnrollmentID,
		`{"grades":[{"type":"READING","score":"42","comments":"recuperatorio"}]}`))

	var row gradeModel.GradeModel
	require.NoError(t, db.
		First(&row, "grade_enrollment_id = ? AND grade_evaluation_type = ?", e.EnrollmentID, gradeModel.EvaluationReading).Error)
	assert.Equal(t, 42.0, row.GradeValue)
	assert.Nil(t, row.GradeProgressTest)
	require.NotNil(t, row.GradeComments)
	assert.Equal(t, "recuperatorio", *row.GradeComments)
}

func TestSaveGrades_FinalizedGroupLeavesRowsUntouched(t *testing.T) {
	db := testDB(t)
	e := seedActiveEnrollment(t, db)
	app := gradeApp(db)

	require.Equal(t, fiber.StatusOK, postGrades(t, app, e.EnrollmentID,
		`{"grades":[{"type":"WRITING","score":90}]}`))

	require.NoError(t, db.Model(&groupModel.GroupModel{}).
		Where("course_group_id = ?", e.EnrollmentGroupID).
		Update("course_group_status", groupModel.GroupStatusGradesSubmitted).Error)

	assert.Equal(t, fiber.StatusForbidden, postGrades(t, app, e.EnrollmentID,
		`{"grades":[{"type":"WRITING","score":10}]}`))

	var row gradeModel.GradeModel
	require.NoError(t, db.
		First(&row, "grade_enrollment_id = ? AND grade_evaluation_type = ?", e.EnrollmentID, gradeModel.EvaluationWriting).Error)
	assert.Equal(t, 90.0, row.GradeValue)
}
