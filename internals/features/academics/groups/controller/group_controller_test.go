// file: internals/features/academics/groups/controller/group_controller_test.go
package controller

import (
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
	groupModel "academia_backend/internals/features/academics/groups/model"
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
	))
	return db
}

func seedGroup(t *testing.T, db *gorm.DB, status groupModel.GroupStatus) groupModel.GroupModel {
	t.Helper()
	g := groupModel.GroupModel{
		CourseGroupID:        uuid.New(),
		CourseGroupCode:      "GRP-TEST-" + uuid.NewString()[:8],
		CourseGroupStatus:    status,
		CourseGroupStartDate: time.Now(),
		CourseGroupLevelID:   uuid.New(),
	}
	require.NoError(t, db.Create(&g).Error)
	t.Cleanup(func() {
		db.Unscoped().Where("enrollment_group_id = ?", g.CourseGroupID).Delete(&enrollmentModel.EnrollmentModel{})
		db.Unscoped().Delete(&g)
	})
	return g
}

func seedEnrollment(t *testing.T, db *gorm.DB, groupID uuid.UUID, status enrollmentModel.EnrollmentStatus) enrollmentModel.EnrollmentModel {
	t.Helper()
	e := enrollmentModel.EnrollmentModel{
		EnrollmentID:          uuid.New(),
		EnrollmentStudentID:   uuid.New(),
		EnrollmentGroupID:     groupID,
		EnrollmentStatus:      status,
		EnrollmentDate:        time.Now(),
		EnrollmentAgreedPrice: 450,
	}
	require.NoError(t, db.Create(&e).Error)
	return e
}

func closeGroup(t *testing.T, db *gorm.DB, groupID uuid.UUID) int {
	t.Helper()
	app := fiber.New()
	ctl := NewGroupController(db)
	app.Post("/groups/:id/close", ctl.Close)

	req := httptest.NewRequest("POST", "/groups/"+groupID.String()+"/close", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestClose_CascadesEnrollmentsAtomically(t *testing.T) {
	db := testDB(t)
	g := seedGroup(t, db, groupModel.GroupStatusGradesSubmitted)
	e1 := seedEnrollment(t, db, g.CourseGroupID, enrollmentModel.EnrollmentStatusActive)
	e2 := seedEnrollment(t, db, g.CourseGroupID, enrollmentModel.EnrollmentStatusActive)
	withdrawn := seedEnrollment(t, db, g.CourseGroupID, enrollmentModel.EnrollmentStatusWithdrawn)

	require.Equal(t, fiber.StatusOK, closeGroup(t, db, g.CourseGroupID))

	var got groupModel.GroupModel
	require.NoError(t, db.First(&got, "course_group_id = ?", g.CourseGroupID).Error)
	assert.Equal(t, groupModel.GroupStatusCompleted, got.CourseGroupStatus)

	for _, id := range []uuid.UUID{e1.EnrollmentID, e2.EnrollmentID} {
		var e enrollmentModel.EnrollmentModel
		require.NoError(t, db.First(&e, "enrollment_id = ?", id).Error)
		assert.Equal(t, enrollmentModel.EnrollmentStatusCompleted, e.EnrollmentStatus)
	}

	// Withdrawn enrollments are outside the cascade
	var w enrollmentModel.EnrollmentModel
	require.NoError(t, db.First(&w, "enrollment_id = ?", withdrawn.EnrollmentID).Error)
	assert.Equal(t, enrollmentModel.EnrollmentStatusWithdrawn, w.EnrollmentStatus)
}

func TestClose_RefusesActiveGroup(t *testing.T) {
	db := testDB(t)
	g := seedGroup(t, db, groupModel.GroupStatusActive)
	e := seedEnrollment(t, db, g.CourseGroupID, enrollmentModel.EnrollmentStatusActive)

	assert.Equal(t, fiber.StatusConflict, closeGroup(t, db, g.CourseGroupID))

	var got groupModel.GroupModel
	require.NoError(t, db.First(&got, "course_group_id = ?", g.CourseGroupID).Error)
	assert.Equal(t, groupModel.GroupStatusActive, got.CourseGroupStatus)

	var e1 enrollmentModel.EnrollmentModel
	require.NoError(t, db.First(&e1, "enrollment_id = ?", e.EnrollmentID).Error)
	assert.Equal(t, enrollmentModel.EnrollmentStatusActive, e1.EnrollmentStatus)
}
