// file: internals/features/academics/promotion/controller/promotion_controller_test.go
package controller

import (
	"bytes"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	courseModel "academia_backend/internals/features/academics/courses/model"
	enrollmentModel "academia_backend/internals/features/academics/enrollments/model"
	groupModel "academia_backend/internals/features/academics/groups/model"
	studentModel "academia_backend/internals/features/people/students/model"
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
		&courseModel.CourseModel{},
		&courseModel.LevelModel{},
		&groupModel.GroupModel{},
		&enrollmentModel.EnrollmentModel{},
		&studentModel.StudentModel{},
	))
	return db
}

func seedCourseWithLevel(t *testing.T, db *gorm.DB) (courseModel.CourseModel, courseModel.LevelModel) {
	t.Helper()
	c := courseModel.CourseModel{
		CourseID:   uuid.New(),
		CourseName: "Inglés Intermedio " + uuid.NewString()[:8],
	}
	require.NoError(t, db.Create(&c).Error)

	lvl := courseModel.LevelModel{
		LevelID:        uuid.New(),
		LevelCourseID:  c.CourseID,
		LevelName:      "Nivel 1",
		LevelPosition:  1,
		LevelBasePrice: 450,
	}
	require.NoError(t, db.Create(&lvl).Error)

	t.Cleanup(func() {
		db.Unscoped().Delete(&lvl)
		db.Unscoped().Delete(&c)
	})
	return c, lvl
}

func seedStudent(t *testing.T, db *gorm.DB) studentModel.StudentModel {
	t.Helper()
	s := studentModel.StudentModel{
		StudentID:             uuid.New(),
		StudentFirstName:      "Ana",
		StudentLastName:       "Quispe",
		StudentDocumentNumber: uuid.NewString()[:12],
	}
	require.NoError(t, db.Create(&s).Error)
	t.Cleanup(func() { db.Unscoped().Delete(&s) })
	return s
}

func autoPromote(t *testing.T, db *gorm.DB, body string) int {
	t.Helper()
	app := fiber.New()
	ctl := NewPromotionController(db)
	app.Post("/promotion/auto", ctl.AutoPromote)

	req := httptest.NewRequest("POST", "/promotion/auto", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAutoPromote_CreatesGroupAndPricedEnrollments(t *testing.T) {
	db := testDB(t)
	c, lvl := seedCourseWithLevel(t, db)
	s1 := seedStudent(t, db)
	s2 := seedStudent(t, db)

	t.Cleanup(func() {
		db.Unscoped().Where("enrollment_student_id IN ?", []uuid.UUID{s1.StudentID, s2.StudentID}).
			Delete(&enrollmentModel.EnrollmentModel{})
		db.Unscoped().Where("course_group_level_id = ?", lvl.LevelID).Delete(&groupModel.GroupModel{})
	})

	code := autoPromote(t, db, `{"target_course_id":"`+c.CourseID.String()+
		`","start_date":"2025-03-01","student_ids":["`+s1.StudentID.String()+`","`+s2.StudentID.String()+`"]}`)
	require.Equal(t, fiber.StatusCreated, code)

	var groups []groupModel.GroupModel
	require.NoError(t, db.Where("course_group_level_id = ?", lvl.LevelID).Find(&groups).Error)
	require.Len(t, groups, 1)
	assert.Equal(t, groupModel.GroupStatusActive, groups[0].CourseGroupStatus)

	var enrollments []enrollmentModel.EnrollmentModel
	require.NoError(t, db.Where("enrollment_group_id = ?", groups[0].CourseGroupID).Find(&enrollments).Error)
	require.Len(t, enrollments, 2)
	for _, e := range enrollments {
		assert.Equal(t, enrollmentModel.EnrollmentStatusActive, e.EnrollmentStatus)
		assert.Equal(t, 450.0, e.EnrollmentAgreedPrice)
	}
}

func TestAutoPromote_DuplicateStudentRollsBackEverything(t *testing.T) {
	db := testDB(t)
	c, lvl := seedCourseWithLevel(t, db)
	s := seedStudent(t, db)

	// The same student twice trips the student+group unique constraint on
	// the second insert; nothing may survive, not even the group.
	code := autoPromote(t, db, `{"target_course_id":"`+c.CourseID.String()+
		`","start_date":"2025-03-01","student_ids":["`+s.StudentID.String()+`","`+s.StudentID.String()+`"]}`)
	assert.Equal(t, fiber.StatusBadRequest, code)

	var enrollmentCount int64
	require.NoError(t, db.Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_student_id = ?", s.StudentID).Count(&enrollmentCount).Error)
	assert.Zero(t, enrollmentCount)

	var groupCount int64
	require.NoError(t, db.Model(&groupModel.GroupModel{}).
		Where("course_group_level_id = ?", lvl.LevelID).Count(&groupCount).Error)
	assert.Zero(t, groupCount)
}

func TestAutoPromote_UnknownStudentRollsBackEverything(t *testing.T) {
	db := testDB(t)
	c, lvl := seedCourseWithLevel(t, db)
	s := seedStudent(t, db)

	code := autoPromote(t, db, `{"target_course_id":"`+c.CourseID.String()+
		`","start_date":"2025-03-01","student_ids":["`+s.StudentID.String()+`","`+uuid.NewString()+`"]}`)
	assert.Equal(t, fiber.StatusBadRequest, code)

	var enrollmentCount int64
	require.NoError(t, db.Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_student_id = ?", s.StudentID).Count(&enrollmentCount).Error)
	assert.Zero(t, enrollmentCount)

	var groupCount int64
	require.NoError(t, db.Model(&groupModel.GroupModel{}).
		Where("course_group_level_id = ?", lvl.LevelID).Count(&groupCount).Error)
	assert.Zero(t, groupCount)
}
