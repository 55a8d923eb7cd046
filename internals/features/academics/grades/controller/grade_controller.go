// file: internals/features/academics/grades/controller/grade_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentModel "academia_backend/internals/features/academics/enrollments/model"
	gradeDTO "academia_backend/internals/features/academics/grades/dto"
	gradeModel "academia_backend/internals/features/academics/grades/model"
	gradeService "academia_backend/internals/features/academics/grades/service"
	groupModel "academia_backend/internals/features/academics/groups/model"
	teacherService "academia_backend/internals/features/people/teachers/service"
	settingsService "academia_backend/internals/features/system/settings/service"
	helper "academia_backend/internals/helpers"
	helperAuth "academia_backend/internals/helpers/auth"
)

type GradeController struct {
	DB *gorm.DB
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db}
}

/*
=========================================================

	SAVE (BATCH UPSERT)
	POST /api/a/enrollments/:id/grades
	One row per (enrollment, competency); re-submitting a
	competency overwrites its previous row.

=========================================================
*/
func (h *GradeController) SaveGrades(c *fiber.Ctx) error {
	enrollmentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req gradeDTO.SubmitGradesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ValidateRanges(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var enr enrollmentModel.EnrollmentModel
	if err := h.DB.WithContext(c.Context()).
		First(&enr, "enrollment_id = ?", enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load enrollment")
	}

	var g groupModel.GroupModel
	if err := h.DB.WithContext(c.Context()).
		First(&g, "course_group_id = ?", enr.EnrollmentGroupID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load group")
	}

	isAdmin := helperAuth.IsAdmin(c)
	gradesOpen := settingsService.GradesOpen(h.DB.WithContext(c.Context()))
	if err := gradeService.CheckWritable(gradesOpen, g.CourseGroupStatus, isAdmin); err != nil {
		switch {
		case errors.Is(err, gradeService.ErrGradingClosed):
			return fiber.NewError(fiber.StatusForbidden, "Grading period is closed")
		case errors.Is(err, gradeService.ErrGroupFinalized):
			return fiber.NewError(fiber.StatusForbidden, "Group is finalized, grades can no longer be edited")
		default:
			return fiber.NewError(fiber.StatusForbidden, err.Error())
		}
	}

	// Best-effort author stamp; a caller without a teacher profile
	// (e.g. an admin account) just leaves the column NULL.
	var recordedBy *uuid.UUID
	if userID, err := helperAuth.GetUserID(c); err == nil {
		recordedBy, err = teacherService.TeacherIDByUserID(h.DB.WithContext(c.Context()), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve teacher profile")
		}
		if recordedBy == nil {
			log.Printf("[WARN] saveGrades: no teacher profile for user %s, grade_recorded_by will be NULL", userID)
		}
	}

	// Unknown competency types are skipped, never rejected.
	items := make([]gradeDTO.GradeItemRequest, 0, len(req.Grades))
	for _, it := range req.Grades {
		if !gradeModel.IsValidEvaluationType(it.Type) {
			log.Printf("[WARN] saveGrades: skipping unknown evaluation type %q for enrollment %s", it.Type, enrollmentID)
			continue
		}
		items = append(items, it)
	}
	if len(items) == 0 {
		return helper.Success(c, "No recognized evaluation types in payload", []gradeDTO.GradeResponse{})
	}

	now := time.Now()
	saved := make([]gradeModel.GradeModel, 0, len(items))
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		for _, it := range items {
			final := gradeService.FinalScore(it.ProgressTest.Ptr(), it.ClassPerformance.Ptr(), it.Score.Ptr())

			var row gradeModel.GradeModel
			err := tx.First(&row,
				"grade_enrollment_id = ? AND grade_evaluation_type = ?",
				enrollmentID, it.Type).Error
			switch {
			case err == nil:
				row.GradeProgressTest = it.ProgressTest.Ptr()
				row.GradeClassPerformance = it.ClassPerformance.Ptr()
				row.GradeValue = final
				row.GradeComments = it.Comments
				row.GradeRecordedBy = recordedBy
				if err := tx.Save(&row).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Failed to update grade")
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				row = gradeModel.GradeModel{
					GradeEnrollmentID:     enrollmentID,
					GradeEvaluationType:   it.Type,
					GradeProgressTest:     it.ProgressTest.Ptr(),
					GradeClassPerformance: it.ClassPerformance.Ptr(),
					GradeValue:            final,
					GradeMax:              100,
					GradeComments:         it.Comments,
					GradeRecordedBy:       recordedBy,
					GradeEvaluationDate:   now,
				}
				if err := tx.Create(&row).Error; err != nil {
					if helper.IsUniqueViolation(err) {
						return fiber.NewError(fiber.StatusConflict, "Grade was created concurrently, retry the submission")
					}
					return fiber.NewError(fiber.StatusInternalServerError, "Failed to create grade")
				}
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to look up grade")
			}

			saved = append(saved, row)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Grades saved", gradeDTO.FromModels(saved))
}

/*
=========================================================

	LIST
	GET /api/a/enrollments/:id/grades

=========================================================
*/
func (h *GradeController) ListByEnrollment(c *fiber.Ctx) error {
	enrollmentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	grades, err := h.loadGrades(c, enrollmentID)
	if err != nil {
		return err
	}

	return helper.Success(c, "OK", gradeDTO.FromModels(grades))
}

/*
=========================================================

	REPORT CARD
	GET /api/a/enrollments/:id/report-card
	Returns both averages; they intentionally differ when
	fewer than six competencies are recorded.

=========================================================
*/
func (h *GradeController) ReportCard(c *fiber.Ctx) error {
	enrollmentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	grades, err := h.loadGrades(c, enrollmentID)
	if err != nil {
		return err
	}

	avgReport := gradeService.AverageReportCard(grades)
	return helper.Success(c, "OK", gradeDTO.ReportCardResponse{
		EnrollmentID:         enrollmentID,
		Grades:               gradeDTO.FromModels(grades),
		AverageReportCard:    avgReport,
		AverageOfficialActa:  gradeService.AverageOfficialActa(grades),
		Passed:               gradeService.Passed(avgReport),
		CompetenciesRecorded: len(grades),
	})
}

func (h *GradeController) loadGrades(c *fiber.Ctx, enrollmentID uuid.UUID) ([]gradeModel.GradeModel, error) {
	var cnt int64
	if err := h.DB.WithContext(c.Context()).
		Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_id = ?", enrollmentID).
		Count(&cnt).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check enrollment")
	}
	if cnt == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
	}

	var grades []gradeModel.GradeModel
	if err := h.DB.WithContext(c.Context()).
		Where("grade_enrollment_id = ?", enrollmentID).
		Order("grade_evaluation_type ASC").
		Find(&grades).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load grades")
	}
	return grades, nil
}
