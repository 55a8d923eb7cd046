// file: internals/features/academics/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	levelModel "academia_backend/internals/features/academics/courses/model"
	enrollmentDTO "academia_backend/internals/features/academics/enrollments/dto"
	enrollmentModel "academia_backend/internals/features/academics/enrollments/model"
	groupModel "academia_backend/internals/features/academics/groups/model"
	studentModel "academia_backend/internals/features/people/students/model"
	agreementModel "academia_backend/internals/features/pricing/agreements/model"
	pricingService "academia_backend/internals/features/pricing/agreements/service"
	helper "academia_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

/*
=========================================================

	CREATE
	POST /api/a/enrollments
	Price is quoted once here and frozen into the row;
	nothing downstream ever recomputes it.

=========================================================
*/
func (h *EnrollmentController) Create(c *fiber.Ctx) error {
	var req enrollmentDTO.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	now := time.Now()
	var m enrollmentModel.EnrollmentModel
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var g groupModel.GroupModel
		if err := tx.First(&g, "course_group_id = ?", req.EnrollmentGroupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Group not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load group")
		}
		if g.IsFinalized() {
			return fiber.NewError(fiber.StatusConflict, "Group no longer accepts enrollments")
		}

		var lvl levelModel.LevelModel
		if err := tx.First(&lvl, "level_id = ?", g.CourseGroupLevelID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load level")
		}

		var st studentModel.StudentModel
		if err := tx.First(&st, "student_id = ?", req.EnrollmentStudentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Student not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
		}

		var agreements []agreementModel.AgreementModel
		if st.StudentSchoolID != nil {
			if err := tx.
				Where("agreement_school_id = ? AND agreement_is_active = TRUE", *st.StudentSchoolID).
				Find(&agreements).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to load agreements")
			}
		}

		quote := pricingService.ComputePrice(&lvl.LevelBasePrice, agreements, now)

		m = enrollmentModel.EnrollmentModel{
			EnrollmentStudentID:      req.EnrollmentStudentID,
			EnrollmentGroupID:        req.EnrollmentGroupID,
			EnrollmentStatus:         enrollmentModel.EnrollmentStatusActive,
			EnrollmentDate:           req.ParsedDate(now),
			EnrollmentAgreedPrice:    quote.Price,
			EnrollmentPriceBreakdown: quote.Breakdown(&lvl.LevelBasePrice),
		}
		if err := tx.Create(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Student is already enrolled in this group")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create enrollment")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Enrollment created", enrollmentDTO.FromModel(&m))
}

/*
=========================================================

	GET / LIST
	GET /api/a/enrollments/:id
	GET /api/a/enrollments?group_id=&student_id=&status=

=========================================================
*/
func (h *EnrollmentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m enrollmentModel.EnrollmentModel
	if err := h.DB.WithContext(c.Context()).
		First(&m, "enrollment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load enrollment")
	}

	return helper.Success(c, "OK", enrollmentDTO.FromModel(&m))
}

func (h *EnrollmentController) List(c *fiber.Ctx) error {
	p := helper.ParsePage(c, helper.DefaultPageOpts)

	tx := h.DB.WithContext(c.Context()).Model(&enrollmentModel.EnrollmentModel{})
	if gid := c.Query("group_id"); gid != "" {
		tx = tx.Where("enrollment_group_id = ?", gid)
	}
	if sid := c.Query("student_id"); sid != "" {
		tx = tx.Where("enrollment_student_id = ?", sid)
	}
	if st := c.Query("status"); st != "" {
		tx = tx.Where("enrollment_status = ?", st)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count enrollments")
	}

	var rows []enrollmentModel.EnrollmentModel
	if err := tx.Order("enrollment_created_at DESC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list enrollments")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      enrollmentDTO.FromModels(rows),
		"pagination": p.Meta(total),
	})
}

/*
=========================================================

	WITHDRAW
	POST /api/a/enrollments/:id/withdraw
	Soft terminal state; the row and its grades stay.

=========================================================
*/
func (h *EnrollmentController) Withdraw(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := h.DB.WithContext(c.Context()).
		Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_id = ? AND enrollment_status = ?", id, enrollmentModel.EnrollmentStatusActive).
		Update("enrollment_status", enrollmentModel.EnrollmentStatusWithdrawn)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to withdraw enrollment")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusConflict, "Enrollment is not active")
	}

	return helper.Success(c, "Enrollment withdrawn", nil)
}
