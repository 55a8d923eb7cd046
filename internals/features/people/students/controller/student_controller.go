// file: internals/features/people/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentModel "academia_backend/internals/features/people/students/model"
	helper "academia_backend/internals/helpers"
)

// Read-only surface: student intake screens live outside this core, but the
// enrollment and promotion flows need lookups.
type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

/*
=========================================================

	LIST
	GET /api/a/students?q=&school_id=

=========================================================
*/
func (h *StudentController) List(c *fiber.Ctx) error {
	p := helper.ParsePage(c, helper.DefaultPageOpts)

	tx := h.DB.WithContext(c.Context()).Model(&studentModel.StudentModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where(
			"student_first_name ILIKE ? OR student_last_name ILIKE ? OR student_document_number ILIKE ?",
			like, like, like,
		)
	}
	if sid := c.Query("school_id"); sid != "" {
		tx = tx.Where("student_school_id = ?", sid)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count students")
	}

	var students []studentModel.StudentModel
	if err := tx.Order("student_last_name ASC, student_first_name ASC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list students")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      students,
		"pagination": p.Meta(total),
	})
}

/*
=========================================================

	GET BY ID
	GET /api/a/students/:id

=========================================================
*/
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var s studentModel.StudentModel
	if err := h.DB.WithContext(c.Context()).
		First(&s, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
	}

	return helper.Success(c, "OK", s)
}
