// file: internals/features/academics/courses/controller/course_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseDTO "academia_backend/internals/features/academics/courses/dto"
	courseModel "academia_backend/internals/features/academics/courses/model"
	helper "academia_backend/internals/helpers"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

/*
=========================================================

	CREATE
	POST /api/a/courses
	(levels may be created inline)

=========================================================
*/
func (h *CourseController) Create(c *fiber.Ctx) error {
	var req courseDTO.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Course name already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create course")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course created", m)
}

/*
=========================================================

	ADD LEVEL
	POST /api/a/courses/:id/levels

=========================================================
*/
func (h *CourseController) AddLevel(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req courseDTO.AddLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course courseModel.CourseModel
	if err := h.DB.WithContext(c.Context()).
		First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load course")
	}

	pos := req.LevelPosition
	if pos == 0 {
		var maxPos int
		h.DB.WithContext(c.Context()).
			Model(&courseModel.LevelModel{}).
			Where("level_course_id = ?", courseID).
			Select("COALESCE(MAX(level_position), 0)").
			Scan(&maxPos)
		pos = maxPos + 1
	}

	lv := courseModel.LevelModel{
		LevelCourseID:     courseID,
		LevelName:         strings.TrimSpace(req.LevelName),
		LevelPosition:     pos,
		LevelBasePrice:    req.LevelBasePrice,
		LevelNextCourseID: req.LevelNextCourseID,
	}
	if err := h.DB.WithContext(c.Context()).Create(&lv).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create level")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Level created", lv)
}

/*
=========================================================

	LIST / GET
	GET /api/a/courses
	GET /api/a/courses/:id

=========================================================
*/
func (h *CourseController) List(c *fiber.Ctx) error {
	p := helper.ParsePage(c, helper.DefaultPageOpts)

	tx := h.DB.WithContext(c.Context()).Model(&courseModel.CourseModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("course_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count courses")
	}

	var courses []courseModel.CourseModel
	if err := tx.Preload("CourseLevels", func(db *gorm.DB) *gorm.DB {
		return db.Order("level_position ASC")
	}).
		Order("course_name ASC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&courses).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list courses")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      courses,
		"pagination": p.Meta(total),
	})
}

func (h *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var course courseModel.CourseModel
	if err := h.DB.WithContext(c.Context()).
		Preload("CourseLevels", func(db *gorm.DB) *gorm.DB {
			return db.Order("level_position ASC")
		}).
		First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load course")
	}

	return helper.Success(c, "OK", course)
}

/*
=========================================================

	NEXT COURSE SUGGESTION
	GET /api/a/courses/:id/next
	(promotion screen default destination)

=========================================================
*/
func (h *CourseController) NextCourse(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var course courseModel.CourseModel
	if err := h.DB.WithContext(c.Context()).
		Preload("CourseLevels", func(db *gorm.DB) *gorm.DB {
			return db.Order("level_position ASC")
		}).
		First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load course")
	}

	out := courseDTO.NextCourseSuggestion{}
	if lv := course.FirstLevel(); lv != nil && lv.LevelNextCourseID != nil {
		var next courseModel.CourseModel
		if err := h.DB.WithContext(c.Context()).
			First(&next, "course_id = ?", *lv.LevelNextCourseID).Error; err == nil {
			out.CourseID = &next.CourseID
			out.CourseName = &next.CourseName
		}
	}

	return helper.Success(c, "OK", out)
}
