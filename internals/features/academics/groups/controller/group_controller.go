// file: internals/features/academics/groups/controller/group_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentModel "academia_backend/internals/features/academics/enrollments/model"
	groupDTO "academia_backend/internals/features/academics/groups/dto"
	groupModel "academia_backend/internals/features/academics/groups/model"
	groupService "academia_backend/internals/features/academics/groups/service"
	teacherService "academia_backend/internals/features/people/teachers/service"
	helper "academia_backend/internals/helpers"
	helperAuth "academia_backend/internals/helpers/auth"
)

type GroupController struct {
	DB *gorm.DB
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db}
}

/*
=========================================================

	CREATE
	POST /api/a/groups

=========================================================
*/
func (h *GroupController) Create(c *fiber.Ctx) error {
	var req groupDTO.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var cnt int64
	if err := h.DB.WithContext(c.Context()).
		Table("levels").
		Where("level_id = ? AND level_deleted_at IS NULL", req.CourseGroupLevelID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check level")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Level not found")
	}

	m := req.ToModel()
	if m.CourseGroupCode == "" {
		m.CourseGroupCode = groupService.GenerateGroupCode(time.Now())
	}

	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Group code already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create group")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Group created", m)
}

/*
=========================================================

	GET / LIST
	GET /api/a/groups/:id
	GET /api/a/groups?level_id=&status=&teacher_id=

=========================================================
*/
func (h *GroupController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var g groupModel.GroupModel
	if err := h.DB.WithContext(c.Context()).
		First(&g, "course_group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Group not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load group")
	}

	var enrollments []enrollmentModel.EnrollmentModel
	if err := h.DB.WithContext(c.Context()).
		Where("enrollment_group_id = ?", id).
		Order("enrollment_created_at ASC").
		Find(&enrollments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load enrollments")
	}

	return helper.Success(c, "OK", fiber.Map{
		"group":       g,
		"enrollments": enrollments,
	})
}

func (h *GroupController) List(c *fiber.Ctx) error {
	p := helper.ParsePage(c, helper.DefaultPageOpts)

	tx := h.DB.WithContext(c.Context()).Model(&groupModel.GroupModel{})
	if lid := c.Query("level_id"); lid != "" {
		tx = tx.Where("course_group_level_id = ?", lid)
	}
	if st := c.Query("status"); st != "" {
		tx = tx.Where("course_group_status = ?", st)
	}
	if tid := c.Query("teacher_id"); tid != "" {
		tx = tx.Where("course_group_teacher_id = ?", tid)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count groups")
	}

	var groups []groupModel.GroupModel
	if err := tx.Order("course_group_start_date DESC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&groups).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list groups")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      groups,
		"pagination": p.Meta(total),
	})
}

/*
=========================================================

	ASSIGN TEACHER
	PATCH /api/a/groups/:id/teacher

=========================================================
*/
func (h *GroupController) AssignTeacher(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req groupDTO.AssignTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := h.DB.WithContext(c.Context()).
		Model(&groupModel.GroupModel{}).
		Where("course_group_id = ?", id).
		Update("course_group_teacher_id", req.CourseGroupTeacherID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign teacher")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Group not found")
	}

	return helper.Success(c, "Teacher assigned", nil)
}

/*
=========================================================

	SUBMIT GRADES
	POST /api/a/groups/:id/submit-grades
	ACTIVE → GRADES_SUBMITTED; owning teacher or admin.
	From this point GradeLedger refuses non-admin writes.

=========================================================
*/
func (h *GroupController) SubmitGrades(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var g groupModel.GroupModel
	if err := h.DB.WithContext(c.Context()).
		First(&g, "course_group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Group not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load group")
	}

	if !helperAuth.IsAdmin(c) {
		userID, err := helperAuth.GetUserID(c)
		if err != nil {
			return err
		}
		teacherID, err := teacherService.TeacherIDByUserID(h.DB.WithContext(c.Context()), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve teacher profile")
		}
		if teacherID == nil || g.CourseGroupTeacherID == nil || *teacherID != *g.CourseGroupTeacherID {
			return fiber.NewError(fiber.StatusForbidden, "Only the group's teacher may submit its grades")
		}
	}

	if err := groupService.CanSubmitGrades(g.CourseGroupStatus); err != nil {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	// Guarded update so two concurrent submits cannot both pass
	res := h.DB.WithContext(c.Context()).
		Model(&groupModel.GroupModel{}).
		Where("course_group_id = ? AND course_group_status = ?", id, groupModel.GroupStatusActive).
		Update("course_group_status", groupModel.GroupStatusGradesSubmitted)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update group status")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusConflict, "Group status changed concurrently")
	}

	g.CourseGroupStatus = groupModel.GroupStatusGradesSubmitted
	return helper.Success(c, "Grades submitted, group is now locked for editing", g)
}

/*
=========================================================

	CLOSE
	POST /api/a/groups/:id/close
	Admin only. GRADES_SUBMITTED → COMPLETED and every ACTIVE
	enrollment in the group flips to COMPLETED, one transaction.

=========================================================
*/
func (h *GroupController) Close(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var flipped int64
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var g groupModel.GroupModel
		if err := tx.First(&g, "course_group_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Group not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load group")
		}

		if err := groupService.CanClose(g.CourseGroupStatus); err != nil {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}

		res := tx.Model(&groupModel.GroupModel{}).
			Where("course_group_id = ? AND course_group_status = ?", id, groupModel.GroupStatusGradesSubmitted).
			Update("course_group_status", groupModel.GroupStatusCompleted)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to close group")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "Group status changed concurrently")
		}

		// One bulk update for the cascade; a partially closed group must
		// never be observable.
		enr := tx.Model(&enrollmentModel.EnrollmentModel{}).
			Where("enrollment_group_id = ? AND enrollment_status = ?", id, enrollmentModel.EnrollmentStatusActive).
			Update("enrollment_status", enrollmentModel.EnrollmentStatusCompleted)
		if enr.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to complete enrollments")
		}
		flipped = enr.RowsAffected

		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Group closed", groupDTO.CloseGroupResponse{
		CourseGroupID:        id,
		CourseGroupStatus:    string(groupModel.GroupStatusCompleted),
		EnrollmentsCompleted: flipped,
	})
}
