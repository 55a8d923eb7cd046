// file: internals/features/academics/promotion/controller/promotion_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "academia_backend/internals/features/academics/courses/model"
	enrollmentModel "academia_backend/internals/features/academics/enrollments/model"
	gradeModel "academia_backend/internals/features/academics/grades/model"
	groupModel "academia_backend/internals/features/academics/groups/model"
	groupService "academia_backend/internals/features/academics/groups/service"
	promotionDTO "academia_backend/internals/features/academics/promotion/dto"
	promotionService "academia_backend/internals/features/academics/promotion/service"
	studentModel "academia_backend/internals/features/people/students/model"
	agreementModel "academia_backend/internals/features/pricing/agreements/model"
	pricingService "academia_backend/internals/features/pricing/agreements/service"
	helper "academia_backend/internals/helpers"
)

type PromotionController struct {
	DB *gorm.DB
}

func NewPromotionController(db *gorm.DB) *PromotionController {
	return &PromotionController{DB: db}
}

/*
=========================================================

	APPROVED CANDIDATES
	GET /api/a/promotion/candidates/:course_id
	Every non-withdrawn enrollment under the course whose
	report-card average meets the pass mark.

=========================================================
*/
func (h *PromotionController) GetCandidates(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "course_id")
	if err != nil {
		return err
	}

	var cnt int64
	if err := h.DB.WithContext(c.Context()).
		Model(&courseModel.CourseModel{}).
		Where("course_id = ?", courseID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check course")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	var enrollments []enrollmentModel.EnrollmentModel
	if err := h.DB.WithContext(c.Context()).
		Joins("JOIN course_groups g ON g.course_group_id = enrollments.enrollment_group_id AND g.course_group_deleted_at IS NULL").
		Joins("JOIN levels l ON l.level_id = g.course_group_level_id AND l.level_deleted_at IS NULL").
		Where("l.level_course_id = ? AND enrollments.enrollment_status <> ?", courseID, enrollmentModel.EnrollmentStatusWithdrawn).
		Find(&enrollments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load enrollments")
	}
	if len(enrollments) == 0 {
		return helper.Success(c, "OK", []promotionDTO.CandidateResponse{})
	}

	enrollmentIDs := make([]uuid.UUID, 0, len(enrollments))
	for _, e := range enrollments {
		enrollmentIDs = append(enrollmentIDs, e.EnrollmentID)
	}

	var grades []gradeModel.GradeModel
	if err := h.DB.WithContext(c.Context()).
		Where("grade_enrollment_id IN ?", enrollmentIDs).
		Find(&grades).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load grades")
	}
	byEnrollment := make(map[uuid.UUID][]gradeModel.GradeModel, len(enrollments))
	for _, g := range grades {
		byEnrollment[g.GradeEnrollmentID] = append(byEnrollment[g.GradeEnrollmentID], g)
	}

	inputs := make([]promotionService.CandidateInput, 0, len(enrollments))
	for _, e := range enrollments {
		inputs = append(inputs, promotionService.CandidateInput{
			Enrollment: e,
			Grades:     byEnrollment[e.EnrollmentID],
		})
	}
	approved := promotionService.ApprovedCandidates(inputs)

	resp, err := h.annotateCandidates(c, approved)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", resp)
}

func (h *PromotionController) annotateCandidates(c *fiber.Ctx, approved []promotionService.Candidate) ([]promotionDTO.CandidateResponse, error) {
	studentIDs := make([]uuid.UUID, 0, len(approved))
	groupIDs := make([]uuid.UUID, 0, len(approved))
	for _, cand := range approved {
		studentIDs = append(studentIDs, cand.Enrollment.EnrollmentStudentID)
		groupIDs = append(groupIDs, cand.Enrollment.EnrollmentGroupID)
	}

	names := make(map[uuid.UUID]string, len(studentIDs))
	if len(studentIDs) > 0 {
		var students []studentModel.StudentModel
		if err := h.DB.WithContext(c.Context()).
			Where("student_id IN ?", studentIDs).
			Find(&students).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load students")
		}
		for _, s := range students {
			names[s.StudentID] = s.FullName()
		}
	}

	codes := make(map[uuid.UUID]string, len(groupIDs))
	if len(groupIDs) > 0 {
		var groups []groupModel.GroupModel
		if err := h.DB.WithContext(c.Context()).
			Where("course_group_id IN ?", groupIDs).
			Find(&groups).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load groups")
		}
		for _, g := range groups {
			codes[g.CourseGroupID] = g.CourseGroupCode
		}
	}

	resp := make([]promotionDTO.CandidateResponse, 0, len(approved))
	for _, cand := range approved {
		resp = append(resp, promotionDTO.CandidateResponse{
			EnrollmentID: cand.Enrollment.EnrollmentID,
			StudentID:    cand.Enrollment.EnrollmentStudentID,
			StudentName:  names[cand.Enrollment.EnrollmentStudentID],
			GroupID:      cand.Enrollment.EnrollmentGroupID,
			GroupCode:    codes[cand.Enrollment.EnrollmentGroupID],
			Average:      cand.Average,
		})
	}
	return resp, nil
}

/*
=========================================================

	AUTO PROMOTE
	POST /api/a/promotion/auto
	Creates the destination group on the target course's
	first level and enrolls every listed student, all or
	nothing. Each new enrollment is priced on the spot.

=========================================================
*/
func (h *PromotionController) AutoPromote(c *fiber.Ctx) error {
	var req promotionDTO.AutoPromoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course courseModel.CourseModel
	if err := h.DB.WithContext(c.Context()).
		Preload("CourseLevels").
		First(&course, "course_id = ?", req.TargetCourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Target course not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load target course")
	}
	firstLevel := course.FirstLevel()
	if firstLevel == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not create the group or enroll students")
	}

	now := time.Now()
	var g groupModel.GroupModel
	enrollmentIDs := make([]uuid.UUID, 0, len(req.StudentIDs))
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		g = groupModel.GroupModel{
			CourseGroupCode:      groupService.GenerateGroupCode(now),
			CourseGroupStatus:    groupModel.GroupStatusActive,
			CourseGroupStartDate: req.ParsedStartDate(),
			CourseGroupLevelID:   firstLevel.LevelID,
		}
		if err := tx.Create(&g).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not create the group or enroll students")
		}

		for _, studentID := range req.StudentIDs {
			var st studentModel.StudentModel
			if err := tx.First(&st, "student_id = ?", studentID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Could not create the group or enroll students")
			}

			var agreements []agreementModel.AgreementModel
			if st.StudentSchoolID != nil {
				if err := tx.
					Where("agreement_school_id = ? AND agreement_is_active = TRUE", *st.StudentSchoolID).
					Find(&agreements).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Failed to load agreements")
				}
			}
			quote := pricingService.ComputePrice(&firstLevel.LevelBasePrice, agreements, now)

			e := enrollmentModel.EnrollmentModel{
				EnrollmentStudentID:      studentID,
				EnrollmentGroupID:        g.CourseGroupID,
				EnrollmentStatus:         enrollmentModel.EnrollmentStatusActive,
				EnrollmentDate:           now,
				EnrollmentAgreedPrice:    quote.Price,
				EnrollmentPriceBreakdown: quote.Breakdown(&firstLevel.LevelBasePrice),
			}
			if err := tx.Create(&e).Error; err != nil {
				// Duplicate student ids in the request land here too;
				// the whole promotion rolls back either way.
				return fiber.NewError(fiber.StatusBadRequest, "Could not create the group or enroll students")
			}
			enrollmentIDs = append(enrollmentIDs, e.EnrollmentID)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Promotion completed", promotionDTO.AutoPromoteResponse{
		CourseGroupID:      g.CourseGroupID,
		CourseGroupCode:    g.CourseGroupCode,
		CourseGroupLevelID: g.CourseGroupLevelID,
		EnrollmentIDs:      enrollmentIDs,
		PromotedCount:      len(enrollmentIDs),
	})
}
