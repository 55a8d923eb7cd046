// file: internals/features/people/schools/controller/school_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolModel "academia_backend/internals/features/people/schools/model"
	agreementDTO "academia_backend/internals/features/pricing/agreements/dto"
	agreementModel "academia_backend/internals/features/pricing/agreements/model"
	helper "academia_backend/internals/helpers"
)

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

func (h *SchoolController) List(c *fiber.Ctx) error {
	p := helper.ParsePage(c, helper.DefaultPageOpts)

	tx := h.DB.WithContext(c.Context()).Model(&schoolModel.SchoolModel{})
	if q := c.Query("q"); q != "" {
		tx = tx.Where("school_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count schools")
	}

	var schools []schoolModel.SchoolModel
	if err := tx.Order("school_name ASC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&schools).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list schools")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      schools,
		"pagination": p.Meta(total),
	})
}

// GetByID returns the school together with its discount agreements, the
// shape the enrollment screens consume.
func (h *SchoolController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var s schoolModel.SchoolModel
	if err := h.DB.WithContext(c.Context()).
		First(&s, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "School not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load school")
	}

	var agreements []agreementModel.AgreementModel
	if err := h.DB.WithContext(c.Context()).
		Where("agreement_school_id = ?", id).
		Order("agreement_start_date DESC").
		Find(&agreements).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load agreements")
	}

	return helper.Success(c, "OK", fiber.Map{
		"school":     s,
		"agreements": agreementDTO.FromModels(agreements),
	})
}
