// file: internals/features/pricing/agreements/controller/agreement_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	agreementDTO "academia_backend/internals/features/pricing/agreements/dto"
	agreementModel "academia_backend/internals/features/pricing/agreements/model"
	helper "academia_backend/internals/helpers"
)

type AgreementController struct {
	DB *gorm.DB
}

func NewAgreementController(db *gorm.DB) *AgreementController {
	return &AgreementController{DB: db}
}

/*
=========================================================

	CREATE
	POST /api/a/agreements

=========================================================
*/
func (h *AgreementController) Create(c *fiber.Ctx) error {
	var req agreementDTO.CreateAgreementRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()

	// Partner school must exist before hanging a contract off it
	var cnt int64
	if err := h.DB.WithContext(c.Context()).
		Table("schools").
		Where("school_id = ? AND school_deleted_at IS NULL", m.AgreementSchoolID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check school")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "School not found")
	}

	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create agreement")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Agreement created", agreementDTO.FromModel(m))
}

/*
=========================================================

	PATCH
	PATCH /api/a/agreements/:id

=========================================================
*/
func (h *AgreementController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req agreementDTO.UpdateAgreementRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m agreementModel.AgreementModel
	if err := h.DB.WithContext(c.Context()).
		First(&m, "agreement_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Agreement not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load agreement")
	}

	req.ApplyToModel(&m)
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update agreement")
	}

	return helper.Success(c, "Agreement updated", agreementDTO.FromModel(&m))
}

/*
=========================================================

	LIST
	GET /api/a/agreements?school_id=&active=

=========================================================
*/
func (h *AgreementController) List(c *fiber.Ctx) error {
	p := helper.ParsePage(c, helper.AdminPageOpts)

	tx := h.DB.WithContext(c.Context()).Model(&agreementModel.AgreementModel{})
	if sid := c.Query("school_id"); sid != "" {
		tx = tx.Where("agreement_school_id = ?", sid)
	}
	if act := c.Query("active"); act != "" {
		tx = tx.Where("agreement_is_active = ?", act == "true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count agreements")
	}

	var ms []agreementModel.AgreementModel
	if err := tx.Order("agreement_created_at DESC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&ms).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list agreements")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      agreementDTO.FromModels(ms),
		"pagination": p.Meta(total),
	})
}

/*
=========================================================

	DEACTIVATE
	DELETE /api/a/agreements/:id
	(soft: flips is_active off, history stays)

=========================================================
*/
func (h *AgreementController) Deactivate(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := h.DB.WithContext(c.Context()).
		Model(&agreementModel.AgreementModel{}).
		Where("agreement_id = ?", id).
		Update("agreement_is_active", false)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to deactivate agreement")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Agreement not found")
	}

	return helper.Success(c, "Agreement deactivated", nil)
}
