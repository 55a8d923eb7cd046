// file: internals/features/system/settings/controller/setting_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	settingModel "academia_backend/internals/features/system/settings/model"
	helper "academia_backend/internals/helpers"
)

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db}
}

type putSettingRequest struct {
	SettingValue string `json:"setting_value" validate:"required"`
}

/*
=========================================================

	GET
	GET /api/a/settings/:key

=========================================================
*/
func (h *SettingController) Get(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("key"))
	if key == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing setting key")
	}

	var s settingModel.SystemSettingModel
	if err := h.DB.WithContext(c.Context()).
		First(&s, "setting_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Setting not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load setting")
	}

	return helper.Success(c, "OK", s)
}

/*
=========================================================

	PUT (upsert)
	PUT /api/a/settings/:key
	Admin only (route-level guard).

=========================================================
*/
func (h *SettingController) Put(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("key"))
	if key == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing setting key")
	}

	var req putSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	s := settingModel.SystemSettingModel{
		SettingKey:   key,
		SettingValue: strings.TrimSpace(req.SettingValue),
	}
	if err := h.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value", "setting_updated_at"}),
		}).
		Create(&s).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save setting")
	}

	return helper.Success(c, "Setting saved", s)
}
