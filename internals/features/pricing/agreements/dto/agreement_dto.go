// file: internals/features/pricing/agreements/dto/agreement_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "academia_backend/internals/features/pricing/agreements/model"
)

/* ===================== REQUESTS ===================== */

type CreateAgreementRequest struct {
	AgreementSchoolID      uuid.UUID  `json:"agreement_school_id" validate:"required"`
	AgreementName          string     `json:"agreement_name" validate:"required,max=160"`
	AgreementDiscountType  string     `json:"agreement_discount_type" validate:"required,oneof=PERCENTAGE FIXED_AMOUNT"`
	AgreementDiscountValue float64    `json:"agreement_discount_value" validate:"required,gt=0"`
	AgreementStartDate     string     `json:"agreement_start_date" validate:"required,datetime=2006-01-02"`
	AgreementEndDate       *string    `json:"agreement_end_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r CreateAgreementRequest) ToModel() *model.AgreementModel {
	start, _ := time.Parse("2006-01-02", r.AgreementStartDate)
	m := &model.AgreementModel{
		AgreementSchoolID:      r.AgreementSchoolID,
		AgreementName:          strings.TrimSpace(r.AgreementName),
		AgreementDiscountType:  model.DiscountType(r.AgreementDiscountType),
		AgreementDiscountValue: r.AgreementDiscountValue,
		AgreementStartDate:     start,
		AgreementIsActive:      true,
	}
	if r.AgreementEndDate != nil && strings.TrimSpace(*r.AgreementEndDate) != "" {
		end, _ := time.Parse("2006-01-02", *r.AgreementEndDate)
		m.AgreementEndDate = &end
	}
	return m
}

/* ===================== UPDATE (partial) ===================== */

type UpdateAgreementRequest struct {
	AgreementName          *string  `json:"agreement_name" validate:"omitempty,max=160"`
	AgreementDiscountType  *string  `json:"agreement_discount_type" validate:"omitempty,oneof=PERCENTAGE FIXED_AMOUNT"`
	AgreementDiscountValue *float64 `json:"agreement_discount_value" validate:"omitempty,gt=0"`
	AgreementEndDate       *string  `json:"agreement_end_date" validate:"omitempty,datetime=2006-01-02"`
	AgreementIsActive      *bool    `json:"agreement_is_active"`
}

// Apply only the fields that were sent
func (r *UpdateAgreementRequest) ApplyToModel(m *model.AgreementModel) {
	if r.AgreementName != nil {
		m.AgreementName = strings.TrimSpace(*r.AgreementName)
	}
	if r.AgreementDiscountType != nil {
		m.AgreementDiscountType = model.DiscountType(*r.AgreementDiscountType)
	}
	if r.AgreementDiscountValue != nil {
		m.AgreementDiscountValue = *r.AgreementDiscountValue
	}
	if r.AgreementEndDate != nil {
		if strings.TrimSpace(*r.AgreementEndDate) == "" {
			m.AgreementEndDate = nil
		} else {
			end, _ := time.Parse("2006-01-02", *r.AgreementEndDate)
			m.AgreementEndDate = &end
		}
	}
	if r.AgreementIsActive != nil {
		m.AgreementIsActive = *r.AgreementIsActive
	}
}

/* ===================== RESPONSES ===================== */

type AgreementResponse struct {
	AgreementID            uuid.UUID  `json:"agreement_id"`
	AgreementSchoolID      uuid.UUID  `json:"agreement_school_id"`
	AgreementName          string     `json:"agreement_name"`
	AgreementDiscountType  string     `json:"agreement_discount_type"`
	AgreementDiscountValue float64    `json:"agreement_discount_value"`
	AgreementStartDate     time.Time  `json:"agreement_start_date"`
	AgreementEndDate       *time.Time `json:"agreement_end_date,omitempty"`
	AgreementIsActive      bool       `json:"agreement_is_active"`
}

func FromModel(m *model.AgreementModel) AgreementResponse {
	return AgreementResponse{
		AgreementID:            m.AgreementID,
		AgreementSchoolID:      m.AgreementSchoolID,
		AgreementName:          m.AgreementName,
		AgreementDiscountType:  string(m.AgreementDiscountType),
		AgreementDiscountValue: m.AgreementDiscountValue,
		AgreementStartDate:     m.AgreementStartDate,
		AgreementEndDate:       m.AgreementEndDate,
		AgreementIsActive:      m.AgreementIsActive,
	}
}

func FromModels(ms []model.AgreementModel) []AgreementResponse {
	out := make([]AgreementResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
