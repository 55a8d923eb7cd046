// file: internals/features/pricing/agreements/model/agreement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM agreement_discount_type (follow the DB enum) -----------------------
type DiscountType string

const (
	DiscountTypePercentage  DiscountType = "PERCENTAGE"
	DiscountTypeFixedAmount DiscountType = "FIXED_AMOUNT"
)

// --- MODEL agreements --------------------------------------------------------
// An agreement is a time-bounded discount contract with a partner school.
// It only matters at enrollment time; the resulting price is snapshotted onto
// the enrollment and never recomputed.
type AgreementModel struct {
	// PK
	AgreementID uuid.UUID `json:"agreement_id" gorm:"column:agreement_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK ke schools(school_id)
	AgreementSchoolID uuid.UUID `json:"agreement_school_id" gorm:"column:agreement_school_id;type:uuid;not null;index:idx_agreements_school"`

	AgreementName          string       `json:"agreement_name" gorm:"column:agreement_name;type:varchar(160);not null"`
	AgreementDiscountType  DiscountType `json:"agreement_discount_type" gorm:"column:agreement_discount_type;type:varchar(20);not null"`
	AgreementDiscountValue float64      `json:"agreement_discount_value" gorm:"column:agreement_discount_value;type:numeric(10,2);not null"`

	// Validity window (end date open-ended when NULL)
	AgreementStartDate time.Time  `json:"agreement_start_date" gorm:"column:agreement_start_date;type:date;not null"`
	AgreementEndDate   *time.Time `json:"agreement_end_date,omitempty" gorm:"column:agreement_end_date;type:date"`

	AgreementIsActive bool `json:"agreement_is_active" gorm:"column:agreement_is_active;type:boolean;not null;default:true;index:idx_agreements_is_active"`

	// Timestamps
	AgreementCreatedAt time.Time      `json:"agreement_created_at" gorm:"column:agreement_created_at;type:timestamptz;not null;autoCreateTime"`
	AgreementUpdatedAt time.Time      `json:"agreement_updated_at" gorm:"column:agreement_updated_at;type:timestamptz;not null;autoUpdateTime"`
	AgreementDeletedAt gorm.DeletedAt `json:"agreement_deleted_at,omitempty" gorm:"column:agreement_deleted_at;type:timestamptz;index"`
}

func (AgreementModel) TableName() string { return "agreements" }

// CoversDate reports whether the validity window contains t. The bounds are
// date columns and scan as midnight, so t is truncated to date precision
// first; an agreement ending today still discounts all day.
func (a AgreementModel) CoversDate(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if day.Before(a.AgreementStartDate) {
		return false
	}
	if a.AgreementEndDate != nil && day.After(*a.AgreementEndDate) {
		return false
	}
	return true
}
