// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM payment_status -----------------------------------------------------
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// --- MODEL payments ----------------------------------------------------------
// One tuition charge against an enrollment. The amount is copied from the
// enrollment's agreed price at creation; the gateway never changes it.
type PaymentModel struct {
	// PK
	PaymentID uuid.UUID `json:"payment_id" gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK ke enrollments(enrollment_id)
	PaymentEnrollmentID uuid.UUID `json:"payment_enrollment_id" gorm:"column:payment_enrollment_id;type:uuid;not null;index:idx_payments_enrollment"`

	// Gateway correlation key, echoed back by the webhook
	PaymentOrderID string `json:"payment_order_id" gorm:"column:payment_order_id;type:varchar(80);not null;uniqueIndex:uq_payments_order_id"`

	PaymentAmount  float64       `json:"payment_amount" gorm:"column:payment_amount;type:numeric(10,2);not null"`
	PaymentStatus  PaymentStatus `json:"payment_status" gorm:"column:payment_status;type:varchar(20);not null;default:'PENDING';index:idx_payments_status"`
	PaymentGateway string        `json:"payment_gateway" gorm:"column:payment_gateway;type:varchar(40);not null;default:'midtrans'"`

	PaymentSnapToken *string `json:"payment_snap_token,omitempty" gorm:"column:payment_snap_token;type:text"`

	PaymentPaidAt *time.Time `json:"payment_paid_at,omitempty" gorm:"column:payment_paid_at;type:timestamptz"`

	// Timestamps
	PaymentCreatedAt time.Time      `json:"payment_created_at" gorm:"column:payment_created_at;type:timestamptz;not null;autoCreateTime"`
	PaymentUpdatedAt time.Time      `json:"payment_updated_at" gorm:"column:payment_updated_at;type:timestamptz;not null;autoUpdateTime"`
	PaymentDeletedAt gorm.DeletedAt `json:"payment_deleted_at,omitempty" gorm:"column:payment_deleted_at;type:timestamptz;index"`
}

func (PaymentModel) TableName() string { return "payments" }
