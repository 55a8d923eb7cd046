// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	paymentModel "academia_backend/internals/features/finance/payments/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreatePaymentRequest struct {
	PaymentEnrollmentID uuid.UUID `json:"payment_enrollment_id" validate:"required"`

	// Payer details forwarded to the gateway checkout page
	PayerName  string `json:"payer_name" validate:"required,max=160"`
	PayerEmail string `json:"payer_email" validate:"required,email"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type PaymentResponse struct {
	PaymentID           uuid.UUID                  `json:"payment_id"`
	PaymentEnrollmentID uuid.UUID                  `json:"payment_enrollment_id"`
	PaymentOrderID      string                     `json:"payment_order_id"`
	PaymentAmount       float64                    `json:"payment_amount"`
	PaymentStatus       paymentModel.PaymentStatus `json:"payment_status"`
	PaymentSnapToken    *string                    `json:"payment_snap_token,omitempty"`
	PaymentPaidAt       *time.Time                 `json:"payment_paid_at,omitempty"`
	PaymentCreatedAt    time.Time                  `json:"payment_created_at"`
}

func FromModel(m *paymentModel.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:           m.PaymentID,
		PaymentEnrollmentID: m.PaymentEnrollmentID,
		PaymentOrderID:      m.PaymentOrderID,
		PaymentAmount:       m.PaymentAmount,
		PaymentStatus:       m.PaymentStatus,
		PaymentSnapToken:    m.PaymentSnapToken,
		PaymentPaidAt:       m.PaymentPaidAt,
		PaymentCreatedAt:    m.PaymentCreatedAt,
	}
}

func FromModels(ms []paymentModel.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
