// file: internals/features/finance/payments/service/midtrans_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"academia_backend/internals/features/finance/payments/model"
)

func TestMapTransactionStatus(t *testing.T) {
	tests := []struct {
		in   string
		want model.PaymentStatus
	}{
		{"settlement", model.PaymentStatusCompleted},
		{"capture", model.PaymentStatusCompleted},
		{"success", model.PaymentStatusCompleted},
		{"deny", model.PaymentStatusFailed},
		{"expire", model.PaymentStatusFailed},
		{"cancel", model.PaymentStatusFailed},
		{"pending", model.PaymentStatusPending},
		{"", model.PaymentStatusPending},
		{"something-new", model.PaymentStatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MapTransactionStatus(tt.in))
		})
	}
}
