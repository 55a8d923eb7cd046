// file: internals/features/finance/payments/service/midtrans.go
package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"academia_backend/internals/features/finance/payments/model"
)

var SnapClient snap.Client

// InitMidtrans wires the Snap client once at boot.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken requests a Snap payment token for a tuition charge.
func GenerateSnapToken(p model.PaymentModel, name string, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PaymentOrderID,
			GrossAmt: int64(p.PaymentAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}

// MapTransactionStatus folds the gateway's status vocabulary onto ours.
func MapTransactionStatus(transactionStatus string) model.PaymentStatus {
	switch transactionStatus {
	case "settlement", "capture", "success":
		return model.PaymentStatusCompleted
	case "deny", "expire", "cancel", "failure", "failed", "cancelled":
		return model.PaymentStatusFailed
	default:
		return model.PaymentStatusPending
	}
}
