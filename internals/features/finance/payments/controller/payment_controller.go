// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentModel "academia_backend/internals/features/academics/enrollments/model"
	paymentDTO "academia_backend/internals/features/finance/payments/dto"
	paymentModel "academia_backend/internals/features/finance/payments/model"
	paymentService "academia_backend/internals/features/finance/payments/service"
	helper "academia_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/*
=========================================================

	CREATE
	POST /api/a/payments
	Charges the enrollment's agreed price and returns the
	Snap token for checkout.

=========================================================
*/
func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req paymentDTO.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var enr enrollmentModel.EnrollmentModel
	if err := h.DB.WithContext(c.Context()).
		First(&enr, "enrollment_id = ?", req.PaymentEnrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load enrollment")
	}

	m := paymentModel.PaymentModel{
		PaymentEnrollmentID: enr.EnrollmentID,
		PaymentOrderID:      fmt.Sprintf("TUITION-%d", time.Now().UnixNano()),
		PaymentAmount:       enr.EnrollmentAgreedPrice,
		PaymentStatus:       paymentModel.PaymentStatusPending,
		PaymentGateway:      "midtrans",
	}
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create payment")
	}

	token, err := paymentService.GenerateSnapToken(m, req.PayerName, req.PayerEmail)
	if err != nil {
		log.Printf("[ERROR] midtrans snap token for order %s: %v", m.PaymentOrderID, err)
		return fiber.NewError(fiber.StatusBadGateway, "Failed to create payment token")
	}

	m.PaymentSnapToken = &token
	if err := h.DB.WithContext(c.Context()).
		Model(&paymentModel.PaymentModel{}).
		Where("payment_id = ?", m.PaymentID).
		Update("payment_snap_token", token).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store payment token")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Payment created, proceed to checkout", paymentDTO.FromModel(&m))
}

/*
=========================================================

	GATEWAY WEBHOOK
	POST /api/payments/notification (no auth, Midtrans calls it)

=========================================================
*/
func (h *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid webhook payload")
	}

	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	if orderID == "" || transactionStatus == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing order_id or transaction_status")
	}

	var m paymentModel.PaymentModel
	if err := h.DB.WithContext(c.Context()).
		First(&m, "payment_order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[WARN] webhook for unknown order %s ignored", orderID)
			return c.SendStatus(fiber.StatusOK)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load payment")
	}

	next := paymentService.MapTransactionStatus(transactionStatus)
	updates := map[string]interface{}{"payment_status": next}
	if next == paymentModel.PaymentStatusCompleted && m.PaymentPaidAt == nil {
		updates["payment_paid_at"] = time.Now()
	}
	if err := h.DB.WithContext(c.Context()).
		Model(&paymentModel.PaymentModel{}).
		Where("payment_id = ?", m.PaymentID).
		Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update payment")
	}

	log.Printf("✅ payment %s -> %s (gateway status %s)", orderID, next, transactionStatus)
	return c.SendStatus(fiber.StatusOK)
}

/*
=========================================================

	GET / LIST
	GET /api/a/payments/:id
	GET /api/a/payments?enrollment_id=&status=

=========================================================
*/
func (h *PaymentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m paymentModel.PaymentModel
	if err := h.DB.WithContext(c.Context()).
		First(&m, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load payment")
	}

	return helper.Success(c, "OK", paymentDTO.FromModel(&m))
}

func (h *PaymentController) List(c *fiber.Ctx) error {
	p := helper.ParsePage(c, helper.AdminPageOpts)

	tx := h.DB.WithContext(c.Context()).Model(&paymentModel.PaymentModel{})
	if eid := c.Query("enrollment_id"); eid != "" {
		tx = tx.Where("payment_enrollment_id = ?", eid)
	}
	if st := c.Query("status"); st != "" {
		tx = tx.Where("payment_status = ?", st)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count payments")
	}

	var rows []paymentModel.PaymentModel
	if err := tx.Order("payment_created_at DESC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list payments")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      paymentDTO.FromModels(rows),
		"pagination": p.Meta(total),
	})
}
