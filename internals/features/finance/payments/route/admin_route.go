// file: internals/features/finance/payments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	paymentController "academia_backend/internals/features/finance/payments/controller"
	authMW "academia_backend/internals/middlewares/auth"
)

func StaffPaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db)

	gr := r.Group("/payments")
	{
		gr.Get("/", authMW.OnlyRoles(constants.RoleErrorStaff("payments"), constants.StaffRoles...), ctl.List)
		gr.Get("/:id", authMW.OnlyRoles(constants.RoleErrorStaff("payments"), constants.StaffRoles...), ctl.GetByID)

		gr.Post("/", authMW.OnlyRoles(constants.RoleErrorStaff("payments"), constants.StaffRoles...), ctl.Create)
	}
}

// PublicPaymentRoutes carries the gateway webhook; the auth middleware
// skips this path explicitly.
func PublicPaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db)
	r.Post("/payments/notification", ctl.HandleNotification)
}
