// file: internals/features/academics/enrollments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	enrollmentController "academia_backend/internals/features/academics/enrollments/controller"
	authMW "academia_backend/internals/middlewares/auth"
)

func StaffEnrollmentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := enrollmentController.NewEnrollmentController(db)

	gr := r.Group("/enrollments")
	{
		gr.Get("/", authMW.OnlyRoles(constants.RoleErrorStaff("enrollments"), constants.StaffRoles...), ctl.List)
		gr.Get("/:id", authMW.OnlyRoles(constants.RoleErrorStaff("enrollments"), constants.StaffRoles...), ctl.GetByID)

		gr.Post("/", authMW.OnlyRoles(constants.RoleErrorAdmin("enrollments"), constants.AdminOnly...), ctl.Create)
		gr.Post("/:id/withdraw", authMW.OnlyRoles(constants.RoleErrorAdmin("enrollments"), constants.AdminOnly...), ctl.Withdraw)
	}
}
