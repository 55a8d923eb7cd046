// file: internals/features/people/schools/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	schoolController "academia_backend/internals/features/people/schools/controller"
	authMW "academia_backend/internals/middlewares/auth"
)

func StaffSchoolRoutes(r fiber.Router, db *gorm.DB) {
	ctl := schoolController.NewSchoolController(db)

	gr := r.Group("/schools")
	{
		gr.Get("/", authMW.OnlyRoles(constants.RoleErrorStaff("schools"), constants.StaffRoles...), ctl.List)
		gr.Get("/:id", authMW.OnlyRoles(constants.RoleErrorStaff("schools"), constants.StaffRoles...), ctl.GetByID)
	}
}
