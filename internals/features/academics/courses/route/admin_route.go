// file: internals/features/academics/courses/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	courseController "academia_backend/internals/features/academics/courses/controller"
	authMW "academia_backend/internals/middlewares/auth"
)

func StaffCourseRoutes(r fiber.Router, db *gorm.DB) {
	ctl := courseController.NewCourseController(db)

	co := r.Group("/courses")
	{
		// reads for every staff role
		co.Get("/", authMW.OnlyRoles(constants.RoleErrorStaff("courses"), constants.StaffRoles...), ctl.List)
		co.Get("/:id", authMW.OnlyRoles(constants.RoleErrorStaff("courses"), constants.StaffRoles...), ctl.GetByID)
		co.Get("/:id/next", authMW.OnlyRoles(constants.RoleErrorStaff("courses"), constants.StaffRoles...), ctl.NextCourse)

		// writes are admin only
		co.Post("/", authMW.OnlyRoles(constants.RoleErrorAdmin("courses"), constants.AdminOnly...), ctl.Create)
		co.Post("/:id/levels", authMW.OnlyRoles(constants.RoleErrorAdmin("courses"), constants.AdminOnly...), ctl.AddLevel)
	}
}
