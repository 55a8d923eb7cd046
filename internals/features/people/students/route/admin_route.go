// file: internals/features/people/students/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	studentController "academia_backend/internals/features/people/students/controller"
	authMW "academia_backend/internals/middlewares/auth"
)

func StaffStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(db)

	st := r.Group("/students",
		authMW.OnlyRoles(constants.RoleErrorStaff("students"), constants.StaffRoles...))
	{
		st.Get("/", ctl.List)
		st.Get("/:id", ctl.GetByID)
	}
}
