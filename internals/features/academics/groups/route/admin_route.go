// file: internals/features/academics/groups/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	groupController "academia_backend/internals/features/academics/groups/controller"
	authMW "academia_backend/internals/middlewares/auth"
)

func StaffGroupRoutes(r fiber.Router, db *gorm.DB) {
	ctl := groupController.NewGroupController(db)

	gr := r.Group("/groups")
	{
		gr.Get("/", authMW.OnlyRoles(constants.RoleErrorStaff("groups"), constants.StaffRoles...), ctl.List)
		gr.Get("/:id", authMW.OnlyRoles(constants.RoleErrorStaff("groups"), constants.StaffRoles...), ctl.GetByID)

		gr.Post("/", authMW.OnlyRoles(constants.RoleErrorAdmin("groups"), constants.AdminOnly...), ctl.Create)
		gr.Patch("/:id/teacher", authMW.OnlyRoles(constants.RoleErrorAdmin("groups"), constants.AdminOnly...), ctl.AssignTeacher)

		// lifecycle
		gr.Post("/:id/submit-grades", authMW.OnlyRoles(constants.RoleErrorTeacher("group grades"), constants.TeacherAndUp...), ctl.SubmitGrades)
		gr.Post("/:id/close", authMW.OnlyRoles(constants.RoleErrorAdmin("group close"), constants.AdminOnly...), ctl.Close)
	}
}
