// file: internals/features/academics/grades/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	gradeController "academia_backend/internals/features/academics/grades/controller"
	authMW "academia_backend/internals/middlewares/auth"
)

// Grade routes hang off the enrollment resource; admin bypass of the
// grading switch is handled inside the controller, not here.
func StaffGradeRoutes(r fiber.Router, db *gorm.DB) {
	ctl := gradeController.NewGradeController(db)

	gr := r.Group("/enrollments/:id")
	{
		gr.Get("/grades", authMW.OnlyRoles(constants.RoleErrorStaff("grades"), constants.StaffRoles...), ctl.ListByEnrollment)
		gr.Get("/report-card", authMW.OnlyRoles(constants.RoleErrorStaff("report card"), constants.StaffRoles...), ctl.ReportCard)

		gr.Post("/grades", authMW.OnlyRoles(constants.RoleErrorTeacher("grades"), constants.TeacherAndUp...), ctl.SaveGrades)
	}
}
