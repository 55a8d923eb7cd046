// file: internals/features/academics/promotion/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	promotionController "academia_backend/internals/features/academics/promotion/controller"
	authMW "academia_backend/internals/middlewares/auth"
)

func AdminPromotionRoutes(r fiber.Router, db *gorm.DB) {
	ctl := promotionController.NewPromotionController(db)

	gr := r.Group("/promotion")
	{
		gr.Get("/candidates/:course_id", authMW.OnlyRoles(constants.RoleErrorStaff("promotion"), constants.StaffRoles...), ctl.GetCandidates)
		gr.Post("/auto", authMW.OnlyRoles(constants.RoleErrorAdmin("promotion"), constants.AdminOnly...), ctl.AutoPromote)
	}
}
