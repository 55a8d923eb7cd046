// file: internals/features/pricing/agreements/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	agreementController "academia_backend/internals/features/pricing/agreements/controller"
	authMW "academia_backend/internals/middlewares/auth"
)

func AdminAgreementRoutes(r fiber.Router, db *gorm.DB) {
	ctl := agreementController.NewAgreementController(db)

	ag := r.Group("/agreements",
		authMW.OnlyRoles(constants.RoleErrorAdmin("agreements"), constants.AdminOnly...))
	{
		ag.Post("/", ctl.Create)
		ag.Patch("/:id", ctl.Patch)
		ag.Get("/", ctl.List)
		ag.Delete("/:id", ctl.Deactivate)
	}
}
