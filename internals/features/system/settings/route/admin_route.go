// file: internals/features/system/settings/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	settingController "academia_backend/internals/features/system/settings/controller"
	authMW "academia_backend/internals/middlewares/auth"
)

func AdminSettingRoutes(r fiber.Router, db *gorm.DB) {
	ctl := settingController.NewSettingController(db)

	st := r.Group("/settings")
	{
		st.Get("/:key", authMW.OnlyRoles(constants.RoleErrorStaff("settings"), constants.StaffRoles...), ctl.Get)
		st.Put("/:key", authMW.OnlyRoles(constants.RoleErrorAdmin("settings"), constants.AdminOnly...), ctl.Put)
	}
}
