// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRoute "academia_backend/internals/features/academics/courses/route"
	enrollmentRoute "academia_backend/internals/features/academics/enrollments/route"
	gradeRoute "academia_backend/internals/features/academics/grades/route"
	groupRoute "academia_backend/internals/features/academics/groups/route"
	promotionRoute "academia_backend/internals/features/academics/promotion/route"
	paymentRoute "academia_backend/internals/features/finance/payments/route"
	schoolRoute "academia_backend/internals/features/people/schools/route"
	studentRoute "academia_backend/internals/features/people/students/route"
	agreementRoute "academia_backend/internals/features/pricing/agreements/route"
	settingRoute "academia_backend/internals/features/system/settings/route"
	authMW "academia_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up base routes...")
	BaseRoutes(app, db)

	// ===================== API =====================
	// Everything under /api requires a verified token; the payment
	// webhook path is skipped inside the middleware itself.
	api := app.Group("/api", authMW.AuthMiddleware())

	log.Println("[INFO] Mounting payment webhook...")
	paymentRoute.PublicPaymentRoutes(api, db)

	// ===================== STAFF / ADMIN =====================
	a := api.Group("/a")

	log.Println("[INFO] Mounting academic routes...")
	courseRoute.StaffCourseRoutes(a, db)
	groupRoute.StaffGroupRoutes(a, db)
	enrollmentRoute.StaffEnrollmentRoutes(a, db)
	gradeRoute.StaffGradeRoutes(a, db)
	promotionRoute.AdminPromotionRoutes(a, db)

	log.Println("[INFO] Mounting pricing routes...")
	agreementRoute.AdminAgreementRoutes(a, db)

	log.Println("[INFO] Mounting people routes...")
	studentRoute.StaffStudentRoutes(a, db)
	schoolRoute.StaffSchoolRoutes(a, db)

	log.Println("[INFO] Mounting system routes...")
	settingRoute.AdminSettingRoutes(a, db)

	log.Println("[INFO] Mounting finance routes...")
	paymentRoute.StaffPaymentRoutes(a, db)
}
