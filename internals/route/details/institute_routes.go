package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	staffRoute "vti_backend/internals/features/institute/staff/route"
	studentRoute "vti_backend/internals/features/institute/students/route"
	tradeRoute "vti_backend/internals/features/institute/trades/route"
)

func InstitutePublicRoutes(r fiber.Router, db *gorm.DB) {
	tradeRoute.AllTradeRoutes(r, db)
	staffRoute.AllStaffRoutes(r, db)
}

func InstituteAdminRoutes(r fiber.Router, db *gorm.DB) {
	tradeRoute.AdminTradeRoutes(r, db)
	staffRoute.AdminStaffRoutes(r, db)
	studentRoute.AdminStudentRoutes(r, db)
}
