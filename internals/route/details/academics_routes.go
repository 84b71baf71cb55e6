package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultRoute "vti_backend/internals/features/academics/results/route"
)

func AcademicsPublicRoutes(r fiber.Router, db *gorm.DB) {
	resultRoute.AllExamResultRoutes(r, db)
}

func AcademicsAdminRoutes(r fiber.Router, db *gorm.DB) {
	resultRoute.AdminExamResultRoutes(r, db)
}
