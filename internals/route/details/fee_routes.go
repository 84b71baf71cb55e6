package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeRoute "vti_backend/internals/features/finance/fees/route"
)

func FeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	feeRoute.AdminFeeRoutes(r, db)
}
