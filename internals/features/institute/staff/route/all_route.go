package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	staffController "vti_backend/internals/features/institute/staff/controller"
)

// AllStaffRoutes: public faculty listing for the website.
func AllStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := staffController.NewStaffMemberController(db)

	g := r.Group("/staff")
	g.Get("/", ctrl.List)
}
