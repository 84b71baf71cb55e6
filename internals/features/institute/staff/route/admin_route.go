package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	staffController "vti_backend/internals/features/institute/staff/controller"
)

func AdminStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := staffController.NewStaffMemberController(db)

	g := r.Group("/staff")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
