package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "vti_backend/internals/features/institute/students/controller"
)

func AdminStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	g := r.Group("/students")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
