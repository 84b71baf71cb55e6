package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultController "vti_backend/internals/features/academics/results/controller"
)

func AdminExamResultRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := resultController.NewExamResultController(db)

	g := r.Group("/results")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
