package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultController "vti_backend/internals/features/academics/results/controller"
)

// AllExamResultRoutes: public result board for the website.
func AllExamResultRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := resultController.NewExamResultController(db)

	g := r.Group("/results")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
}
