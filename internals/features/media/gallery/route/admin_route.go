package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	galleryController "vti_backend/internals/features/media/gallery/controller"
)

func AdminGalleryRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := galleryController.NewGalleryItemController(db)

	g := r.Group("/gallery")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
