package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	galleryController "vti_backend/internals/features/media/gallery/controller"
)

// AllGalleryRoutes: public gallery listing for the website.
func AllGalleryRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := galleryController.NewGalleryItemController(db)

	g := r.Group("/gallery")
	g.Get("/", ctrl.List)
}
