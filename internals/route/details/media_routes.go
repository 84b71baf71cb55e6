package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	galleryRoute "vti_backend/internals/features/media/gallery/route"
)

func MediaPublicRoutes(r fiber.Router, db *gorm.DB) {
	galleryRoute.AllGalleryRoutes(r, db)
}

func MediaAdminRoutes(r fiber.Router, db *gorm.DB) {
	galleryRoute.AdminGalleryRoutes(r, db)
}
