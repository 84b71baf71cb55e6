package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "vti_backend/internals/middlewares/auth"
	routeDetails "vti_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (JWT)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Fee routes...")
	routeDetails.FeeAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Institute routes...")
	routeDetails.InstitutePublicRoutes(public, db)
	routeDetails.InstituteAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Academics routes...")
	routeDetails.AcademicsPublicRoutes(public, db)
	routeDetails.AcademicsAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Media routes...")
	routeDetails.MediaPublicRoutes(public, db)
	routeDetails.MediaAdminRoutes(admin, db)
}
