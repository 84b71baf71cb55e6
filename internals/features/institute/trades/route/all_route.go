package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tradeController "vti_backend/internals/features/institute/trades/controller"
)

// AllTradeRoutes: public read-only listing for the website.
func AllTradeRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := tradeController.NewTradeController(db)

	g := r.Group("/trades")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
}
