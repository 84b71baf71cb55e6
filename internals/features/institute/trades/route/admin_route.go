package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tradeController "vti_backend/internals/features/institute/trades/controller"
)

func AdminTradeRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := tradeController.NewTradeController(db)

	g := r.Group("/trades")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
