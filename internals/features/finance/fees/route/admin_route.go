package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "vti_backend/internals/features/finance/fees/controller"
	"vti_backend/internals/middlewares"
)

// AdminFeeRoutes mounts the fee ledger under the admin group.
// Static paths (summary, dues-risk) are registered before /:id.
func AdminFeeRoutes(r fiber.Router, db *gorm.DB) {
	records := feeController.NewFeeRecordController(db)
	payments := feeController.NewFeePaymentController(db)
	summary := feeController.NewFeeSummaryController(db)

	g := r.Group("/fees")

	g.Get("/summary", summary.Summary)
	g.Get("/dues-risk", summary.DuesRisk)

	g.Post("/", middlewares.AdminWriteRateLimiter(), records.Create)
	g.Get("/", records.List)
	g.Get("/:id", records.GetByID)
	g.Delete("/:id", middlewares.AdminWriteRateLimiter(), records.Delete)

	g.Post("/:id/payments", middlewares.AdminWriteRateLimiter(), payments.Apply)
	g.Get("/:id/payments", payments.ListByRecord)
}
