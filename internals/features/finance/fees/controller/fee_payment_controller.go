package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "vti_backend/internals/features/finance/fees/dto"
	model "vti_backend/internals/features/finance/fees/model"
	service "vti_backend/internals/features/finance/fees/service"
	helper "vti_backend/internals/helpers"
	helperAuth "vti_backend/internals/helpers/auth"
)

type FeePaymentController struct {
	DB *gorm.DB
}

func NewFeePaymentController(db *gorm.DB) *FeePaymentController {
	return &FeePaymentController{DB: db}
}

/* ======================= APPLY ======================= */
// POST /api/a/fees/:id/payments
func (h *FeePaymentController) Apply(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}
	feeID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.ApplyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(c, req); err != nil {
		return err
	}

	paidAt := time.Now()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	res, err := service.ApplyPayment(c.UserContext(), h.DB, feeID, service.PaymentInput{
		Amount:        req.Amount,
		Method:        req.Method,
		PaidAt:        paidAt,
		InstallmentID: req.InstallmentID,
		Note:          req.Note,
		ActorID:       &adminID,
	})
	if err != nil {
		return err
	}

	resp := dto.ApplyPaymentResponse{
		Record:        dto.FromFeeRecordModel(res.Record),
		Payment:       dto.FromPaymentModel(res.Payment),
		ReceiptNumber: res.ReceiptNumber,
	}
	if res.Installment != nil {
		inst := dto.FromInstallmentModel(*res.Installment)
		resp.Installment = &inst
	}

	return helper.JsonCreated(c, "Payment recorded", resp)
}

/* ======================== LIST BY RECORD ======================== */
// GET /api/a/fees/:id/payments
func (h *FeePaymentController) ListByRecord(c *fiber.Ctx) error {
	feeID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	// 404 when the record itself is unknown
	if _, err := service.GetFeeRecord(c.UserContext(), h.DB, feeID); err != nil {
		return err
	}

	var rows []model.FeePaymentModel
	if err := h.DB.
		Where("fee_payment_fee_record_id = ?", feeID).
		Order("fee_payment_paid_at DESC, fee_payment_created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromPaymentModels(rows))
}
