package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	model "vti_backend/internals/features/finance/fees/model"
)

// CreateFeeRecordInput enumerates every recognized field of fee creation; no
// dynamic key bags anywhere near the ledger.
type CreateFeeRecordInput struct {
	StudentID           *uuid.UUID
	StudentName         string
	FatherName          *string
	Mobile              *string
	Trade               string
	FeeType             model.FeeType
	AcademicYear        string
	Amount              decimal.Decimal
	InstallmentEnabled  bool
	TotalInstallments   int
	DueDate             *time.Time
	InstallmentDueDates []*time.Time
	ActorID             *uuid.UUID
}

// CreateFeeRecord creates the record, assigns its invoice number, and generates
// the installment schedule when enabled, all in one transaction.
func CreateFeeRecord(ctx context.Context, db *gorm.DB, in CreateFeeRecordInput) (*model.FeeRecordModel, error) {
	if strings.TrimSpace(in.StudentName) == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Student name is required")
	}
	if strings.TrimSpace(in.Trade) == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Trade is required")
	}
	if strings.TrimSpace(in.AcademicYear) == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Academic year is required")
	}
	if !in.FeeType.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Unknown fee type")
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Amount must be greater than zero")
	}

	totalInstallments := 1
	var installments []model.FeeInstallmentModel
	if in.InstallmentEnabled {
		totalInstallments = in.TotalInstallments
		rows, err := GenerateInstallments(in.Amount, totalInstallments, in.InstallmentDueDates)
		if err != nil {
			return nil, err
		}
		installments = rows
	}

	var rec model.FeeRecordModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		invoice, err := NextInvoiceNumber(tx, time.Now())
		if err != nil {
			return err
		}

		rec = model.FeeRecordModel{
			FeeRecordStudentID:          in.StudentID,
			FeeRecordStudentName:        strings.TrimSpace(in.StudentName),
			FeeRecordFatherName:         in.FatherName,
			FeeRecordMobile:             in.Mobile,
			FeeRecordTrade:              strings.TrimSpace(in.Trade),
			FeeRecordFeeType:            in.FeeType,
			FeeRecordAcademicYear:       strings.TrimSpace(in.AcademicYear),
			FeeRecordAmount:             in.Amount,
			FeeRecordPaidAmount:         decimal.Zero,
			FeeRecordStatus:             model.FeeStatusPending,
			FeeRecordInvoiceNumber:      invoice,
			FeeRecordInstallmentEnabled: in.InstallmentEnabled,
			FeeRecordTotalInstallments:  totalInstallments,
			FeeRecordCreatedBy:          in.ActorID,
		}
		if !in.InstallmentEnabled {
			rec.FeeRecordDueDate = in.DueDate
		}

		if err := tx.Create(&rec).Error; err != nil {
			return err
		}

		if len(installments) > 0 {
			for i := range installments {
				installments[i].FeeInstallmentFeeRecordID = rec.FeeRecordID
			}
			if err := tx.Create(&installments).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rec.Installments = installments
	return &rec, nil
}

// GetFeeRecord loads one record with its installments ordered by number.
func GetFeeRecord(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.FeeRecordModel, error) {
	var rec model.FeeRecordModel
	if err := db.WithContext(ctx).
		Preload("Installments", func(q *gorm.DB) *gorm.DB {
			return q.Order("fee_installment_number ASC")
		}).
		Where("fee_record_id = ?", id).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Fee record not found")
		}
		return nil, err
	}
	return &rec, nil
}

// DeleteFeeRecord is the administrative override: soft-deletes the record and
// its children in one transaction. Payment events stay for the audit trail.
func DeleteFeeRecord(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("fee_record_id = ?", id).Delete(&model.FeeRecordModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Fee record not found")
		}
		return tx.Where("fee_installment_fee_record_id = ?", id).
			Delete(&model.FeeInstallmentModel{}).Error
	})
}
