package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	seqKeyInvoice = "invoice"
	seqKeyReceipt = "receipt"

	invoicePrefix = "INV"
	receiptPrefix = "RCP"
)

// NextInvoiceNumber issues the next invoice number inside tx. Must run in the
// same transaction that creates the fee record.
func NextInvoiceNumber(tx *gorm.DB, now time.Time) (string, error) {
	return nextNumber(tx, seqKeyInvoice, invoicePrefix, now)
}

// NextReceiptNumber issues the next receipt number inside tx. Called once per
// fee record, on the first payment that moves it out of pending.
func NextReceiptNumber(tx *gorm.DB, now time.Time) (string, error) {
	return nextNumber(tx, seqKeyReceipt, receiptPrefix, now)
}

// nextNumber bumps the (key, year) counter under a row lock so numbers are
// unique and monotonic even across concurrent transactions.
func nextNumber(tx *gorm.DB, key, prefix string, now time.Time) (string, error) {
	year := now.Year()

	if err := tx.Exec(`
		INSERT INTO number_sequences (number_sequence_key, number_sequence_year, number_sequence_last_value)
		VALUES (?, ?, 0)
		ON CONFLICT (number_sequence_key, number_sequence_year) DO NOTHING
	`, key, year).Error; err != nil {
		return "", err
	}

	var next int64
	if err := tx.Raw(`
		UPDATE number_sequences
		   SET number_sequence_last_value = number_sequence_last_value + 1
		 WHERE number_sequence_key = ? AND number_sequence_year = ?
		RETURNING number_sequence_last_value
	`, key, year).Scan(&next).Error; err != nil {
		return "", err
	}

	return FormatNumber(prefix, year, next), nil
}

// FormatNumber renders e.g. INV-2026-00042. Consumers treat the result as an
// opaque, stable string.
func FormatNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%05d", prefix, year, seq)
}
