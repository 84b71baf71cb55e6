package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "INV-2026-00042", FormatNumber("INV", 2026, 42))
	assert.Equal(t, "RCP-2026-00001", FormatNumber("RCP", 2026, 1))
	// sequences past five digits still render, just wider
	assert.Equal(t, "INV-2026-123456", FormatNumber("INV", 2026, 123456))
}
