package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTicketNumber(t *testing.T) {
	assert.Equal(t, "GT2025-000001", FormatTicketNumber("GT", 2025, 1, 6))
	assert.Equal(t, "GT2026-000042", FormatTicketNumber("GT", 2026, 42, 6))
	assert.Equal(t, "GT2025-1000000", FormatTicketNumber("GT", 2025, 1000000, 6))
	assert.Equal(t, "EV2025-0007", FormatTicketNumber("EV", 2025, 7, 4))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.COM "))
	assert.Equal(t, "a@x.com", NormalizeEmail("a@x.com"))
	assert.Equal(t, "", NormalizeEmail("   "))
}
