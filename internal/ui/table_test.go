package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmperov/shopadmin/internal/models"
)

func TestTableRender(t *testing.T) {
	var buf strings.Builder
	tbl := NewTable(&buf, "NAME", "PRICE").Plain()
	tbl.AddRow("Fountain Pen", "24.99")
	tbl.AddRow("Ink", "5.00")
	tbl.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "NAME          PRICE", lines[0])
	assert.Equal(t, "Fountain Pen  24.99", lines[2])
	assert.Equal(t, "Ink           5.00", strings.TrimRight(lines[3], " "))
}

func TestTableRenderNoHeaders(t *testing.T) {
	var buf strings.Builder
	NewTable(&buf).Plain().Render()
	assert.Empty(t, buf.String())
}

func TestCellWidthIgnoresANSI(t *testing.T) {
	colored := "\x1b[32mPaid\x1b[0m"
	assert.Equal(t, 4, cellWidth(colored))
	assert.Equal(t, 4, cellWidth("Paid"))
}

func TestHeaderUnderlineMatchesTitleWidth(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	var buf strings.Builder
	Header(&buf, "Products — page 1")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	// The em-dash is one terminal cell, not its UTF-8 byte count.
	assert.Equal(t, utf8.RuneCountInString(lines[0]), utf8.RuneCountInString(lines[1]))
}

func TestKeyValueAlignment(t *testing.T) {
	var buf strings.Builder
	kv := NewKeyValue(&buf).Plain()
	kv.AddRow("Products", "12")
	kv.AddRow("Revenue", "1034.50")
	kv.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "Products:  12", lines[0])
	assert.Equal(t, "Revenue:   1034.50", lines[1])
}

func TestOrderStatusKind(t *testing.T) {
	tests := []struct {
		status models.OrderStatus
		want   ChipKind
	}{
		{models.StatusDelivered, ChipSuccess},
		{models.StatusCancelled, ChipError},
		{models.StatusPending, ChipWarning},
		{models.StatusShipped, ChipWarning},
		{models.StatusOutForDelivery, ChipWarning},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, OrderStatusKind(tc.status), "status %s", tc.status)
	}
}

func TestPaymentStatusKind(t *testing.T) {
	assert.Equal(t, ChipSuccess, PaymentStatusKind(models.PaymentPaid))
	assert.Equal(t, ChipError, PaymentStatusKind("Pending"))
}

func TestBlockedKind(t *testing.T) {
	assert.Equal(t, ChipError, BlockedKind(true))
	assert.Equal(t, ChipSuccess, BlockedKind(false))
}
