package ui

import (
	"github.com/fatih/color"

	"github.com/dmperov/shopadmin/internal/models"
)

// ChipKind mirrors the highlight severity used across the list views.
type ChipKind int

const (
	ChipDefault ChipKind = iota
	ChipSuccess
	ChipError
	ChipWarning
)

var chipColors = map[ChipKind]*color.Color{
	ChipDefault: color.New(color.FgWhite),
	ChipSuccess: color.New(color.FgGreen),
	ChipError:   color.New(color.FgRed),
	ChipWarning: color.New(color.FgYellow),
}

// Chip renders text in the color matching kind. With color disabled the text
// passes through unchanged.
func Chip(text string, kind ChipKind) string {
	c, ok := chipColors[kind]
	if !ok {
		c = chipColors[ChipDefault]
	}
	return c.Sprint(text)
}

// OrderStatusKind maps an order status to its chip severity: Delivered is
// success, Cancelled is error, everything in flight is warning.
func OrderStatusKind(status models.OrderStatus) ChipKind {
	switch status {
	case models.StatusDelivered:
		return ChipSuccess
	case models.StatusCancelled:
		return ChipError
	default:
		return ChipWarning
	}
}

// PaymentStatusKind maps a payment status string to its chip severity.
func PaymentStatusKind(status string) ChipKind {
	if status == models.PaymentPaid {
		return ChipSuccess
	}
	return ChipError
}

// BlockedKind colors the user blocked flag: blocked is error, active is
// success.
func BlockedKind(blocked bool) ChipKind {
	if blocked {
		return ChipError
	}
	return ChipSuccess
}

// ActiveKind colors a product or category active flag.
func ActiveKind(active bool) ChipKind {
	if active {
		return ChipSuccess
	}
	return ChipDefault
}
