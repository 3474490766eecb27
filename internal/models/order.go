package models

import (
	"bytes"
	"encoding/json"
)

// OrderStatus is one of the fixed order workflow states. The set is owned by
// the server; the client only restricts which transitions it will request.
type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusConfirmed      OrderStatus = "Confirmed"
	StatusShipped        OrderStatus = "Shipped"
	StatusOutForDelivery OrderStatus = "Out for delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

// AllowedStatuses lists the full status vocabulary in workflow order.
func AllowedStatuses() []OrderStatus {
	return []OrderStatus{
		StatusPending,
		StatusConfirmed,
		StatusShipped,
		StatusOutForDelivery,
		StatusDelivered,
		StatusCancelled,
	}
}

// Valid reports whether s belongs to the allowed vocabulary.
func (s OrderStatus) Valid() bool {
	for _, a := range AllowedStatuses() {
		if s == a {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition may be requested from s.
// Cancelled orders are frozen: status changes and tracking edits are refused
// client-side without issuing a request.
func (s OrderStatus) Terminal() bool {
	return s == StatusCancelled
}

// ValidTransition reports whether an order may be updated from s to target.
// Terminal orders admit no transition, and targets outside the allowed
// vocabulary are rejected. An order may re-assert its current status, which
// is what a tracking edit does.
func (s OrderStatus) ValidTransition(target OrderStatus) bool {
	return !s.Terminal() && target.Valid()
}

// PaymentPaid is the only payment status rendered as a success chip.
const PaymentPaid = "Paid"

// UserRef is an order's customer reference, joined or bare depending on the
// endpoint, same as CategoryRef.
type UserRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *UserRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = UserRef{ID: id}
		return nil
	}
	type ref UserRef
	var v ref
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = UserRef(v)
	return nil
}

type OrderItem struct {
	Product  string  `json:"product"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type ShippingAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type Order struct {
	ID                string          `json:"_id"`
	User              UserRef         `json:"user"`
	OrderItems        []OrderItem     `json:"orderItems"`
	ShippingAddress   ShippingAddress `json:"shippingAddress"`
	ItemsPrice        float64         `json:"itemsPrice"`
	TotalPrice        float64         `json:"totalPrice"`
	PaymentStatus     string          `json:"paymentStatus"`
	OrderStatus       OrderStatus     `json:"orderStatus"`
	TrackingNumber    string          `json:"trackingNumber"`
	EstimatedDelivery string          `json:"estimatedDelivery"`
}

// EstimatedDeliveryDate returns the date portion of the stored timestamp,
// which is what the tracking form edits.
func (o Order) EstimatedDeliveryDate() string {
	if i := bytes.IndexByte([]byte(o.EstimatedDelivery), 'T'); i >= 0 {
		return o.EstimatedDelivery[:i]
	}
	return o.EstimatedDelivery
}
