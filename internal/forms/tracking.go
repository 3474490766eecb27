package forms

import (
	"time"

	"github.com/dmperov/shopadmin/internal/models"
)

// TrackingDraft stages a shipment tracking update for one order. It is seeded
// from the order's current tracking data (date portion only for the estimate).
type TrackingDraft struct {
	lifecycle

	TrackingNumber    string
	EstimatedDelivery string // YYYY-MM-DD

	errs FieldErrors
}

func TrackingDraftFrom(o models.Order) *TrackingDraft {
	return &TrackingDraft{
		lifecycle:         lifecycle{state: StateEditing},
		TrackingNumber:    o.TrackingNumber,
		EstimatedDelivery: o.EstimatedDeliveryDate(),
		errs:              FieldErrors{},
	}
}

func (d *TrackingDraft) SetTrackingNumber(v string) {
	d.TrackingNumber = v
	d.errs.Clear("trackingNumber")
	d.edit()
}

func (d *TrackingDraft) SetEstimatedDelivery(v string) {
	d.EstimatedDelivery = v
	d.errs.Clear("estimatedDelivery")
	d.edit()
}

func (d *TrackingDraft) Errors() FieldErrors { return d.errs }

func (d *TrackingDraft) Validate() FieldErrors {
	errs := FieldErrors{}

	if trimmed(d.TrackingNumber) == "" {
		errs["trackingNumber"] = "Tracking number is required"
	}
	if d.EstimatedDelivery != "" {
		if _, err := time.Parse("2006-01-02", d.EstimatedDelivery); err != nil {
			errs["estimatedDelivery"] = "Use YYYY-MM-DD"
		}
	}

	d.errs = errs
	return errs
}

func (d *TrackingDraft) BeginSubmit() error {
	if err := d.beginSubmit(); err != nil {
		return err
	}
	if !d.Validate().Empty() {
		d.endSubmit()
		return ErrInvalid
	}
	return nil
}

func (d *TrackingDraft) EndSubmit() { d.endSubmit() }

// Payload is the JSON body for the tracking endpoint.
func (d *TrackingDraft) Payload() map[string]string {
	return map[string]string{
		"trackingNumber":    d.TrackingNumber,
		"estimatedDelivery": d.EstimatedDelivery,
	}
}
