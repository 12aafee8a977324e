package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidDeliveryStatus = errors.New("invalid delivery status transition")

type NewDeliveryArgs struct {
	TransactionID uuid.UUID
	CustomerID    uuid.UUID
	Address       string
	City          string
	Department    string
	ZipCode       string
	Instructions  string
}

func NewDelivery(args NewDeliveryArgs, now time.Time) *Delivery {
	return &Delivery{
		ID:            uuid.New(),
		CreatedAt:     now,
		TransactionID: args.TransactionID,
		CustomerID:    args.CustomerID,
		Address:       args.Address,
		City:          args.City,
		Department:    args.Department,
		ZipCode:       args.ZipCode,
		Instructions:  args.Instructions,
		Status:        DeliveryStatusPending,
	}
}

// Ship PENDING -> SHIPPED.
func (d *Delivery) Ship() error {
	if d.Status != DeliveryStatusPending {
		return ErrInvalidDeliveryStatus
	}
	d.Status = DeliveryStatusShipped
	return nil
}

// MarkDelivered SHIPPED -> DELIVERED.
func (d *Delivery) MarkDelivered() error {
	if d.Status != DeliveryStatusShipped {
		return ErrInvalidDeliveryStatus
	}
	d.Status = DeliveryStatusDelivered
	return nil
}
