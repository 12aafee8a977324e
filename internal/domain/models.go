package domain

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	Description string
	Price       int64
	Stock       int
	ImageURL    string
}

type Transaction struct {
	ID                    uuid.UUID
	CreatedAt             time.Time
	UpdatedAt             time.Time
	ProductID             uuid.UUID
	CustomerID            *uuid.UUID
	ProductPrice          int64
	BaseCharge            int64
	ShippingCost          int64
	TotalAmount           int64
	Status                TransactionStatusType
	ExternalTransactionID string
}

type Customer struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Email     string
	FullName  string
	Phone     string
}

type Delivery struct {
	ID            uuid.UUID
	CreatedAt     time.Time
	TransactionID uuid.UUID
	CustomerID    uuid.UUID
	Address       string
	City          string
	Department    string
	ZipCode       string
	Instructions  string
	Status        DeliveryStatusType
}
