package domain

import (
	"time"

	"github.com/google/uuid"
)

type NewTransactionArgs struct {
	ProductID    uuid.UUID
	CustomerID   *uuid.UUID
	ProductPrice int64
	BaseCharge   int64
	ShippingCost int64
}

// NewTransaction создает транзакцию в статусе PENDING. Итоговая сумма вычисляется один раз здесь
// и дальше не пересчитывается.
func NewTransaction(args NewTransactionArgs, now time.Time) (*Transaction, error) {
	total, err := TotalAmount(args.ProductPrice, args.BaseCharge, args.ShippingCost)
	if err != nil {
		return nil, err
	}
	return &Transaction{
		ID:           uuid.New(),
		CreatedAt:    now,
		UpdatedAt:    now,
		ProductID:    args.ProductID,
		CustomerID:   args.CustomerID,
		ProductPrice: args.ProductPrice,
		BaseCharge:   args.BaseCharge,
		ShippingCost: args.ShippingCost,
		TotalAmount:  total,
		Status:       TransactionStatusPending,
	}, nil
}

func (t *Transaction) IsPending() bool {
	return t.Status == TransactionStatusPending
}

// Approve переводит PENDING в APPROVED. Для любого другого статуса ErrAlreadyProcessed.
func (t *Transaction) Approve(externalID string, now time.Time) error {
	return t.finalize(TransactionStatusApproved, externalID, now)
}

// Decline переводит PENDING в DECLINED. Для любого другого статуса ErrAlreadyProcessed.
func (t *Transaction) Decline(externalID string, now time.Time) error {
	return t.finalize(TransactionStatusDeclined, externalID, now)
}

// Transition применяет финальный статус, пришедший извне (например из хранилища).
func (t *Transaction) Transition(status TransactionStatusType, externalID string, now time.Time) error {
	switch status {
	case TransactionStatusApproved, TransactionStatusDeclined:
		return t.finalize(status, externalID, now)
	default:
		return ErrAlreadyProcessed
	}
}

func (t *Transaction) finalize(status TransactionStatusType, externalID string, now time.Time) error {
	if !t.IsPending() {
		return ErrAlreadyProcessed
	}
	t.Status = status
	if externalID != "" {
		t.ExternalTransactionID = externalID
	}
	t.UpdatedAt = now
	return nil
}
