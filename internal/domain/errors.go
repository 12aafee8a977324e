package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidAmount      = errors.New("amount must not be negative")
	ErrAlreadyProcessed   = errors.New("transaction already processed")
	ErrPaymentFailed      = errors.New("payment failed")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// NotFoundError сообщает, какая именно сущность не найдена. Сводится к ErrRecordNotFound.
type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func NewNotFoundError(entity string, id uuid.UUID) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrRecordNotFound
}

// PaymentFailedError платеж не прошел. Message содержит сообщение процессинга для клиента.
type PaymentFailedError struct {
	ExternalID string
	Status     string
	Message    string
}

func (e *PaymentFailedError) Error() string {
	return e.Message
}

func (e *PaymentFailedError) Is(target error) bool {
	return target == ErrPaymentFailed
}

// CardTokenizationError шлюз отказался токенизировать карту.
type CardTokenizationError struct {
	Message string
}

func (e *CardTokenizationError) Error() string {
	return e.Message
}
