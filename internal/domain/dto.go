package domain

type TransactionStatusType string

const (
	TransactionStatusPending  TransactionStatusType = "PENDING"
	TransactionStatusApproved TransactionStatusType = "APPROVED"
	TransactionStatusDeclined TransactionStatusType = "DECLINED"
)

type DeliveryStatusType string

const (
	DeliveryStatusPending   DeliveryStatusType = "PENDING"
	DeliveryStatusShipped   DeliveryStatusType = "SHIPPED"
	DeliveryStatusDelivered DeliveryStatusType = "DELIVERED"
)

// AcceptanceToken предподписанный токен согласия с условиями платежного шлюза.
type AcceptanceToken struct {
	Token     string
	Permalink string
	Type      string
}

type TokenizeCardArgs struct {
	Number     string
	CVC        string
	ExpMonth   string
	ExpYear    string
	CardHolder string
}

type CardToken struct {
	ID        string
	Brand     string
	LastFour  string
	ExpiresAt string
}

// PaymentRequest запрос на списание. Сумма в минимальных единицах валюты (центах).
// Пустой CustomerEmail означает, что шлюз подставит адрес по умолчанию.
type PaymentRequest struct {
	AmountInCents int64
	CardToken     string
	CustomerEmail string
}

// PaymentResult успешный итог платежа.
type PaymentResult struct {
	ExternalID string
	Status     string
}

// GatewayTransaction состояние транзакции на стороне платежного шлюза.
type GatewayTransaction struct {
	ID            string
	Status        string
	StatusMessage string
	Reference     string
	AmountInCents int64
	Currency      string
}
