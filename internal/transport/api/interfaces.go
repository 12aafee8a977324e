package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/internal/service"
	"github.com/google/uuid"
)

type ProductServicer interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	Restock(ctx context.Context, id uuid.UUID, quantity int) (*domain.Product, error)
}

type CustomerServicer interface {
	Create(ctx context.Context, args service.CreateCustomerArgs) (*domain.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
}

type DeliveryServicer interface {
	Create(ctx context.Context, args service.CreateDeliveryArgs) (*domain.Delivery, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Delivery, error)
	GetByTransaction(ctx context.Context, transactionID uuid.UUID) (*domain.Delivery, error)
	Ship(ctx context.Context, id uuid.UUID) (*domain.Delivery, error)
	MarkDelivered(ctx context.Context, id uuid.UUID) (*domain.Delivery, error)
}

type TransactionServicer interface {
	Create(ctx context.Context, args service.CreateTransactionArgs) (*domain.Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	Pay(ctx context.Context, id uuid.UUID, cardToken string) (*domain.Transaction, error)
	GatewayStatus(ctx context.Context, id uuid.UUID) (*domain.GatewayTransaction, error)
}

// WompiServicer операции шлюза, которые нужны фронтенду до оплаты.
type WompiServicer interface {
	GetAcceptanceToken(ctx context.Context) (*domain.AcceptanceToken, error)
	TokenizeCard(ctx context.Context, args domain.TokenizeCardArgs) (*domain.CardToken, error)
}
