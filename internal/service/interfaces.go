package service

import (
	"context"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/internal/repository/repoargs"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	DecreaseStock(ctx context.Context, id uuid.UUID, quantity int) (*domain.Product, error)
	IncreaseStock(ctx context.Context, id uuid.UUID, quantity int) (*domain.Product, error)
	Count(ctx context.Context) (int64, error)
	BatchCreate(ctx context.Context, products []repoargs.CreateProduct, fn repoargs.BatchExecQueryRow)
}

type TransactionRepository interface {
	Create(ctx context.Context, tr *domain.Transaction) (*domain.Transaction, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	UpdateStatusIfPending(ctx context.Context, args repoargs.UpdateTransactionStatus) (*domain.Transaction, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
}

type DeliveryRepository interface {
	Create(ctx context.Context, delivery *domain.Delivery) (*domain.Delivery, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Delivery, error)
	FindByTransactionID(ctx context.Context, transactionID uuid.UUID) (*domain.Delivery, error)
	// UpdateStatus вернет ErrRecordNotFound, если доставки нет или ее статус уже не равен args.From.
	UpdateStatus(ctx context.Context, args repoargs.UpdateDeliveryStatus) (*domain.Delivery, error)
}

// PaymentGateway порт платежного шлюза для оркестратора оплаты.
type PaymentGateway interface {
	// Pay списывает сумму. Отказ возвращается как *domain.PaymentFailedError.
	Pay(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error)
	// GetTransactionStatus возвращает nil, если запись шлюза прочитать не удалось.
	GetTransactionStatus(ctx context.Context, externalID string) *domain.GatewayTransaction
}
