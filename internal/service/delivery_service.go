package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/groph-checkout/pkg/uow"
	"github.com/google/uuid"
)

type DeliveryService struct {
	uow          uow.UOW
	deliveryRepo DeliveryRepository
	trRepo       TransactionRepository
	customerRepo CustomerRepository
	now          func() time.Time
}

func NewDeliveryService(u uow.UOW) (*DeliveryService, error) {
	deliveryRepo, err := uow.GetRepositoryAs[DeliveryRepository](u, uow.RepositoryName(repoargs.DeliveryRepoName))
	if err != nil {
		return nil, err
	}
	trRepo, err := uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if err != nil {
		return nil, err
	}
	customerRepo, err := uow.GetRepositoryAs[CustomerRepository](u, uow.RepositoryName(repoargs.CustomerRepoName))
	if err != nil {
		return nil, err
	}
	return &DeliveryService{
		uow:          u,
		deliveryRepo: deliveryRepo,
		trRepo:       trRepo,
		customerRepo: customerRepo,
		now:          time.Now,
	}, nil
}

type CreateDeliveryArgs struct {
	TransactionID uuid.UUID
	CustomerID    uuid.UUID
	Address       string
	City          string
	Department    string
	ZipCode       string
	Instructions  string
}

// Create идемпотентен по транзакции: повторный вызов для той же транзакции вернет уже созданную доставку.
// Транзакция и покупатель должны существовать, иначе *domain.NotFoundError.
func (d *DeliveryService) Create(ctx context.Context, args CreateDeliveryArgs) (*domain.Delivery, error) {
	existing, findErr := d.deliveryRepo.FindByTransactionID(ctx, args.TransactionID)
	if findErr == nil {
		return existing, nil
	}
	if !errors.Is(findErr, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("creating delivery: %w", findErr)
	}

	if _, err := d.trRepo.FindByID(ctx, args.TransactionID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("transaction", args.TransactionID)
		}
		return nil, fmt.Errorf("creating delivery: %w", err)
	}
	if _, err := d.customerRepo.FindByID(ctx, args.CustomerID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("customer", args.CustomerID)
		}
		return nil, fmt.Errorf("creating delivery: %w", err)
	}

	delivery := domain.NewDelivery(domain.NewDeliveryArgs{
		TransactionID: args.TransactionID,
		CustomerID:    args.CustomerID,
		Address:       args.Address,
		City:          args.City,
		Department:    args.Department,
		ZipCode:       args.ZipCode,
		Instructions:  args.Instructions,
	}, d.now())

	created, createErr := d.deliveryRepo.Create(ctx, delivery)
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			existing, existingErr := d.deliveryRepo.FindByTransactionID(ctx, args.TransactionID)
			if existingErr != nil {
				return nil, fmt.Errorf("creating delivery: %w", existingErr)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("creating delivery: %w", createErr)
	}
	return created, nil
}

func (d *DeliveryService) Get(ctx context.Context, id uuid.UUID) (*domain.Delivery, error) {
	delivery, err := d.deliveryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("delivery", id)
		}
		return nil, fmt.Errorf("getting delivery: %w", err)
	}
	return delivery, nil
}

func (d *DeliveryService) GetByTransaction(ctx context.Context, transactionID uuid.UUID) (*domain.Delivery, error) {
	delivery, err := d.deliveryRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("delivery for transaction", transactionID)
		}
		return nil, fmt.Errorf("getting delivery by transaction: %w", err)
	}
	return delivery, nil
}

// Ship переводит доставку PENDING -> SHIPPED.
func (d *DeliveryService) Ship(ctx context.Context, id uuid.UUID) (*domain.Delivery, error) {
	return d.advance(ctx, id, (*domain.Delivery).Ship)
}

// MarkDelivered переводит доставку SHIPPED -> DELIVERED.
func (d *DeliveryService) MarkDelivered(ctx context.Context, id uuid.UUID) (*domain.Delivery, error) {
	return d.advance(ctx, id, (*domain.Delivery).MarkDelivered)
}

// advance применяет переход к загруженной доставке и сохраняет его условной записью.
// Если статус успел измениться между чтением и записью, вернет domain.ErrInvalidDeliveryStatus.
func (d *DeliveryService) advance(
	ctx context.Context,
	id uuid.UUID,
	transition func(*domain.Delivery) error,
) (*domain.Delivery, error) {
	delivery, err := d.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	from := delivery.Status
	if err = transition(delivery); err != nil {
		return nil, fmt.Errorf("delivery `%s` in status %s: %w", id, from, err)
	}

	updated, err := d.deliveryRepo.UpdateStatus(ctx, repoargs.UpdateDeliveryStatus{
		ID:   id,
		From: from,
		To:   delivery.Status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("delivery `%s` changed concurrently: %w", id, domain.ErrInvalidDeliveryStatus)
		}
		return nil, fmt.Errorf("updating delivery status: %w", err)
	}
	return updated, nil
}
