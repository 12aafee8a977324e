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

type CustomerService struct {
	uow          uow.UOW
	customerRepo CustomerRepository
	now          func() time.Time
}

func NewCustomerService(u uow.UOW) (*CustomerService, error) {
	customerRepo, err := uow.GetRepositoryAs[CustomerRepository](u, uow.RepositoryName(repoargs.CustomerRepoName))
	if err != nil {
		return nil, err
	}
	return &CustomerService{
		uow:          u,
		customerRepo: customerRepo,
		now:          time.Now,
	}, nil
}

type CreateCustomerArgs struct {
	Email    string
	FullName string
	Phone    string
}

// Create идемпотентен по email: если покупатель с таким адресом уже есть, возвращается он, без изменений.
func (c *CustomerService) Create(ctx context.Context, args CreateCustomerArgs) (*domain.Customer, error) {
	customer := domain.NewCustomer(args.Email, args.FullName, args.Phone, c.now())

	existing, findErr := c.customerRepo.FindByEmail(ctx, customer.Email)
	if findErr == nil {
		return existing, nil
	}
	if !errors.Is(findErr, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("creating customer: %w", findErr)
	}

	created, createErr := c.customerRepo.Create(ctx, customer)
	if createErr != nil {
		// Параллельный запрос успел создать покупателя с тем же email.
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			existing, existingErr := c.customerRepo.FindByEmail(ctx, customer.Email)
			if existingErr != nil {
				return nil, fmt.Errorf("creating customer: %w", existingErr)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("creating customer: %w", createErr)
	}
	return created, nil
}

func (c *CustomerService) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	customer, err := c.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("customer", id)
		}
		return nil, fmt.Errorf("getting customer: %w", err)
	}
	return customer, nil
}
