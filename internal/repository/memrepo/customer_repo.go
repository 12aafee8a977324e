package memrepo

import (
	"context"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/google/uuid"
)

type CustomerRepository struct {
	acc accessor
}

func (c *CustomerRepository) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	created := *customer
	err := c.acc.run(func(s *state) error {
		for _, existing := range s.customers {
			if existing.Email == customer.Email {
				return duplicate("creating customer with email `%s`", customer.Email)
			}
		}
		s.customers[created.ID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *CustomerRepository) FindByID(_ context.Context, id uuid.UUID) (*domain.Customer, error) {
	return c.findOne(func(customer domain.Customer) bool {
		return customer.ID == id
	}, "finding customer by id `%s`", id)
}

func (c *CustomerRepository) FindByEmail(_ context.Context, email string) (*domain.Customer, error) {
	return c.findOne(func(customer domain.Customer) bool {
		return customer.Email == email
	}, "finding customer by email `%s`", email)
}

func (c *CustomerRepository) findOne(
	match func(domain.Customer) bool,
	format string,
	args ...any,
) (*domain.Customer, error) {
	var customer domain.Customer
	err := c.acc.run(func(s *state) error {
		for _, existing := range s.customers {
			if match(existing) {
				customer = existing
				return nil
			}
		}
		return notFound(format, args...)
	})
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
