package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/pkg/uow"
	"github.com/google/uuid"
)

const customerColumns = `id, created_at, email, full_name, phone`

type CustomerRepository struct {
	db uow.DBTX
}

func NewCustomerRepository(db uow.DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create сохраняет покупателя. При занятом email вернется ErrDuplicateKey.
func (c *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	row := c.db.QueryRow(ctx, `
		INSERT INTO customers (id, created_at, email, full_name, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+customerColumns,
		customer.ID, customer.CreatedAt, customer.Email, customer.FullName, customer.Phone,
	)
	created, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "creating customer with email `%s`", customer.Email)
	}
	return created, nil
}

func (c *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	row := c.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "finding customer by id `%s`", id)
	}
	return customer, nil
}

func (c *CustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	row := c.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "finding customer by email `%s`", email)
	}
	return customer, nil
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var customer domain.Customer
	if err := row.Scan(
		&customer.ID,
		&customer.CreatedAt,
		&customer.Email,
		&customer.FullName,
		&customer.Phone,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &customer, nil
}
