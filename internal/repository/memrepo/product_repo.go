package memrepo

import (
	"context"
	"slices"
	"strings"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/internal/repository/repoargs"
	"github.com/google/uuid"
)

type ProductRepository struct {
	acc accessor
}

func (p *ProductRepository) FindAll(_ context.Context) ([]domain.Product, error) {
	var products []domain.Product
	_ = p.acc.run(func(s *state) error {
		products = make([]domain.Product, 0, len(s.products))
		for _, product := range s.products {
			products = append(products, product)
		}
		return nil
	})
	slices.SortFunc(products, func(a, b domain.Product) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return products, nil
}

func (p *ProductRepository) FindByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	err := p.acc.run(func(s *state) error {
		found, ok := s.products[id]
		if !ok {
			return notFound("finding product by id `%s`", id)
		}
		product = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *ProductRepository) DecreaseStock(_ context.Context, id uuid.UUID, quantity int) (*domain.Product, error) {
	return p.mutateStock(id, func(product *domain.Product) error {
		return product.DecreaseStock(quantity)
	})
}

func (p *ProductRepository) IncreaseStock(_ context.Context, id uuid.UUID, quantity int) (*domain.Product, error) {
	return p.mutateStock(id, func(product *domain.Product) error {
		return product.IncreaseStock(quantity)
	})
}

func (p *ProductRepository) Count(_ context.Context) (int64, error) {
	var count int64
	_ = p.acc.run(func(s *state) error {
		count = int64(len(s.products))
		return nil
	})
	return count, nil
}

func (p *ProductRepository) BatchCreate(
	_ context.Context,
	products []repoargs.CreateProduct,
	fn repoargs.BatchExecQueryRow,
) {
	_ = p.acc.run(func(s *state) error {
		for i, args := range products {
			now := p.acc.now()
			product := domain.Product{
				ID:          uuid.New(),
				CreatedAt:   now,
				UpdatedAt:   now,
				Name:        args.Name,
				Description: args.Description,
				Price:       args.Price,
				Stock:       args.Stock,
				ImageURL:    args.ImageURL,
			}
			if product.Price < 0 || product.Stock < 0 {
				fn(i, domain.ErrInvalidAmount)
				continue
			}
			s.products[product.ID] = product
			fn(i, nil)
		}
		return nil
	})
}

// mutateStock проверяет и применяет изменение остатка под одной блокировкой.
func (p *ProductRepository) mutateStock(id uuid.UUID, fn func(*domain.Product) error) (*domain.Product, error) {
	var product domain.Product
	err := p.acc.run(func(s *state) error {
		found, ok := s.products[id]
		if !ok {
			return notFound("changing stock of product `%s`", id)
		}
		if err := fn(&found); err != nil {
			return err
		}
		found.UpdatedAt = p.acc.now()
		s.products[id] = found
		product = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}
