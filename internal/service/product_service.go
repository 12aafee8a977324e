package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/groph-checkout/pkg/uow"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ProductService struct {
	uow         uow.UOW
	productRepo ProductRepository
	l           *logrus.Entry
}

func NewProductService(u uow.UOW, l *logrus.Logger) (*ProductService, error) {
	productRepo, err := uow.GetRepositoryAs[ProductRepository](u, uow.RepositoryName(repoargs.ProductRepoName))
	if err != nil {
		return nil, err
	}
	return &ProductService{
		uow:         u,
		productRepo: productRepo,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "product",
		}),
	}, nil
}

func (p *ProductService) GetAll(ctx context.Context) ([]domain.Product, error) {
	products, err := p.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting products: %w", err)
	}
	return products, nil
}

// GetByID возвращает товар или *domain.NotFoundError.
func (p *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := p.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("product", id)
		}
		return nil, fmt.Errorf("getting product: %w", err)
	}
	return product, nil
}

// Restock пополняет склад. Ошибки domain.ErrInvalidQuantity и *domain.NotFoundError.
func (p *ProductService) Restock(ctx context.Context, id uuid.UUID, quantity int) (*domain.Product, error) {
	product, err := p.productRepo.IncreaseStock(ctx, id, quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuantity):
			return nil, domain.ErrInvalidQuantity
		case errors.Is(err, domain.ErrRecordNotFound):
			return nil, domain.NewNotFoundError("product", id)
		default:
			return nil, fmt.Errorf("restocking product: %w", err)
		}
	}
	p.l.WithFields(logrus.Fields{
		"productID": id,
		"quantity":  quantity,
		"stock":     product.Stock,
	}).Info("product restocked")
	return product, nil
}

// SeedCatalog заполняет каталог, только если в нем нет ни одного товара. Возвращает кол-во созданных товаров.
func (p *ProductService) SeedCatalog(ctx context.Context, products []repoargs.CreateProduct) (int, error) {
	count, err := p.productRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("seeding catalog: %w", err)
	}
	if count > 0 {
		p.l.WithField("count", count).Info("products already seeded")
		return 0, nil
	}

	var (
		created int
		seedErr error
	)
	p.productRepo.BatchCreate(ctx, products, func(i int, err error) {
		if err != nil {
			seedErr = errors.Join(seedErr, fmt.Errorf("product `%s`: %w", products[i].Name, err))
			return
		}
		created++
	})
	if seedErr != nil {
		return created, fmt.Errorf("seeding catalog: %w", seedErr)
	}

	p.l.WithField("count", created).Info("catalog seeded")
	return created, nil
}
