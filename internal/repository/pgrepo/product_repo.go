package pgrepo

import (
	"context"
	"errors"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/groph-checkout/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, created_at, updated_at, name, description, price, stock, COALESCE(image_url, '')`

type ProductRepository struct {
	db uow.DBTX
}

func NewProductRepository(db uow.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (p *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := p.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at, name`)
	if err != nil {
		return nil, convertErr(err, "finding all products")
	}
	products, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		product, scanErr := scanProduct(row)
		if scanErr != nil {
			return domain.Product{}, scanErr
		}
		return *product, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "collecting products")
	}
	return products, nil
}

func (p *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	row := p.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "finding product by id `%s`", id)
	}
	return product, nil
}

// DecreaseStock атомарно списывает quantity единиц одним условным UPDATE. Если строка не обновилась,
// различает отсутствие товара (ErrRecordNotFound) и нехватку остатка (ErrInsufficientStock).
func (p *ProductRepository) DecreaseStock(ctx context.Context, id uuid.UUID, quantity int) (*domain.Product, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	row := p.db.QueryRow(ctx, `
		UPDATE products SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2
		RETURNING `+productColumns, id, quantity)

	product, err := scanProduct(row)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, convertErr(err, "decreasing stock of product `%s`", id)
	}

	exists, existsErr := p.exists(ctx, id)
	if existsErr != nil {
		return nil, existsErr
	}
	if !exists {
		return nil, convertErr(pgx.ErrNoRows, "decreasing stock of product `%s`", id)
	}
	return nil, domain.ErrInsufficientStock
}

func (p *ProductRepository) IncreaseStock(ctx context.Context, id uuid.UUID, quantity int) (*domain.Product, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	row := p.db.QueryRow(ctx, `
		UPDATE products SET stock = stock + $2, updated_at = now()
		WHERE id = $1
		RETURNING `+productColumns, id, quantity)

	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "increasing stock of product `%s`", id)
	}
	return product, nil
}

func (p *ProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := p.db.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&count); err != nil {
		return 0, convertErr(err, "counting products")
	}
	return count, nil
}

// BatchCreate вставляет товары одним батчем. Результат каждой вставки передается в fn.
func (p *ProductRepository) BatchCreate(
	ctx context.Context,
	products []repoargs.CreateProduct,
	fn repoargs.BatchExecQueryRow,
) {
	batch := new(pgx.Batch)
	for _, product := range products {
		batch.Queue(`
			INSERT INTO products (id, name, description, price, stock, image_url)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New(), product.Name, product.Description, product.Price, product.Stock, nullIfEmpty(product.ImageURL),
		)
	}

	br := p.db.SendBatch(ctx, batch)
	defer func() {
		_ = br.Close()
	}()

	for i := range products {
		_, err := br.Exec()
		fn(i, convertErr(err, "creating product `%s`", products[i].Name))
	}
}

func (p *ProductRepository) exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := p.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking product `%s` existence", id)
	}
	return exists, nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var product domain.Product
	err := row.Scan(
		&product.ID,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.ImageURL,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &product, nil
}
