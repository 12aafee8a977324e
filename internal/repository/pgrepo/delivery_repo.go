package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/groph-checkout/pkg/uow"
	"github.com/google/uuid"
)

const deliveryColumns = `id, created_at, transaction_id, customer_id, address, city, department, zip_code,
	COALESCE(instructions, ''), status`

type DeliveryRepository struct {
	db uow.DBTX
}

func NewDeliveryRepository(db uow.DBTX) *DeliveryRepository {
	return &DeliveryRepository{db: db}
}

// Create сохраняет доставку. Для транзакции допускается только одна доставка, повтор вернет ErrDuplicateKey.
func (d *DeliveryRepository) Create(ctx context.Context, delivery *domain.Delivery) (*domain.Delivery, error) {
	row := d.db.QueryRow(ctx, `
		INSERT INTO deliveries (id, created_at, transaction_id, customer_id, address, city, department, zip_code,
			instructions, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+deliveryColumns,
		delivery.ID, delivery.CreatedAt, delivery.TransactionID, delivery.CustomerID, delivery.Address,
		delivery.City, delivery.Department, delivery.ZipCode, nullIfEmpty(delivery.Instructions),
		string(delivery.Status),
	)
	created, err := scanDelivery(row)
	if err != nil {
		return nil, convertErr(err, "creating delivery for transaction `%s`", delivery.TransactionID)
	}
	return created, nil
}

func (d *DeliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Delivery, error) {
	row := d.db.QueryRow(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE id = $1`, id)
	delivery, err := scanDelivery(row)
	if err != nil {
		return nil, convertErr(err, "finding delivery by id `%s`", id)
	}
	return delivery, nil
}

func (d *DeliveryRepository) FindByTransactionID(ctx context.Context, transactionID uuid.UUID) (*domain.Delivery, error) {
	row := d.db.QueryRow(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE transaction_id = $1`, transactionID)
	delivery, err := scanDelivery(row)
	if err != nil {
		return nil, convertErr(err, "finding delivery by transaction id `%s`", transactionID)
	}
	return delivery, nil
}

// UpdateStatus условное обновление: строка меняется, только если статус все еще равен args.From.
func (d *DeliveryRepository) UpdateStatus(
	ctx context.Context,
	args repoargs.UpdateDeliveryStatus,
) (*domain.Delivery, error) {
	row := d.db.QueryRow(ctx, `
		UPDATE deliveries SET status = $3
		WHERE id = $1 AND status = $2
		RETURNING `+deliveryColumns,
		args.ID, string(args.From), string(args.To),
	)
	delivery, err := scanDelivery(row)
	if err != nil {
		return nil, convertErr(err, "updating delivery `%s` from status %s", args.ID, args.From)
	}
	return delivery, nil
}

func scanDelivery(row rowScanner) (*domain.Delivery, error) {
	var (
		delivery domain.Delivery
		status   string
	)
	if err := row.Scan(
		&delivery.ID,
		&delivery.CreatedAt,
		&delivery.TransactionID,
		&delivery.CustomerID,
		&delivery.Address,
		&delivery.City,
		&delivery.Department,
		&delivery.ZipCode,
		&delivery.Instructions,
		&status,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	delivery.Status = domain.DeliveryStatusType(status)
	return &delivery, nil
}
