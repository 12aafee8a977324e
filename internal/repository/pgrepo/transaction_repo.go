package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/groph-checkout/pkg/uow"
	"github.com/google/uuid"
)

const transactionColumns = `id, created_at, updated_at, product_id, customer_id, product_price, base_charge,
	shipping_cost, total_amount, status, COALESCE(external_transaction_id, '')`

type TransactionRepository struct {
	db uow.DBTX
}

func NewTransactionRepository(db uow.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (t *TransactionRepository) Create(ctx context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, `
		INSERT INTO transactions (id, created_at, updated_at, product_id, customer_id, product_price, base_charge,
			shipping_cost, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+transactionColumns,
		tr.ID, tr.CreatedAt, tr.UpdatedAt, tr.ProductID, tr.CustomerID, tr.ProductPrice, tr.BaseCharge,
		tr.ShippingCost, tr.TotalAmount, string(tr.Status),
	)
	created, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating transaction for product `%s`", tr.ProductID)
	}
	return created, nil
}

func (t *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
	tr, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "finding transaction by id `%s`", id)
	}
	return tr, nil
}

// UpdateStatusIfPending переводит транзакцию в финальный статус только если она еще PENDING.
// Если транзакции нет или она уже обработана, вернется ErrRecordNotFound.
func (t *TransactionRepository) UpdateStatusIfPending(
	ctx context.Context,
	args repoargs.UpdateTransactionStatus,
) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, `
		UPDATE transactions
		SET status                  = $2,
		    external_transaction_id = COALESCE($3, external_transaction_id),
		    updated_at              = COALESCE($4, now())
		WHERE id = $1 AND status = 'PENDING'
		RETURNING `+transactionColumns,
		args.ID, string(args.Status), nullIfEmpty(args.ExternalID), nullIfZeroTime(args.UpdatedAt),
	)
	tr, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "updating pending transaction `%s` to %s", args.ID, args.Status)
	}
	return tr, nil
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var (
		tr     domain.Transaction
		status string
	)
	err := row.Scan(
		&tr.ID,
		&tr.CreatedAt,
		&tr.UpdatedAt,
		&tr.ProductID,
		&tr.CustomerID,
		&tr.ProductPrice,
		&tr.BaseCharge,
		&tr.ShippingCost,
		&tr.TotalAmount,
		&status,
		&tr.ExternalTransactionID,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	tr.Status = domain.TransactionStatusType(status)
	return &tr, nil
}
