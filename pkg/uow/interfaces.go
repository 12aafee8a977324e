package uow

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks
import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type TX interface {
	Get(name RepositoryName) (Repository, error)
}

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
	SendBatch(context.Context, *pgx.Batch) pgx.BatchResults
}

// Conn соединение, умеющее открывать транзакции. *pgxpool.Pool подходит.
type Conn interface {
	DBTX
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// UOW то, что нужно сервисному слою: транзакция и доступ к репозиториям вне транзакции.
// Реализуется как postgres (UnitOfWork), так и in-memory хранилищем.
type UOW interface {
	Do(ctx context.Context, fn func(ctx context.Context, tx TX) error, opts ...TxOption) error
	GetRepository(name RepositoryName) (Repository, error)
}
