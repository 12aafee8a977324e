// Package memrepo хранилище в памяти процесса с тем же контрактом репозиториев и unit of work,
// что и postgres. Используется в тестах и в режиме STORAGE=memory.
package memrepo

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/groph-checkout/pkg/uow"
	"github.com/google/uuid"
)

type state struct {
	products     map[uuid.UUID]domain.Product
	transactions map[uuid.UUID]domain.Transaction
	customers    map[uuid.UUID]domain.Customer
	deliveries   map[uuid.UUID]domain.Delivery
}

func newState() *state {
	return &state{
		products:     make(map[uuid.UUID]domain.Product),
		transactions: make(map[uuid.UUID]domain.Transaction),
		customers:    make(map[uuid.UUID]domain.Customer),
		deliveries:   make(map[uuid.UUID]domain.Delivery),
	}
}

func (s *state) clone() *state {
	return &state{
		products:     maps.Clone(s.products),
		transactions: maps.Clone(s.transactions),
		customers:    maps.Clone(s.customers),
		deliveries:   maps.Clone(s.deliveries),
	}
}

// accessor выполняет fn над состоянием хранилища.
type accessor interface {
	run(fn func(*state) error) error
	now() time.Time
}

// liveAccessor работает с зафиксированным состоянием под мьютексом хранилища.
type liveAccessor struct {
	store *UnitOfWork
}

func (a liveAccessor) run(fn func(*state) error) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	return fn(a.store.data)
}

func (a liveAccessor) now() time.Time {
	return a.store.clock()
}

// txAccessor работает с черновиком транзакции. Мьютекс уже удерживается в Do.
type txAccessor struct {
	draft *state
	clock func() time.Time
}

func (a txAccessor) run(fn func(*state) error) error {
	return fn(a.draft)
}

func (a txAccessor) now() time.Time {
	return a.clock()
}

// UnitOfWork реализует uow.UOW поверх памяти. Транзакции сериализуются: Do держит мьютекс хранилища
// все время выполнения fn и работает с копией состояния, которая подменяет текущее только при успехе.
// Внутри fn используются только репозитории из tx.
type UnitOfWork struct {
	mu    sync.Mutex
	data  *state
	clock func() time.Time
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		data:  newState(),
		clock: time.Now,
	}
}

// SetClock подменяет источник времени.
func (u *UnitOfWork) SetClock(clock func() time.Time) *UnitOfWork {
	u.clock = clock
	return u
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, uow.TX) error, _ ...uow.TxOption) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	draft := u.data.clone()
	if err := fn(ctx, &transaction{acc: txAccessor{draft: draft, clock: u.clock}}); err != nil {
		return err
	}
	u.data = draft
	return nil
}

func (u *UnitOfWork) GetRepository(name uow.RepositoryName) (uow.Repository, error) {
	return repositoryFor(name, liveAccessor{store: u})
}

type transaction struct {
	acc accessor
}

func (t *transaction) Get(name uow.RepositoryName) (uow.Repository, error) {
	return repositoryFor(name, t.acc)
}

func repositoryFor(name uow.RepositoryName, acc accessor) (uow.Repository, error) {
	switch repoargs.RepositoryName(name) {
	case repoargs.ProductRepoName:
		return &ProductRepository{acc: acc}, nil
	case repoargs.TransactionRepoName:
		return &TransactionRepository{acc: acc}, nil
	case repoargs.CustomerRepoName:
		return &CustomerRepository{acc: acc}, nil
	case repoargs.DeliveryRepoName:
		return &DeliveryRepository{acc: acc}, nil
	default:
		return nil, uow.ErrRepositoryNotRegistered
	}
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("[memrepo/%s] %w", fmt.Sprintf(format, args...), domain.ErrRecordNotFound)
}

func duplicate(format string, args ...any) error {
	return fmt.Errorf("[memrepo/%s] %w", fmt.Sprintf(format, args...), domain.ErrDuplicateKey)
}
