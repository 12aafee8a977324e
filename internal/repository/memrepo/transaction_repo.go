package memrepo

import (
	"context"
	"errors"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/internal/repository/repoargs"
	"github.com/google/uuid"
)

type TransactionRepository struct {
	acc accessor
}

func (t *TransactionRepository) Create(_ context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
	created := *tr
	err := t.acc.run(func(s *state) error {
		if _, exists := s.transactions[tr.ID]; exists {
			return duplicate("creating transaction `%s`", tr.ID)
		}
		if _, ok := s.products[tr.ProductID]; !ok {
			return notFound("creating transaction: product `%s`", tr.ProductID)
		}
		if tr.CustomerID != nil {
			if _, ok := s.customers[*tr.CustomerID]; !ok {
				return notFound("creating transaction: customer `%s`", *tr.CustomerID)
			}
		}
		s.transactions[created.ID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (t *TransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*domain.Transaction, error) {
	var tr domain.Transaction
	err := t.acc.run(func(s *state) error {
		found, ok := s.transactions[id]
		if !ok {
			return notFound("finding transaction by id `%s`", id)
		}
		tr = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

// UpdateStatusIfPending как и в postgres: транзакция не найдена или уже не PENDING означает ErrRecordNotFound.
func (t *TransactionRepository) UpdateStatusIfPending(
	_ context.Context,
	args repoargs.UpdateTransactionStatus,
) (*domain.Transaction, error) {
	var tr domain.Transaction
	err := t.acc.run(func(s *state) error {
		found, ok := s.transactions[args.ID]
		if !ok {
			return notFound("updating pending transaction `%s`", args.ID)
		}
		updatedAt := args.UpdatedAt
		if updatedAt.IsZero() {
			updatedAt = t.acc.now()
		}
		if err := found.Transition(args.Status, args.ExternalID, updatedAt); err != nil {
			if errors.Is(err, domain.ErrAlreadyProcessed) {
				return notFound("updating pending transaction `%s`", args.ID)
			}
			return err
		}
		s.transactions[args.ID] = found
		tr = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tr, nil
}
