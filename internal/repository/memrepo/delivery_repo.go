package memrepo

import (
	"context"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/internal/repository/repoargs"
	"github.com/google/uuid"
)

type DeliveryRepository struct {
	acc accessor
}

func (d *DeliveryRepository) Create(_ context.Context, delivery *domain.Delivery) (*domain.Delivery, error) {
	created := *delivery
	err := d.acc.run(func(s *state) error {
		for _, existing := range s.deliveries {
			if existing.TransactionID == delivery.TransactionID {
				return duplicate("creating delivery for transaction `%s`", delivery.TransactionID)
			}
		}
		if _, ok := s.transactions[delivery.TransactionID]; !ok {
			return notFound("creating delivery: transaction `%s`", delivery.TransactionID)
		}
		if _, ok := s.customers[delivery.CustomerID]; !ok {
			return notFound("creating delivery: customer `%s`", delivery.CustomerID)
		}
		s.deliveries[created.ID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (d *DeliveryRepository) FindByID(_ context.Context, id uuid.UUID) (*domain.Delivery, error) {
	var delivery domain.Delivery
	err := d.acc.run(func(s *state) error {
		found, ok := s.deliveries[id]
		if !ok {
			return notFound("finding delivery by id `%s`", id)
		}
		delivery = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}

func (d *DeliveryRepository) FindByTransactionID(_ context.Context, transactionID uuid.UUID) (*domain.Delivery, error) {
	var delivery domain.Delivery
	err := d.acc.run(func(s *state) error {
		for _, existing := range s.deliveries {
			if existing.TransactionID == transactionID {
				delivery = existing
				return nil
			}
		}
		return notFound("finding delivery by transaction id `%s`", transactionID)
	})
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}

func (d *DeliveryRepository) UpdateStatus(
	_ context.Context,
	args repoargs.UpdateDeliveryStatus,
) (*domain.Delivery, error) {
	var delivery domain.Delivery
	err := d.acc.run(func(s *state) error {
		found, ok := s.deliveries[args.ID]
		if !ok || found.Status != args.From {
			return notFound("updating delivery `%s` from status %s", args.ID, args.From)
		}
		found.Status = args.To
		s.deliveries[args.ID] = found
		delivery = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}
